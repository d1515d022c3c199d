package rules

import "time"

// CampusZone - фиксированное смещение UTC+4 без перехода на летнее время
var CampusZone = time.FixedZone("UTC+4", 4*60*60)

// Window - еженедельное окно регистрации в кампусном времени, границы включительно
type Window struct {
	OpenDay   time.Weekday
	OpenHour  int
	CloseDay  time.Weekday
	CloseHour int
}

// RegistrationWindows - окно A (вс 12:00 - пн 21:00) и окно B (ср 12:00 - чт 21:00)
var RegistrationWindows = []Window{
	{OpenDay: time.Sunday, OpenHour: 12, CloseDay: time.Monday, CloseHour: 21},
	{OpenDay: time.Wednesday, OpenHour: 12, CloseDay: time.Thursday, CloseHour: 21},
}

const lateCancellationHour = 17

func (w Window) openOffset() time.Duration {
	return time.Duration(w.OpenDay)*24*time.Hour + time.Duration(w.OpenHour)*time.Hour
}

func (w Window) closeOffset() time.Duration {
	return time.Duration(w.CloseDay)*24*time.Hour + time.Duration(w.CloseHour)*time.Hour
}

// Contains проверяет, попадает ли момент в окно
func (w Window) Contains(now time.Time) bool {
	offset := weekOffset(now.In(CampusZone))
	return offset >= w.openOffset() && offset <= w.closeOffset()
}

// ClosesAt возвращает момент закрытия окна, содержащего now
func (w Window) ClosesAt(now time.Time) time.Time {
	t := now.In(CampusZone)
	day := startOfDay(t).AddDate(0, 0, int(w.CloseDay)-int(t.Weekday()))
	return day.Add(time.Duration(w.CloseHour) * time.Hour).UTC()
}

// weekOffset - смещение от начала кампусной недели (воскресенье 00:00)
func weekOffset(t time.Time) time.Duration {
	return time.Duration(t.Weekday())*24*time.Hour + t.Sub(startOfDay(t))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CurrentWindow возвращает окно, в котором находится now
func CurrentWindow(now time.Time) (Window, bool) {
	for _, w := range RegistrationWindows {
		if w.Contains(now) {
			return w, true
		}
	}
	return Window{}, false
}

// IsRegistrationOpen сообщает, принимаются ли сейчас новые регистрации
func IsRegistrationOpen(now time.Time) bool {
	_, ok := CurrentWindow(now)
	return ok
}

// NextRegistrationOpening возвращает ближайшее открытие регистрации.
// Если регистрация открыта, возвращается момент закрытия текущего окна,
// это значение показывает обратный отсчет на главной странице.
func NextRegistrationOpening(now time.Time) time.Time {
	if w, ok := CurrentWindow(now); ok {
		return w.ClosesAt(now)
	}

	day := startOfDay(now.In(CampusZone))
	for i := 0; i <= 7; i++ {
		candidate := day.AddDate(0, 0, i)
		for _, w := range RegistrationWindows {
			if candidate.Weekday() != w.OpenDay {
				continue
			}
			opening := candidate.Add(time.Duration(w.OpenHour) * time.Hour)
			if opening.After(now) {
				return opening.UTC()
			}
		}
	}

	// недостижимо, пока в неделе есть хотя бы одно окно
	return now
}

// IsGameDay - игры проходят в дни закрытия окон
func IsGameDay(now time.Time) bool {
	weekday := now.In(CampusZone).Weekday()
	for _, w := range RegistrationWindows {
		if w.CloseDay == weekday {
			return true
		}
	}
	return false
}

// IsLateCancellation - отмена в игровой день после 17:00 по кампусу
func IsLateCancellation(now time.Time) bool {
	return IsGameDay(now) && now.In(CampusZone).Hour() >= lateCancellationHour
}

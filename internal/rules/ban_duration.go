package rules

import (
	"errors"
	"fmt"
	"math"
	"time"
)

type BanReason string

const (
	ReasonNotReady      BanReason = "NOT_READY"
	ReasonCancel        BanReason = "CANCEL"
	ReasonLate          BanReason = "LATE"
	ReasonCancelGameDay BanReason = "CANCEL_GAME_DAY"
	ReasonNoShow        BanReason = "NO_SHOW"
	ReasonNoBan         BanReason = "NO_BAN"
)

// DefaultCustomBanDays - значение по умолчанию в форме ручного бана
const DefaultCustomBanDays = 7

type BanPolicy struct {
	Days        float64
	Description string
}

var banPolicies = map[BanReason]BanPolicy{
	ReasonNotReady:      {Days: 3.5, Description: "Not ready when booking time starts"},
	ReasonCancel:        {Days: 7, Description: "Cancel reservation"},
	ReasonLate:          {Days: 7, Description: "Late > 15 minutes"},
	ReasonCancelGameDay: {Days: 14, Description: "Cancel reservation on game day after 5 PM"},
	ReasonNoShow:        {Days: 28, Description: "No show without notice"},
	ReasonNoBan:         {Days: 0, Description: "Removed without ban"},
}

// MaxBanDays - верхняя граница ручного бана, около десяти лет
const MaxBanDays = 3650

var (
	ErrInvalidBanDuration = errors.New("ban duration must be a positive number of days")
	ErrBanTooLong         = fmt.Errorf("ban duration must not exceed %d days", MaxBanDays)
)

// Policy возвращает длительность и текст причины
func (r BanReason) Policy() (BanPolicy, bool) {
	p, ok := banPolicies[r]
	return p, ok
}

func (r BanReason) Valid() bool {
	_, ok := banPolicies[r]
	return ok
}

// CreatesBan - NO_BAN удаляет игрока без записи о бане
func (r BanReason) CreatesBan() bool {
	p, ok := banPolicies[r]
	return ok && p.Days > 0
}

// BanReasons возвращает все причины из таблицы
func BanReasons() []BanReason {
	return []BanReason{
		ReasonNotReady,
		ReasonCancel,
		ReasonLate,
		ReasonCancelGameDay,
		ReasonNoShow,
		ReasonNoBan,
	}
}

// ValidateBanDays отклоняет нулевые, отрицательные, нечисловые и слишком длинные сроки
func ValidateBanDays(days float64) error {
	if math.IsNaN(days) || math.IsInf(days, 0) || days <= 0 {
		return ErrInvalidBanDuration
	}
	if days > MaxBanDays {
		return ErrBanTooLong
	}
	return nil
}

// BanExpiry = now + days*86400s, дробные дни поддерживаются.
// Срок ограничивается MaxBanDays, иначе time.Duration переполняется.
func BanExpiry(now time.Time, days float64) time.Time {
	if days > MaxBanDays {
		days = MaxBanDays
	}
	return now.Add(time.Duration(days * float64(24*time.Hour)))
}

// CancelReason - отмена в игровой день после 17:00 наказывается строже
func CancelReason(now time.Time) BanReason {
	if IsLateCancellation(now) {
		return ReasonCancelGameDay
	}
	return ReasonCancel
}

package rules

import "time"

const GracePeriod = 15 * time.Minute

// WithinGracePeriod - свою неподтвержденную регистрацию можно исправить или
// удалить без бана в течение 15 минут. Нулевое registeredAt означает, что время
// регистрации неизвестно, и льготный период недоступен.
func WithinGracePeriod(registeredAt, now time.Time, isOwn, isVerified bool) bool {
	if !isOwn || isVerified || registeredAt.IsZero() {
		return false
	}
	return now.Sub(registeredAt) <= GracePeriod
}

package domain

import "time"

const (
	// GuaranteedSpots - первые N игроков считаются подтвержденными, остальные в листе ожидания
	GuaranteedSpots = 21
	// MaxPlayers - жесткий лимит регистраций
	MaxPlayers = 40
)

type Registrant struct {
	Handle       string
	DisplayName  string
	Verified     bool
	RegisteredAt time.Time
	OwnerUserID  *int64
}

// IsOwnedBy проверяет, что регистрация принадлежит пользователю
func (r *Registrant) IsOwnedBy(userID int64) bool {
	return r.OwnerUserID != nil && *r.OwnerUserID == userID
}

type RosterEntry struct {
	Registrant *Registrant
	Position   int
	Guaranteed bool
}

type RegistrationStatus struct {
	Open            bool
	NextChange      time.Time
	Registered      int
	GuaranteedSpots int
	MaxPlayers      int
}

// Identity - пользователь текущего запроса
type Identity struct {
	UserID  int64
	IsAdmin bool
}

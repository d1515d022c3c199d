package domain

import "time"

type Ban struct {
	Handle      string
	DisplayName string
	Reason      string
	BannedAt    time.Time
	BannedUntil time.Time
	OwnerUserID *int64
}

// IsActive - бан действует, пока banned_until в будущем
func (b *Ban) IsActive(now time.Time) bool {
	return b.BannedUntil.After(now)
}

type AdminLog struct {
	ID          int64
	ActorUserID *int64
	Action      string
	TargetUser  string
	TargetName  string
	Details     string
	CreatedAt   time.Time
}

const (
	ActionSelfRemove      = "self_remove"
	ActionAdminRemove     = "player_removed_by_admin"
	ActionUserBanned      = "user_banned"
	ActionUserUnbanned    = "user_unbanned"
	ActionNameEdit        = "name_edit"
	ActionVerifiedChanged = "verified_changed"
	ActionRosterReset     = "roster_reset"
	ActionFeedbackApprove = "approve_feedback"
	ActionFeedbackReject  = "reject_feedback"
	ActionFeedbackStatus  = "update_feedback_status"
)

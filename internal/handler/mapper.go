package handler

import (
	"time"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/rules"
	"github.com/bagdasarian/football-registration/internal/service"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func domainStatusToHTTP(status *domain.RegistrationStatus) RegistrationStatusResponse {
	return RegistrationStatusResponse{
		Open:            status.Open,
		NextChange:      formatTime(status.NextChange),
		Registered:      status.Registered,
		GuaranteedSpots: status.GuaranteedSpots,
		MaxPlayers:      status.MaxPlayers,
		Timezone:        rules.CampusZone.String(),
	}
}

// domainRegistrantToHTTP - is_own вычисляется относительно текущего пользователя
func domainRegistrantToHTTP(registrant *domain.Registrant, identity *domain.Identity) RegistrantResponse {
	resp := RegistrantResponse{
		Handle:       registrant.Handle,
		DisplayName:  registrant.DisplayName,
		Verified:     registrant.Verified,
		RegisteredAt: formatTime(registrant.RegisteredAt),
	}
	if identity != nil {
		resp.IsOwn = registrant.IsOwnedBy(identity.UserID)
	}
	return resp
}

func domainRosterToHTTP(entries []domain.RosterEntry, identity *domain.Identity) RegistrantListResponse {
	registrants := make([]RegistrantResponse, 0, len(entries))
	for _, entry := range entries {
		resp := domainRegistrantToHTTP(entry.Registrant, identity)
		resp.Position = entry.Position
		resp.Guaranteed = entry.Guaranteed
		registrants = append(registrants, resp)
	}

	return RegistrantListResponse{
		Registrants:     registrants,
		GuaranteedSpots: domain.GuaranteedSpots,
		MaxPlayers:      domain.MaxPlayers,
	}
}

func domainBanToHTTP(ban *domain.Ban) BanResponse {
	return BanResponse{
		Handle:      ban.Handle,
		DisplayName: ban.DisplayName,
		Reason:      ban.Reason,
		BannedAt:    formatTime(ban.BannedAt),
		BannedUntil: formatTime(ban.BannedUntil),
	}
}

func domainBansToHTTP(bans []*domain.Ban) BanListResponse {
	list := make([]BanResponse, 0, len(bans))
	for _, ban := range bans {
		list = append(list, domainBanToHTTP(ban))
	}
	return BanListResponse{Bans: list}
}

func domainRemovalToHTTP(result *service.RemovalResult) RemovalResponse {
	resp := RemovalResponse{Handle: result.Handle}
	if result.Ban != nil {
		ban := domainBanToHTTP(result.Ban)
		resp.Ban = &ban
	}
	return resp
}

func domainAdminLogsToHTTP(logs []*domain.AdminLog) AdminLogListResponse {
	list := make([]AdminLogResponse, 0, len(logs))
	for _, entry := range logs {
		list = append(list, AdminLogResponse{
			ID:          entry.ID,
			ActorUserID: entry.ActorUserID,
			Action:      entry.Action,
			TargetUser:  entry.TargetUser,
			TargetName:  entry.TargetName,
			Details:     entry.Details,
			CreatedAt:   formatTime(entry.CreatedAt),
		})
	}
	return AdminLogListResponse{Logs: list}
}

func domainFeedbackToHTTP(feedback *domain.Feedback) FeedbackResponse {
	resp := FeedbackResponse{
		ID:          feedback.ID,
		Type:        string(feedback.Type),
		Title:       feedback.Title,
		Description: feedback.Description,
		Status:      string(feedback.Status),
		IsApproved:  feedback.IsApproved,
		Upvotes:     feedback.Upvotes,
		Downvotes:   feedback.Downvotes,
		Score:       feedback.Score(),
		CreatedAt:   formatTime(feedback.CreatedAt),
	}
	if feedback.UpdatedAt != nil {
		updatedAt := formatTime(*feedback.UpdatedAt)
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

func domainFeedbackListToHTTP(items []*domain.Feedback) FeedbackListResponse {
	list := make([]FeedbackResponse, 0, len(items))
	for _, item := range items {
		list = append(list, domainFeedbackToHTTP(item))
	}
	return FeedbackListResponse{Feedback: list}
}

func domainVotesToHTTP(votes map[int64]domain.VoteType) MyVotesResponse {
	resp := MyVotesResponse{Votes: make(map[int64]string, len(votes))}
	for id, vote := range votes {
		resp.Votes[id] = string(vote)
	}
	return resp
}

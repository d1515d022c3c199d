package handler

import (
	"net/http"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/service"
)

// TokenParser проверяет bearer-токен и возвращает пользователя
type TokenParser interface {
	Parse(token string) (domain.Identity, error)
}

type Handler struct {
	registrationService service.RegistrationService
	removalService      service.RemovalService
	feedbackService     service.FeedbackService
	adminLogService     service.AdminLogService
	rosterService       service.RosterService
	resetSecret         string
}

func NewHandler(
	registrationService service.RegistrationService,
	removalService service.RemovalService,
	feedbackService service.FeedbackService,
	adminLogService service.AdminLogService,
	rosterService service.RosterService,
	resetSecret string,
) *Handler {
	return &Handler{
		registrationService: registrationService,
		removalService:      removalService,
		feedbackService:     feedbackService,
		adminLogService:     adminLogService,
		rosterService:       rosterService,
		resetSecret:         resetSecret,
	}
}

func requireIdentity(r *http.Request) (domain.Identity, error) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}

func optionalIdentity(r *http.Request) *domain.Identity {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		return nil
	}
	return &identity
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

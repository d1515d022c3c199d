package handler

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/bagdasarian/football-registration/internal/domain"
)

// Reset очищает список. Внешний cron передает X-Reset-Secret, администратор - bearer-токен.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var actor *domain.Identity
	if !h.validResetSecret(r.Header.Get(ResetSecretHeader)) {
		identity, err := requireIdentity(r)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		if !identity.IsAdmin {
			h.handleError(w, r, domain.ErrUnauthorized)
			return
		}
		actor = &identity
	}

	removed, err := h.registrationService.Reset(r.Context(), actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ResetResponse{Removed: removed})
}

func (h *Handler) validResetSecret(provided string) bool {
	if h.resetSecret == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(h.resetSecret)) == 1
}

func (h *Handler) ListAdminLogs(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.handleError(w, r, badRequest("limit must be a non-negative integer"))
			return
		}
	}

	logs, err := h.adminLogService.List(r.Context(), identity, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainAdminLogsToHTTP(logs))
}

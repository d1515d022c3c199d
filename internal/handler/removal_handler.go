package handler

import (
	"net/http"
	"strings"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/rules"
	"github.com/bagdasarian/football-registration/internal/service"
	"github.com/gorilla/mux"
)

// RemoveRegistrant - тело необязательно: без причины возможно только удаление в льготный период
func (h *Handler) RemoveRegistrant(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req RemoveRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.handleError(w, r, err)
		return
	}

	var reason *rules.BanReason
	if req.Reason != nil && strings.TrimSpace(*req.Reason) != "" {
		parsed := rules.BanReason(strings.ToUpper(strings.TrimSpace(*req.Reason)))
		reason = &parsed
	}

	result, err := h.removalService.Remove(r.Context(), service.RemoveRequest{
		Handle: mux.Vars(r)["handle"],
		Actor:  identity,
		Reason: reason,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRemovalToHTTP(result))
}

func (h *Handler) ListActiveBans(w http.ResponseWriter, r *http.Request) {
	h.listBans(w, r, true)
}

func (h *Handler) ListAllBans(w http.ResponseWriter, r *http.Request) {
	h.listBans(w, r, false)
}

func (h *Handler) listBans(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	bans, err := h.removalService.ListBans(r.Context(), activeOnly)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainBansToHTTP(bans))
}

func (h *Handler) CreateBan(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req CreateBanRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	days := float64(rules.DefaultCustomBanDays)
	if req.Days != nil {
		days = *req.Days
	}

	ban, err := h.removalService.Ban(r.Context(), identity, service.BanRequest{
		Handle:      req.Handle,
		DisplayName: req.DisplayName,
		Reason:      req.Reason,
		Days:        days,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainBanToHTTP(ban))
}

func (h *Handler) Unban(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.removalService.Unban(r.Context(), identity, mux.Vars(r)["handle"]); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func badRequest(message string) error {
	return domain.NewBadRequestError(message)
}

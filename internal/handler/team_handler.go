package handler

import (
	"net/http"

	"github.com/bagdasarian/football-registration/internal/domain"
)

func (h *Handler) GetTeamSession(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.rosterService.GetSession(r.Context(), identity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) ClearTeamSession(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.rosterService.ClearSession(r.Context(), identity); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetRatings(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req SetRatingsRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.rosterService.SetRatings(r.Context(), identity, req.Ratings)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) BalanceTeams(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	req := BalanceRequest{Mode: int(domain.TwoTeams)}
	if err := decodeJSON(r, &req, true); err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.rosterService.Balance(r.Context(), identity, domain.TeamMode(req.Mode))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

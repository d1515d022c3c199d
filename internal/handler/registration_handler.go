package handler

import (
	"net/http"

	"github.com/bagdasarian/football-registration/internal/service"
	"github.com/gorilla/mux"
)

func (h *Handler) GetRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.registrationService.Status(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainStatusToHTTP(status))
}

func (h *Handler) ListRegistrants(w http.ResponseWriter, r *http.Request) {
	entries, err := h.registrationService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRosterToHTTP(entries, optionalIdentity(r)))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	owner := optionalIdentity(r)
	registrant, err := h.registrationService.Register(r.Context(), service.RegisterRequest{
		Handle:      req.Handle,
		DisplayName: req.DisplayName,
		Owner:       owner,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainRegistrantToHTTP(registrant, owner))
}

func (h *Handler) EditName(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req EditNameRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	registrant, err := h.registrationService.EditName(r.Context(), identity, mux.Vars(r)["handle"], req.DisplayName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRegistrantToHTTP(registrant, &identity))
}

func (h *Handler) SetVerified(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req SetVerifiedRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Verified == nil {
		h.handleError(w, r, badRequest("verified is required"))
		return
	}

	if err := h.registrationService.SetVerified(r.Context(), identity, mux.Vars(r)["handle"], *req.Verified); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

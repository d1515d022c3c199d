package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/service"
	"github.com/gorilla/mux"
)

func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	var feedbackType *domain.FeedbackType
	if raw := r.URL.Query().Get("type"); raw != "" {
		t := domain.FeedbackType(raw)
		if !t.Valid() {
			h.handleError(w, r, badRequest("unknown feedback type"))
			return
		}
		feedbackType = &t
	}

	items, err := h.feedbackService.ListApproved(r.Context(), feedbackType)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainFeedbackListToHTTP(items))
}

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req FeedbackRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	feedback, err := h.feedbackService.Submit(r.Context(), identity, service.SubmitFeedbackRequest{
		Type:        domain.FeedbackType(req.Type),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainFeedbackToHTTP(feedback))
}

func (h *Handler) MyVotes(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	votes, err := h.feedbackService.MyVotes(r.Context(), identity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainVotesToHTTP(votes))
}

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := feedbackID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req VoteRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.feedbackService.Vote(r.Context(), identity, id, domain.VoteType(req.VoteType)); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemoveVote(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := feedbackID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.feedbackService.RemoveVote(r.Context(), identity, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListAllFeedback(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items, err := h.feedbackService.ListAll(r.Context(), identity)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainFeedbackListToHTTP(items))
}

func (h *Handler) ModerateFeedback(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := feedbackID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ModerateFeedbackRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	var approve bool
	switch req.Action {
	case "approve":
		approve = true
	case "reject":
		approve = false
	default:
		h.handleError(w, r, badRequest("action must be approve or reject"))
		return
	}

	if err := h.feedbackService.Moderate(r.Context(), identity, id, approve); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetFeedbackStatus(w http.ResponseWriter, r *http.Request) {
	identity, err := requireIdentity(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := feedbackID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req FeedbackStatusRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.feedbackService.SetStatus(r.Context(), identity, id, domain.FeedbackStatus(req.Status)); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func feedbackID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid feedback id")
	}
	return id, nil
}

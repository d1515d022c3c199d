package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/rs/zerolog/log"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		if statusCode >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				AnErr("cause", errors.Unwrap(domainErr)).
				Str("request_id", RequestIDFromContext(r.Context())).
				Msg("request failed")
		}
		writeJSON(w, statusCode, ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	log.Error().Err(err).Str("request_id", RequestIDFromContext(r.Context())).Msg("unexpected error")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domain.CodeWindowClosed, domain.CodeCapacityReached, domain.CodeUnauthorized,
		domain.CodeBanned, domain.CodeGracePeriodExpired, domain.CodeFeedbackNotApproved:
		return http.StatusForbidden
	case domain.CodeUnknownHandle, domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeDuplicateHandle:
		return http.StatusConflict
	case domain.CodeMissingReason, domain.CodeInvalidReason, domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// decodeJSON - пустое тело допустимо, если allowEmpty
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return nil
		}
		return domain.NewBadRequestError("request body is required")
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}
	if allowEmpty && errors.Is(err, io.EOF) {
		return nil
	}
	return domain.NewBadRequestError("invalid request body")
}

package handler

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	identityContextKey  contextKey = "identity"
	requestIDContextKey contextKey = "request_id"

	RequestIDHeader   = "X-Request-ID"
	ResetSecretHeader = "X-Reset-Secret"
)

// RequestID присваивает запросу идентификатор, принимая переданный клиентом
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		event := log.Info()
		if rec.status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", RequestIDFromContext(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(started)).
			Msg("http request")
	})
}

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error().
					Str("request_id", RequestIDFromContext(r.Context())).
					Interface("panic", recovered).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: ErrorDetail{Code: "INTERNAL_ERROR", Message: "internal server error"},
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Auth требует валидный bearer-токен
func Auth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeUnauthenticated(w)
				return
			}

			identity, err := tokens.Parse(token)
			if err != nil {
				writeUnauthenticated(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// OptionalAuth добавляет пользователя в контекст, если токен валиден; иначе запрос анонимный
func OptionalAuth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractToken(r); token != "" {
				if identity, err := tokens.Parse(token); err == nil {
					r = r.WithContext(WithIdentity(r.Context(), identity))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(domain.Identity)
	return identity, ok
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

func writeUnauthenticated(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{
		Error: ErrorDetail{
			Code:    domain.ErrUnauthenticated.Code,
			Message: domain.ErrUnauthenticated.Message,
		},
	})
}

// RequireAdmin ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			writeUnauthenticated(w)
			return
		}
		if !identity.IsAdmin {
			writeJSON(w, http.StatusForbidden, ErrorResponse{
				Error: ErrorDetail{
					Code:    domain.ErrUnauthorized.Code,
					Message: domain.ErrUnauthorized.Message,
				},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

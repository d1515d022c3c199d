package server

import (
	"net/http"

	"github.com/bagdasarian/football-registration/internal/handler"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type RouterConfig struct {
	Handler        *handler.Handler
	Tokens         handler.TokenParser
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) http.Handler {
	h := cfg.Handler
	r := mux.NewRouter()

	authMiddleware := handler.Auth(cfg.Tokens)
	protected := func(fn http.HandlerFunc) http.Handler {
		return authMiddleware(fn)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(handler.RequestID)
	api.Use(handler.Recovery)
	api.Use(handler.Logging)
	api.Use(handler.OptionalAuth(cfg.Tokens))

	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api.HandleFunc("/registration/status", h.GetRegistrationStatus).Methods(http.MethodGet)
	api.HandleFunc("/registrants", h.ListRegistrants).Methods(http.MethodGet)
	api.HandleFunc("/registrants", h.Register).Methods(http.MethodPost)
	api.Handle("/registrants/{handle}/name", protected(h.EditName)).Methods(http.MethodPatch)
	api.Handle("/registrants/{handle}", protected(h.RemoveRegistrant)).Methods(http.MethodDelete)

	api.HandleFunc("/bans", h.ListActiveBans).Methods(http.MethodGet)

	api.HandleFunc("/feedback", h.ListFeedback).Methods(http.MethodGet)
	api.Handle("/feedback", protected(h.SubmitFeedback)).Methods(http.MethodPost)
	api.Handle("/feedback/votes", protected(h.MyVotes)).Methods(http.MethodGet)
	api.Handle("/feedback/{id:[0-9]+}/vote", protected(h.Vote)).Methods(http.MethodPost)
	api.Handle("/feedback/{id:[0-9]+}/vote", protected(h.RemoveVote)).Methods(http.MethodDelete)

	// сброс доступен и по секрету, поэтому регистрируется до подроутера администратора
	api.HandleFunc("/admin/reset", h.Reset).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.Use(handler.RequireAdmin)
	admin.HandleFunc("/bans", h.ListAllBans).Methods(http.MethodGet)
	admin.HandleFunc("/bans", h.CreateBan).Methods(http.MethodPost)
	admin.HandleFunc("/bans/{handle}", h.Unban).Methods(http.MethodDelete)
	admin.HandleFunc("/registrants/{handle}/verified", h.SetVerified).Methods(http.MethodPatch)
	admin.HandleFunc("/logs", h.ListAdminLogs).Methods(http.MethodGet)
	admin.HandleFunc("/feedback", h.ListAllFeedback).Methods(http.MethodGet)
	admin.HandleFunc("/feedback/{id:[0-9]+}/moderate", h.ModerateFeedback).Methods(http.MethodPost)
	admin.HandleFunc("/feedback/{id:[0-9]+}/status", h.SetFeedbackStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/teams/session", h.GetTeamSession).Methods(http.MethodGet)
	admin.HandleFunc("/teams/session", h.ClearTeamSession).Methods(http.MethodDelete)
	admin.HandleFunc("/teams/ratings", h.SetRatings).Methods(http.MethodPut)
	admin.HandleFunc("/teams/balance", h.BalanceTeams).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", handler.ResetSecretHeader, handler.RequestIDHeader},
		ExposedHeaders: []string{handler.RequestIDHeader},
	})

	return c.Handler(r)
}

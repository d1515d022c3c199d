package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/bagdasarian/football-registration/internal/handler"
	"github.com/bagdasarian/football-registration/internal/rules"
	"github.com/bagdasarian/football-registration/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userToken   = "user-token"
	adminToken  = "admin-token"
	resetSecret = "reset-secret"
)

var (
	player = domain.Identity{UserID: 7}
	admin  = domain.Identity{UserID: 1, IsAdmin: true}
)

type testEnv struct {
	registration *MockRegistrationService
	removal      *MockRemovalService
	feedback     *MockFeedbackService
	adminLog     *MockAdminLogService
	roster       *MockRosterService
	router       http.Handler
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		registration: new(MockRegistrationService),
		removal:      new(MockRemovalService),
		feedback:     new(MockFeedbackService),
		adminLog:     new(MockAdminLogService),
		roster:       new(MockRosterService),
	}
	h := handler.NewHandler(env.registration, env.removal, env.feedback, env.adminLog, env.roster, resetSecret)
	env.router = NewRouter(RouterConfig{
		Handler:        h,
		Tokens:         staticTokens{userToken: player, adminToken: admin},
		AllowedOrigins: []string{"*"},
	})

	t.Cleanup(func() {
		env.registration.AssertExpectations(t)
		env.removal.AssertExpectations(t)
		env.feedback.AssertExpectations(t)
		env.adminLog.AssertExpectations(t)
		env.roster.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestRouter_Health(t *testing.T) {
	env := setupRouter(t)

	rec := env.do(http.MethodGet, "/api/v1/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(handler.RequestIDHeader))
}

func TestRouter_RegistrationStatus(t *testing.T) {
	env := setupRouter(t)
	next := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	env.registration.On("Status", mock.Anything).Return(&domain.RegistrationStatus{
		Open:            true,
		NextChange:      next,
		Registered:      12,
		GuaranteedSpots: domain.GuaranteedSpots,
		MaxPlayers:      domain.MaxPlayers,
	}, nil)

	rec := env.do(http.MethodGet, "/api/v1/registration/status", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.RegistrationStatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Open)
	assert.Equal(t, "2025-03-10T17:00:00Z", resp.NextChange)
	assert.Equal(t, 12, resp.Registered)
	assert.Equal(t, "UTC+4", resp.Timezone)
}

func TestRouter_Register(t *testing.T) {
	registeredAt := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("анонимная регистрация", func(t *testing.T) {
		env := setupRouter(t)
		env.registration.On("Register", mock.Anything, service.RegisterRequest{
			Handle:      "jdoe",
			DisplayName: "John",
		}).Return(&domain.Registrant{
			Handle:       "jdoe",
			DisplayName:  "John Doe",
			Verified:     true,
			RegisteredAt: registeredAt,
		}, nil)

		rec := env.do(http.MethodPost, "/api/v1/registrants", "", `{"handle":"jdoe","display_name":"John"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp handler.RegistrantResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "John Doe", resp.DisplayName)
		assert.True(t, resp.Verified)
		assert.False(t, resp.IsOwn)
	})

	t.Run("регистрация с токеном закрепляет владельца", func(t *testing.T) {
		env := setupRouter(t)
		owner := player.UserID
		env.registration.On("Register", mock.Anything, mock.MatchedBy(func(req service.RegisterRequest) bool {
			return req.Owner != nil && req.Owner.UserID == player.UserID
		})).Return(&domain.Registrant{
			Handle:       "jdoe",
			DisplayName:  "John",
			RegisteredAt: registeredAt,
			OwnerUserID:  &owner,
		}, nil)

		rec := env.do(http.MethodPost, "/api/v1/registrants", userToken, `{"handle":"jdoe","display_name":"John"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp handler.RegistrantResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.IsOwn)
	})

	t.Run("коды ошибок", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{domain.ErrWindowClosed, http.StatusForbidden, domain.CodeWindowClosed},
			{domain.ErrCapacityReached, http.StatusForbidden, domain.CodeCapacityReached},
			{domain.ErrDuplicateHandle, http.StatusConflict, domain.CodeDuplicateHandle},
			{domain.ErrUnknownHandle, http.StatusNotFound, domain.CodeUnknownHandle},
			{domain.ErrBanned, http.StatusForbidden, domain.CodeBanned},
			{domain.NewStoreError(assert.AnError), http.StatusServiceUnavailable, domain.CodeStoreUnavailable},
		}
		for _, tc := range cases {
			env := setupRouter(t)
			env.registration.On("Register", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := env.do(http.MethodPost, "/api/v1/registrants", "", `{"handle":"jdoe"}`)

			assert.Equal(t, tc.status, rec.Code, tc.code)
			assert.Equal(t, tc.code, decodeError(t, rec).Code)
		}
	})

	t.Run("некорректное тело", func(t *testing.T) {
		env := setupRouter(t)

		rec := env.do(http.MethodPost, "/api/v1/registrants", "", `{"handle":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.CodeBadRequest, decodeError(t, rec).Code)
	})
}

func TestRouter_ListRegistrants(t *testing.T) {
	env := setupRouter(t)
	owner := player.UserID
	env.registration.On("List", mock.Anything).Return([]domain.RosterEntry{
		{Registrant: &domain.Registrant{Handle: "a", DisplayName: "A", OwnerUserID: &owner}, Position: 1, Guaranteed: true},
		{Registrant: &domain.Registrant{Handle: "b", DisplayName: "B"}, Position: 22, Guaranteed: false},
	}, nil)

	rec := env.do(http.MethodGet, "/api/v1/registrants", userToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.RegistrantListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Registrants, 2)
	assert.True(t, resp.Registrants[0].IsOwn)
	assert.True(t, resp.Registrants[0].Guaranteed)
	assert.False(t, resp.Registrants[1].IsOwn)
	assert.Equal(t, 22, resp.Registrants[1].Position)
	assert.Equal(t, domain.MaxPlayers, resp.MaxPlayers)
}

func TestRouter_RemoveRegistrant(t *testing.T) {
	t.Run("без токена", func(t *testing.T) {
		env := setupRouter(t)

		rec := env.do(http.MethodDelete, "/api/v1/registrants/jdoe", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domain.CodeUnauthenticated, decodeError(t, rec).Code)
	})

	t.Run("невалидный токен", func(t *testing.T) {
		env := setupRouter(t)

		rec := env.do(http.MethodDelete, "/api/v1/registrants/jdoe", "forged", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("без тела причина не передается", func(t *testing.T) {
		env := setupRouter(t)
		env.removal.On("Remove", mock.Anything, service.RemoveRequest{
			Handle: "jdoe",
			Actor:  player,
		}).Return(&service.RemovalResult{Handle: "jdoe"}, nil)

		rec := env.do(http.MethodDelete, "/api/v1/registrants/jdoe", userToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"handle":"jdoe"}`, rec.Body.String())
	})

	t.Run("администратор с причиной NO_SHOW", func(t *testing.T) {
		env := setupRouter(t)
		bannedAt := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
		env.removal.On("Remove", mock.Anything, mock.MatchedBy(func(req service.RemoveRequest) bool {
			return req.Reason != nil && *req.Reason == rules.ReasonNoShow && req.Actor.IsAdmin
		})).Return(&service.RemovalResult{
			Handle: "jdoe",
			Ban: &domain.Ban{
				Handle:      "jdoe",
				Reason:      "No show without notice",
				BannedAt:    bannedAt,
				BannedUntil: bannedAt.Add(28 * 24 * time.Hour),
			},
		}, nil)

		rec := env.do(http.MethodDelete, "/api/v1/registrants/jdoe", adminToken, `{"reason":"no_show"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.RemovalResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.NotNil(t, resp.Ban)
		assert.Equal(t, "2025-04-07T10:00:00Z", resp.Ban.BannedUntil)
	})

	t.Run("причина обязательна", func(t *testing.T) {
		env := setupRouter(t)
		env.removal.On("Remove", mock.Anything, mock.Anything).Return(nil, domain.ErrMissingReason)

		rec := env.do(http.MethodDelete, "/api/v1/registrants/jdoe", adminToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domain.CodeMissingReason, decodeError(t, rec).Code)
	})
}

func TestRouter_EditName(t *testing.T) {
	env := setupRouter(t)
	env.registration.On("EditName", mock.Anything, player, "jdoe", "Johnny").
		Return(nil, domain.ErrGracePeriodExpired)

	rec := env.do(http.MethodPatch, "/api/v1/registrants/jdoe/name", userToken, `{"display_name":"Johnny"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domain.CodeGracePeriodExpired, decodeError(t, rec).Code)
}

func TestRouter_AdminRoutes(t *testing.T) {
	t.Run("обычный пользователь не допускается", func(t *testing.T) {
		env := setupRouter(t)

		rec := env.do(http.MethodGet, "/api/v1/admin/logs", userToken, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domain.CodeUnauthorized, decodeError(t, rec).Code)
	})

	t.Run("без токена", func(t *testing.T) {
		env := setupRouter(t)

		rec := env.do(http.MethodGet, "/api/v1/admin/bans", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("бан со сроком по умолчанию", func(t *testing.T) {
		env := setupRouter(t)
		now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
		env.removal.On("Ban", mock.Anything, admin, service.BanRequest{
			Handle: "jdoe",
			Reason: "toxic",
			Days:   rules.DefaultCustomBanDays,
		}).Return(&domain.Ban{
			Handle:      "jdoe",
			DisplayName: "jdoe",
			Reason:      "toxic",
			BannedAt:    now,
			BannedUntil: now.Add(7 * 24 * time.Hour),
		}, nil)

		rec := env.do(http.MethodPost, "/api/v1/admin/bans", adminToken, `{"handle":"jdoe","reason":"toxic"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("снятие бана", func(t *testing.T) {
		env := setupRouter(t)
		env.removal.On("Unban", mock.Anything, admin, "jdoe").Return(nil)

		rec := env.do(http.MethodDelete, "/api/v1/admin/bans/jdoe", adminToken, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("все баны и активные баны", func(t *testing.T) {
		env := setupRouter(t)
		env.removal.On("ListBans", mock.Anything, false).Return([]*domain.Ban{}, nil)
		env.removal.On("ListBans", mock.Anything, true).Return([]*domain.Ban{}, nil)

		assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/v1/admin/bans", adminToken, "").Code)
		rec := env.do(http.MethodGet, "/api/v1/bans", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"bans":[]}`, rec.Body.String())
	})

	t.Run("флаг подтверждения обязателен", func(t *testing.T) {
		env := setupRouter(t)

		rec := env.do(http.MethodPatch, "/api/v1/admin/registrants/jdoe/verified", adminToken, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("установка флага подтверждения", func(t *testing.T) {
		env := setupRouter(t)
		env.registration.On("SetVerified", mock.Anything, admin, "jdoe", true).Return(nil)

		rec := env.do(http.MethodPatch, "/api/v1/admin/registrants/jdoe/verified", adminToken, `{"verified":true}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("журнал с лимитом", func(t *testing.T) {
		env := setupRouter(t)
		env.adminLog.On("List", mock.Anything, admin, 20).Return([]*domain.AdminLog{
			{ID: 3, Action: domain.ActionUserBanned, TargetUser: "jdoe", CreatedAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)},
		}, nil)

		rec := env.do(http.MethodGet, "/api/v1/admin/logs?limit=20", adminToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.AdminLogListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Logs, 1)
		assert.Nil(t, resp.Logs[0].ActorUserID)
	})

	t.Run("некорректный лимит", func(t *testing.T) {
		env := setupRouter(t)

		rec := env.do(http.MethodGet, "/api/v1/admin/logs?limit=abc", adminToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_Reset(t *testing.T) {
	t.Run("по секрету", func(t *testing.T) {
		env := setupRouter(t)
		env.registration.On("Reset", mock.Anything, (*domain.Identity)(nil)).Return(int64(18), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reset", nil)
		req.Header.Set(handler.ResetSecretHeader, resetSecret)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"removed":18}`, rec.Body.String())
	})

	t.Run("неверный секрет без токена", func(t *testing.T) {
		env := setupRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reset", nil)
		req.Header.Set(handler.ResetSecretHeader, "guess")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("администратор", func(t *testing.T) {
		env := setupRouter(t)
		env.registration.On("Reset", mock.Anything, &admin).Return(int64(3), nil)

		rec := env.do(http.MethodPost, "/api/v1/admin/reset", adminToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("обычный пользователь", func(t *testing.T) {
		env := setupRouter(t)

		rec := env.do(http.MethodPost, "/api/v1/admin/reset", userToken, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRouter_Feedback(t *testing.T) {
	t.Run("список одобренных по типу", func(t *testing.T) {
		env := setupRouter(t)
		bug := domain.FeedbackBug
		env.feedback.On("ListApproved", mock.Anything, &bug).Return([]*domain.Feedback{
			{ID: 1, Type: bug, Title: "crash", Status: domain.FeedbackApproved, IsApproved: true, Upvotes: 5, Downvotes: 2},
		}, nil)

		rec := env.do(http.MethodGet, "/api/v1/feedback?type=bug", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.FeedbackListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Feedback, 1)
		assert.Equal(t, 3, resp.Feedback[0].Score)
	})

	t.Run("неизвестный тип", func(t *testing.T) {
		env := setupRouter(t)

		rec := env.do(http.MethodGet, "/api/v1/feedback?type=spam", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("отправка", func(t *testing.T) {
		env := setupRouter(t)
		env.feedback.On("Submit", mock.Anything, player, service.SubmitFeedbackRequest{
			Type:        domain.FeedbackFeature,
			Title:       "Dark mode",
			Description: "please",
		}).Return(&domain.Feedback{ID: 9, Type: domain.FeedbackFeature, Title: "Dark mode", Status: domain.FeedbackPending}, nil)

		rec := env.do(http.MethodPost, "/api/v1/feedback", userToken, `{"type":"feature","title":"Dark mode","description":"please"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("голос за неодобренное предложение", func(t *testing.T) {
		env := setupRouter(t)
		env.feedback.On("Vote", mock.Anything, player, int64(4), domain.VoteUp).Return(domain.ErrFeedbackNotApproved)

		rec := env.do(http.MethodPost, "/api/v1/feedback/4/vote", userToken, `{"vote_type":"upvote"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domain.CodeFeedbackNotApproved, decodeError(t, rec).Code)
	})

	t.Run("отмена голоса и мои голоса", func(t *testing.T) {
		env := setupRouter(t)
		env.feedback.On("RemoveVote", mock.Anything, player, int64(4)).Return(nil)
		env.feedback.On("MyVotes", mock.Anything, player).Return(map[int64]domain.VoteType{4: domain.VoteDown}, nil)

		assert.Equal(t, http.StatusNoContent, env.do(http.MethodDelete, "/api/v1/feedback/4/vote", userToken, "").Code)
		rec := env.do(http.MethodGet, "/api/v1/feedback/votes", userToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"votes":{"4":"downvote"}}`, rec.Body.String())
	})

	t.Run("модерация", func(t *testing.T) {
		env := setupRouter(t)
		env.feedback.On("Moderate", mock.Anything, admin, int64(4), false).Return(nil)

		assert.Equal(t, http.StatusNoContent,
			env.do(http.MethodPost, "/api/v1/admin/feedback/4/moderate", adminToken, `{"action":"reject"}`).Code)
		assert.Equal(t, http.StatusBadRequest,
			env.do(http.MethodPost, "/api/v1/admin/feedback/4/moderate", adminToken, `{"action":"delete"}`).Code)
	})

	t.Run("смена статуса и полный список", func(t *testing.T) {
		env := setupRouter(t)
		env.feedback.On("SetStatus", mock.Anything, admin, int64(4), domain.FeedbackCompleted).Return(nil)
		env.feedback.On("ListAll", mock.Anything, admin).Return([]*domain.Feedback{}, nil)

		assert.Equal(t, http.StatusNoContent,
			env.do(http.MethodPatch, "/api/v1/admin/feedback/4/status", adminToken, `{"status":"completed"}`).Code)
		assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/v1/admin/feedback", adminToken, "").Code)
	})
}

func TestRouter_Teams(t *testing.T) {
	t.Run("режим по умолчанию - две команды", func(t *testing.T) {
		env := setupRouter(t)
		session := domain.NewTeamBuildSession(admin.UserID, domain.TwoTeams)
		env.roster.On("Balance", mock.Anything, admin, domain.TwoTeams).Return(session, nil)

		rec := env.do(http.MethodPost, "/api/v1/admin/teams/balance", adminToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp domain.TeamBuildSession
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Teams, 2)
	})

	t.Run("три команды", func(t *testing.T) {
		env := setupRouter(t)
		session := domain.NewTeamBuildSession(admin.UserID, domain.ThreeTeams)
		env.roster.On("Balance", mock.Anything, admin, domain.ThreeTeams).Return(session, nil)

		rec := env.do(http.MethodPost, "/api/v1/admin/teams/balance", adminToken, `{"mode":3}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("рейтинги, сессия и очистка", func(t *testing.T) {
		env := setupRouter(t)
		session := domain.NewTeamBuildSession(admin.UserID, domain.TwoTeams)
		session.Ratings = map[string]int{"jdoe": 5}
		env.roster.On("SetRatings", mock.Anything, admin, map[string]int{"jdoe": 5}).Return(session, nil)
		env.roster.On("GetSession", mock.Anything, admin).Return(session, nil)
		env.roster.On("ClearSession", mock.Anything, admin).Return(nil)

		assert.Equal(t, http.StatusOK, env.do(http.MethodPut, "/api/v1/admin/teams/ratings", adminToken, `{"ratings":{"jdoe":5}}`).Code)
		assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/v1/admin/teams/session", adminToken, "").Code)
		assert.Equal(t, http.StatusNoContent, env.do(http.MethodDelete, "/api/v1/admin/teams/session", adminToken, "").Code)
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	env := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/registrants", nil)
	req.Header.Set("Origin", "https://club.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

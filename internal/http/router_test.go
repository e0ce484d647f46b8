package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/apperr"
	"portfolio/internal/appointment"
	"portfolio/internal/auth"
	"portfolio/internal/blog"
	"portfolio/internal/chatbot"
	"portfolio/internal/config"
	"portfolio/internal/contact"
	"portfolio/internal/experience"
	"portfolio/internal/jobs"
	"portfolio/internal/mailer"
	"portfolio/internal/newsletter"
	"portfolio/internal/project"
	"portfolio/internal/settings"
	"portfolio/internal/testimonial"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	handler http.Handler
	db      *gorm.DB
	token   string
}

// newTestServer wires the full router against an in-memory database with one
// admin registered. Each call gets a fresh rate limiter.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&auth.Admin{},
		&appointment.Appointment{},
		&project.Project{},
		&experience.Experience{},
		&blog.BlogPost{},
		&blog.Comment{},
		&contact.Contact{},
		&newsletter.Subscriber{},
		&testimonial.Testimonial{},
		&settings.Setting{},
		&jobs.Job{},
	))

	jwtSvc := auth.NewJWT("test-secret")
	authSvc := &auth.Service{DB: gdb, JWT: jwtSvc}
	admin, err := authSvc.CreateAdmin(context.Background(), "admin@example.com", "s3cret", auth.RoleAdmin)
	require.NoError(t, err)
	token, err := jwtSvc.Sign(admin.ID, admin.Role)
	require.NoError(t, err)

	cfg := config.Config{AdminEmail: "owner@example.com"}
	h := NewRouter(cfg, gdb, jwtSvc, mailer.Log{}, chatbot.NewResponder())
	return &testServer{handler: h, db: gdb, token: token}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(method, path, &buf)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    apperr.Code     `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"requestId"`
	} `json:"meta"`
}

func parse(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestLoginAndMe(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	env := parse(t, w)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Meta.RequestID)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)

	w = ts.do(t, http.MethodGet, "/auth/me", data.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := parse(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, apperr.CodeInvalidCredentials, env.Error.Code)
}

func TestBookingFlow(t *testing.T) {
	ts := newTestServer(t)

	// the slot starts free
	w := ts.do(t, http.MethodGet, "/appointments/available?date=2030-03-04", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	book := map[string]string{
		"name": "Sam", "email": "sam@example.com", "subject": "Design review",
		"date": "2030-03-04", "time": "10:00",
	}
	w = ts.do(t, http.MethodPost, "/appointments/", "", book)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// a second booking for the same slot conflicts
	w = ts.do(t, http.MethodPost, "/appointments/", "", book)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperr.CodeConflict, parse(t, w).Error.Code)

	// and the slot is no longer offered
	w = ts.do(t, http.MethodGet, "/appointments/available?date=2030-03-04", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(parse(t, w).Data, &data))
	assert.NotContains(t, data.Slots, "10:00")

	// the admin list requires a token
	w = ts.do(t, http.MethodGet, "/appointments/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = ts.do(t, http.MethodGet, "/appointments/", ts.token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBooking_ValidationDetails(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/appointments/", "", map[string]string{"name": "Sam"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := parse(t, w)
	assert.Equal(t, apperr.CodeValidation, env.Error.Code)

	var details map[string]string
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "date")
	assert.NotContains(t, details, "name")
}

func TestProjects_PublicReadAdminWrite(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"title": "Portfolio", "description": "This site", "technologies": []string{"go"}}
	w := ts.do(t, http.MethodPost, "/projects/", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/projects/", ts.token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.do(t, http.MethodGet, "/projects/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatbot(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/chatbot/message", "", map[string]string{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(parse(t, w).Data, &data))
	assert.Contains(t, data.Reply, "Hi there")
}

func TestPublicRateLimit(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"message": "hello"}
	var limited bool
	for i := 0; i < 8; i++ {
		w := ts.do(t, http.MethodPost, "/chatbot/message", "", body)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, apperr.CodeRateLimited, parse(t, w).Error.Code)
			limited = true
			break
		}
	}
	assert.True(t, limited, "burst exhausted requests must be limited")
}

func TestUnknownID(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodDelete, "/appointments/999", ts.token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperr.CodeNotFound, parse(t, w).Error.Code)

	w = ts.do(t, http.MethodDelete, "/appointments/abc", ts.token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

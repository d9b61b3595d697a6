package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-contact-backend/config"
	v1 "go-contact-backend/internal/delivery/http/v1"
	"go-contact-backend/internal/usecase"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/mailer"
	"go-contact-backend/pkg/ratelimit"
)

// stubSender records sends instead of talking to a real transport.
type stubSender struct {
	mu         sync.Mutex
	sent       []*mailer.Email
	failAdmin  bool
	configured bool
}

func (s *stubSender) Send(_ context.Context, email *mailer.Email) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAdmin && email.To == "info@groenv8.com" {
		return "", errors.New("smtp: connection refused")
	}
	s.sent = append(s.sent, email)
	return "msg-1", nil
}

func (s *stubSender) IsConfigured() bool {
	return s.configured
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:         "development",
		AllowedOrigins: []string{"https://groenv8.com", "https://www.groenv8.com"},
	}
}

func newTestRouter(t *testing.T, sender mailer.Sender, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	renderer := mailer.NewRenderer("UTC")
	contactUC := usecase.NewContactUsecase(sender, renderer, "noreply@groenv8.com", "info@groenv8.com", true)

	limiter := ratelimit.New(limit, 15*time.Minute, nil)
	t.Cleanup(limiter.Close)

	return v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  usecase.NewHealthUsecase(),
		Limiter:   limiter,
		Config:    testConfig(),
	})
}

func postContact(router *gin.Engine, body string, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitContactEndpoint(t *testing.T) {
	t.Run("Should accept a valid submission", func(t *testing.T) {
		sender := &stubSender{configured: true}
		router := newTestRouter(t, sender, 5)

		w := postContact(router, `{"name":"Jo","email":"jo@example.com","subject":"Hello there","message":"Hi"}`, "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		// Admin notification plus acknowledgement
		assert.Len(t, sender.sent, 2)
	})

	t.Run("Should return per-field errors for an invalid submission", func(t *testing.T) {
		router := newTestRouter(t, &stubSender{configured: true}, 5)

		w := postContact(router, `{"name":"J","email":"not-an-email","subject":"Hi"}`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp struct {
			Success bool              `json:"success"`
			Message string            `json:"message"`
			Errors  map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Validation failed", resp.Message)
		assert.Contains(t, resp.Errors, "name")
		assert.Contains(t, resp.Errors, "email")
		assert.Contains(t, resp.Errors, "subject")
	})

	t.Run("Should answer 500 when the admin send fails", func(t *testing.T) {
		sender := &stubSender{configured: true, failAdmin: true}
		router := newTestRouter(t, sender, 5)

		w := postContact(router, `{"name":"Jo","email":"jo@example.com","subject":"Hello there"}`, "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		// Development mode includes the underlying detail
		assert.Contains(t, resp["error"], "connection refused")
	})

	t.Run("Should answer 503 when the transport is unconfigured", func(t *testing.T) {
		router := newTestRouter(t, &stubSender{configured: false}, 5)

		w := postContact(router, `{"name":"Jo","email":"jo@example.com","subject":"Hello there"}`, "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		router := newTestRouter(t, &stubSender{configured: true}, 5)

		w := postContact(router, `{"name":`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRateLimiting(t *testing.T) {
	router := newTestRouter(t, &stubSender{configured: true}, 5)
	body := `{"name":"Jo","email":"jo@example.com","subject":"Hello there"}`

	for i := 0; i < 5; i++ {
		w := postContact(router, body, "")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := postContact(router, body, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Too many submissions")
}

func TestOriginGate(t *testing.T) {
	body := `{"name":"Jo","email":"jo@example.com","subject":"Hello there"}`

	t.Run("Should allow an allowlisted origin", func(t *testing.T) {
		router := newTestRouter(t, &stubSender{configured: true}, 5)
		w := postContact(router, body, "https://groenv8.com")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://groenv8.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should allow requests without an Origin header", func(t *testing.T) {
		router := newTestRouter(t, &stubSender{configured: true}, 5)
		w := postContact(router, body, "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should reject a disallowed origin", func(t *testing.T) {
		router := newTestRouter(t, &stubSender{configured: true}, 5)
		w := postContact(router, body, "https://evil.example")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should answer preflight for an allowed origin", func(t *testing.T) {
		router := newTestRouter(t, &stubSender{configured: true}, 5)
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://www.groenv8.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubSender{configured: true}, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Server is running", resp["message"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestNoRoute(t *testing.T) {
	router := newTestRouter(t, &stubSender{configured: true}, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Route not found", resp["message"])
}

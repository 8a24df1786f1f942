package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paju/constants"
	"paju/errors"
	"paju/models"
	"paju/repository"
	"paju/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuth(t *testing.T) (*services.AuthService, map[string]string) {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	tokens := services.NewTokenService("test-secret", time.Hour)
	out := map[string]string{}
	for _, u := range []models.User{
		{Username: "admin", Role: constants.RoleAdmin, IsActive: true},
		{Username: "editor", Role: constants.RoleEditor, IsActive: true},
	} {
		u := u
		require.NoError(t, store.Users.Create(ctx, &u))
		token, err := tokens.GenerateToken(services.UserInfo{UserId: u.ID, Username: u.Username, Role: u.Role})
		require.NoError(t, err)
		out[u.Username] = token
	}
	return services.NewAuthService(services.AuthServiceOptions{Users: store.Users, Tokens: tokens}), out
}

func TestAuthMiddleware(t *testing.T) {
	auth, tokens := newAuth(t)
	r := gin.New()
	r.GET("/cms", AuthMiddleware(auth, constants.RoleAdmin, constants.RoleEditor), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", CurrentUserID(c))
	})
	r.GET("/admin", AuthMiddleware(auth, constants.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.CtxUsername))
	})

	do := func(path string, setup func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if setup != nil {
			setup(req)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do("/cms", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do("/cms", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: tokens["editor"]})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Body.String())

	w = do("/admin", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokens["admin"])
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())

	w = do("/admin", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+tokens["editor"])
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do("/cms", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer not-a-jwt")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(repository.ErrNotFound) })
	r.GET("/dup", func(c *gin.Context) { _ = c.Error(repository.ErrDuplicate) })
	r.GET("/bad", func(c *gin.Context) { _ = c.Error(errors.Validation("Bad input")) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(assert.AnError) })

	for path, want := range map[string]int{
		"/missing": http.StatusNotFound,
		"/dup":     http.StatusConflict,
		"/bad":     http.StatusBadRequest,
		"/boom":    http.StatusInternalServerError,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Code, path)
		assert.Contains(t, w.Body.String(), `"code":0`)
	}
}

func TestIPRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(time.Minute, 2)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("2.2.2.2"))

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("1.1.1.1"))

	now = now.Add(time.Hour)
	l.Allow("3.3.3.3")
	assert.Len(t, l.visitors, 1)

	r := gin.New()
	r.POST("/login", NewIPRateLimiter(time.Hour, 1).Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })
	codes := []int{}
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	r := gin.New()
	r.Use(RequestID(), RequestLogger(&log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, id)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), id)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := gin.New()
	r.Use(m.Handler())
	r.GET("/api/menu/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/menu/items/7", nil))
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/menu/items/:id", "200")))
}

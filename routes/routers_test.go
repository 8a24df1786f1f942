package routes

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paju/config"
	"paju/constants"
	"paju/docs"
	"paju/services/logger"
)

type envelope struct {
	Code  int             `json:"code"`
	Mess  string          `json:"mess"`
	Data  json.RawMessage `json:"data"`
	Total *int            `json:"total"`
}

type server struct {
	t      *testing.T
	router *gin.Engine
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("APP_ENV", "development")
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Redis.Addr = ""
	cfg.Database.Driver = "memory"
	cfg.Storage.Backend = "local"
	cfg.Storage.UploadDir = t.TempDir()
	cfg.Auth.LoginBurst = 3

	app, err := config.InitApp(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	_, err = app.Seeder.Seed(context.Background())
	require.NoError(t, err)

	router := app.Router()
	SetupRoutes(router, app)
	return &server{t: t, router: router}
}

func (s *server) do(method, path string, body interface{}, cookie string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *server) login(username, password string) string {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password}, "")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(s.t, 1, env.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.AuthCookieName {
			assert.True(s.t, c.HttpOnly)
			assert.Equal(s.t, http.SameSiteStrictMode, c.SameSite)
			assert.Equal(s.t, 86400, c.MaxAge)
			return c.Value
		}
	}
	s.t.Fatal("no auth cookie")
	return ""
}

func TestPublicRoutes(t *testing.T) {
	s := newServer(t)

	w, _ := s.do(http.MethodGet, "/ping", nil, "")
	assert.Equal(t, "pong", w.Body.String())

	w, env := s.do(http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"store":"memory"`)
	assert.Contains(t, string(env.Data), `"cache":"disabled"`)

	_, env = s.do(http.MethodGet, "/api/restaurant/hours", nil, "")
	var days []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &days))
	assert.Len(t, days, 7)

	_, env = s.do(http.MethodGet, "/api/restaurant/hours/display", nil, "")
	var view struct {
		Groups []struct {
			Label    string   `json:"label"`
			Closed   bool     `json:"closed"`
			Services []string `json:"services"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Len(t, view.Groups, 4)
	assert.Equal(t, "Monday - Thursday", view.Groups[0].Label)
	assert.Equal(t, []string{"Lunch: 11:00AM - 3:00PM", "Dinner: 5:00PM - 9:00PM"}, view.Groups[0].Services)

	_, env = s.do(http.MethodGet, "/api/menu/items?menuType=lunch", nil, "")
	require.NotNil(t, env.Total)
	assert.Equal(t, 2, *env.Total)

	w, _ = s.do(http.MethodGet, "/api/menu/items?menuType=brunch", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, env = s.do(http.MethodGet, "/api/menu/display", nil, "")
	assert.Contains(t, string(env.Data), `"selected":"dinner"`)

	_, env = s.do(http.MethodGet, "/api/menu/items/search?q=kimchi", nil, "")
	require.NotNil(t, env.Total)
	assert.GreaterOrEqual(t, *env.Total, 2)
	assert.Contains(t, string(env.Data), "Kimchi Jjigae")

	_, env = s.do(http.MethodGet, "/api/menu/enabled", nil, "")
	assert.JSONEq(t, `["breakfast","lunch","dinner"]`, string(env.Data))

	_, env = s.do(http.MethodGet, "/api/announcements/active", nil, "")
	assert.JSONEq(t, `[]`, string(env.Data))

	w, _ = s.do(http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "paju_http_requests_total")
}

func TestAuthFlow(t *testing.T) {
	s := newServer(t)

	w, env := s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, env.Code)

	token := s.login("admin", "admin123")
	w, env = s.do(http.MethodGet, "/api/auth/verify", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"username":"admin"`)
	assert.NotContains(t, string(env.Data), "password")

	w, _ = s.do(http.MethodGet, "/api/auth/verify", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodPost, "/api/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "auth-token=;")

	for i := 0; i < 3; i++ {
		s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "bad"}, "")
	}
	w, _ = s.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin123"}, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCMSRoutes(t *testing.T) {
	s := newServer(t)
	editor := s.login("editor", "editor123")

	w, _ := s.do(http.MethodPost, "/api/menu/items", map[string]interface{}{"title": "Japchae", "price": 15, "category": "Entrees", "menuType": "lunch"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := s.do(http.MethodPost, "/api/menu/items", map[string]interface{}{"title": "Japchae", "price": 15, "category": "Entrees", "menuType": "lunch"}, editor)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &item))

	w, _ = s.do(http.MethodPost, "/api/menu/items", map[string]interface{}{"title": "Japchae", "category": "Entrees", "menuType": "lunch"}, editor)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPut, "/api/menu/items/"+itoa(item.ID), map[string]interface{}{"isAvailable": false}, editor)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodPut, "/api/menu/items/abc", map[string]interface{}{}, editor)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = s.do(http.MethodDelete, "/api/menu/items/9999", nil, editor)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(http.MethodDelete, "/api/menu/items/"+itoa(item.ID), nil, editor)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodPut, "/api/menu/status", map[string]interface{}{"menuType": "breakfast", "isEnabled": false}, editor)
	assert.Equal(t, http.StatusOK, w.Code)
	_, env = s.do(http.MethodGet, "/api/menu/enabled", nil, "")
	assert.JSONEq(t, `["lunch","dinner"]`, string(env.Data))

	w, env = s.do(http.MethodPut, "/api/restaurant/hours/1", map[string]interface{}{"dinnerCloseTime": "22:00"}, editor)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, string(env.Data), `"closeTime":"22:00"`)
	w, _ = s.do(http.MethodPut, "/api/restaurant/hours/1", map[string]interface{}{"dinnerCloseTime": "10pm"}, editor)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPost, "/api/announcements", map[string]interface{}{"title": "Open late", "message": "Fridays until 11"}, editor)
	assert.Equal(t, http.StatusCreated, w.Code)
	_, env = s.do(http.MethodGet, "/api/announcements/active", nil, "")
	assert.Contains(t, string(env.Data), "Open late")

	req := httptest.NewRequest(http.MethodGet, "/api/menu/items/export", nil)
	req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: editor})
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

	w, _ = s.do(http.MethodGet, "/api/users", nil, editor)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(http.MethodPost, "/api/tools/migrate-uploads", nil, editor)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUploadRoute(t *testing.T) {
	s := newServer(t)
	editor := s.login("editor", "editor123")

	upload := func(name string, data []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		_, _ = part.Write(data)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: editor})
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		return w
	}

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	w := upload("Galbi Jjim.png", png)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var res struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, strings.HasPrefix(res.URL, "/uploads/galbi-jjim-"))

	get, _ := s.do(http.MethodGet, res.URL, nil, "")
	assert.Equal(t, http.StatusOK, get.Code)

	w = upload("notes.txt", []byte("plain text"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserAdminRoutes(t *testing.T) {
	s := newServer(t)
	admin := s.login("admin", "admin123")

	w, env := s.do(http.MethodGet, "/api/users", nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(env.Data), "password")

	w, _ = s.do(http.MethodPost, "/api/users", map[string]interface{}{"username": "server1", "password": "secret1"}, admin)
	assert.Equal(t, http.StatusCreated, w.Code)
	w, _ = s.do(http.MethodPost, "/api/users", map[string]interface{}{"username": "server1", "password": "secret1"}, admin)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(http.MethodDelete, "/api/users/1", nil, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = s.do(http.MethodPut, "/api/users/1", map[string]interface{}{"isActive": false}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(http.MethodPost, "/api/tools/migrate-uploads", nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"toMigrate":0`)

	w, env = s.do(http.MethodPost, "/api/init/seed", nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"users":0`)
}

func TestSwaggerCoversAPIRoutes(t *testing.T) {
	s := newServer(t)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	checked := 0
	for _, r := range s.router.Routes() {
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		parts := strings.Split(r.Path, "/")
		for i, p := range parts {
			if strings.HasPrefix(p, ":") {
				parts[i] = "{" + p[1:] + "}"
			}
		}
		path := strings.Join(parts, "/")
		_, ok := doc.Paths[path][strings.ToLower(r.Method)]
		assert.True(t, ok, "%s %s missing from swagger", r.Method, path)
		checked++
	}
	assert.Equal(t, 34, checked)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

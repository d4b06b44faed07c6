package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gemgeek/alx-listing-app-deployed/internal/config"
	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Addr: ":0", WriteTimeout: time.Second},
		Logger:  config.LoggerConfig{Engine: "slog", Level: "error"},
		Gin:     config.GinConfig{Mode: "test"},
		CORS:    config.CORSConfig{AllowOrigins: []string{"*"}, MaxAge: time.Hour},
		Catalog: config.CatalogConfig{Source: config.CatalogSourceSeed},
		Notify:  config.NotifyConfig{Workers: 1, SendTimeout: time.Second},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(testConfig())
	require.NoError(t, err)
	t.Cleanup(a.closeNotifications)
	return a
}

func TestApp_ServesSeedCatalog(t *testing.T) {
	a := newTestApp(t)

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/properties", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var props []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &props))
	require.Len(t, props, 3)
	assert.Equal(t, "1", props[0]["id"])
	assert.Equal(t, "Cozy Beachfront Cottage", props[0]["name"])
	assert.Equal(t, float64(300), props[0]["price"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestApp_BookingFlow(t *testing.T) {
	a := newTestApp(t)

	body := []byte(`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","cardNumber":"4111111111111111"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message   string `json:"message"`
		BookingID string `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking confirmed!", resp.Message)
	assert.Regexp(t, `^bk_\d+$`, resp.BookingID)
}

func TestApp_BookingMissingFields(t *testing.T) {
	a := newTestApp(t)

	body := []byte(`{"firstName":"","lastName":"Doe","email":"a@b.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation error: missing required fields: firstName", resp.Message)
	assert.NotContains(t, resp.Message, "lastName")
	assert.NotContains(t, resp.Message, "email")
}

func TestApp_PlainOptionsIs405(t *testing.T) {
	a := newTestApp(t)

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/properties", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET", w.Header().Get("Allow"))
}

func TestApp_CORSPreflight(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCheckOrphans(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	catalog, err := repository.NewCatalog(
		[]domain.Property{{ID: "1", Name: "Cottage", Rating: 4}},
		[]domain.Review{
			{ID: "r1", PropertyID: "1", User: "Alice", Rating: 5},
			{ID: "r9", PropertyID: "42", User: "Ghost", Rating: 3},
		},
	)
	require.NoError(t, err)

	assert.NoError(t, checkOrphans(catalog, false, log))

	err = checkOrphans(catalog, true, log)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestCorsConfig(t *testing.T) {
	cc := corsConfig(config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}})
	assert.False(t, cc.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:3000"}, cc.AllowOrigins)

	cc = corsConfig(config.CORSConfig{AllowOrigins: []string{"*"}})
	assert.True(t, cc.AllowAllOrigins)
	assert.Empty(t, cc.AllowOrigins)
}

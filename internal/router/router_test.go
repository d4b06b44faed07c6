package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
	"github.com/gemgeek/alx-listing-app-deployed/internal/handler"
	hmocks "github.com/gemgeek/alx-listing-app-deployed/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
)

func newTestEngine(t *testing.T) (*hmocks.MockPropertySvc, *ginext.Engine) {
	t.Helper()
	propertySvc := hmocks.NewMockPropertySvc(t)
	h := handler.NewHandler(propertySvc, hmocks.NewMockReviewSvc(t), hmocks.NewMockBookingSvc(t))
	return propertySvc, InitRouter("test", h)
}

func serve(e http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestInitRouter_ServesDeclaredMethod(t *testing.T) {
	propertySvc, e := newTestEngine(t)

	propertySvc.EXPECT().List(mock.Anything).Return([]domain.Property{{ID: "1"}}, nil)

	w := serve(e, http.MethodGet, "/api/properties")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitRouter_OtherMethodsAre405(t *testing.T) {
	tests := []struct {
		method string
		path   string
		allow  string
	}{
		{http.MethodPost, "/api/properties", "GET"},
		{http.MethodDelete, "/api/properties/1", "GET"},
		{http.MethodHead, "/api/properties/1/reviews", "GET"},
		{http.MethodGet, "/api/bookings", "POST"},
		{http.MethodPatch, "/api/bookings", "POST"},
		{http.MethodOptions, "/api/properties", "GET"},
		{http.MethodOptions, "/api/bookings", "POST"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			_, e := newTestEngine(t)

			w := serve(e, tt.method, tt.path)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("Allow"))
			if tt.method != http.MethodHead {
				assert.JSONEq(t, `{"message":"Method `+tt.method+` Not Allowed"}`, w.Body.String())
			}
		})
	}
}

func TestInitRouter_UnknownRoute(t *testing.T) {
	_, e := newTestEngine(t)

	w := serve(e, http.MethodGet, "/api/properties/1/photos")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"route not found"}`, w.Body.String())
}

func TestInitRouter_Health(t *testing.T) {
	_, e := newTestEngine(t)

	w := serve(e, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRoutes(t *testing.T) {
	_, e := newTestEngine(t)

	routes := Routes(e)

	assert.Contains(t, routes, "GET /api/properties")
	assert.Contains(t, routes, "GET /api/properties/:id")
	assert.Contains(t, routes, "GET /api/properties/:id/reviews")
	assert.Contains(t, routes, "POST /api/bookings")
	assert.Contains(t, routes, "GET /health")
	assert.IsNonDecreasing(t, routes)
}

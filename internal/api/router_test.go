package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/juncos22/projecthub/internal/api"
	"github.com/juncos22/projecthub/internal/api/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_UnwiredRouteReturns501(t *testing.T) {
	router := api.NewRouter(api.Dependencies{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/acme", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_IMPLEMENTED", body["error"].(map[string]any)["code"])
}

func TestRouter_WiredRoutes(t *testing.T) {
	called := map[string]bool{}
	mark := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			called[name] = true
			response.JSON(w, nil)
		}
	}

	router := api.NewRouter(api.Dependencies{
		HealthHandler:        mark("health"),
		TenantHandler:        mark("tenant"),
		DashboardHandler:     mark("dashboard"),
		ProjectListHandler:   mark("projects"),
		ProjectDetailHandler: mark("detail"),
	})

	paths := []string{
		"/api/v1/health",
		"/api/v1/tenants/acme",
		"/api/v1/tenants/acme/dashboard",
		"/api/v1/tenants/acme/projects",
		"/api/v1/tenants/acme/projects/acme-1",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	for _, name := range []string{"health", "tenant", "dashboard", "projects", "detail"} {
		assert.True(t, called[name], "handler %s not routed", name)
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := api.NewRouter(api.Dependencies{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := api.NewRouter(api.Dependencies{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nothing-here", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

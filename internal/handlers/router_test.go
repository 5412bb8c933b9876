package handlers

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tldm-bits/ordnance-service/internal/rfid"
	"github.com/tldm-bits/ordnance-service/internal/service"
)

func newConfiguredRouters(t *testing.T) (public, internal *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	public = gin.New()
	SetupRoutes(public, &RouterConfig{
		InventoryService:      &service.MockInventoryService{},
		RecommendationService: &service.MockRecommendationService{},
		ForecastService:       &service.MockForecastService{},
		RFIDSimulator:         rfid.NewSimulator(rand.New(rand.NewSource(1)), 8, nil),
		Metrics:               nil,
		RecommendRatePerMin:   100,
		Logger:                testLogger(),
	})

	internal = gin.New()
	SetupInternalRoutes(internal, testLogger(), nil, nil)
	return public, internal
}

func TestSetupRoutes_PublicEndpoints(t *testing.T) {
	public, _ := newConfiguredRouters(t)

	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/api/ordnance/items"},
		{"POST", "/api/ordnance/items"},
		{"POST", "/api/ordnance/transfers"},
		{"GET", "/api/ordnance/transfers"},
		{"GET", "/api/ordnance/readiness"},
		{"POST", "/api/ordnance/recommendations/generate"},
		{"GET", "/api/ordnance/recommendations/status"},
		{"POST", "/api/ordnance/forecasts/generate"},
		{"POST", "/api/ordnance/forecasts/scenarios"},
		{"GET", "/api/ordnance/forecasts"},
		{"GET", "/api/ordnance/forecasts/fcst_2025_06_01_ab12cd34"},
		{"POST", "/api/ordnance/forecasts/fcst_2025_06_01_ab12cd34/accuracy"},
		{"GET", "/api/ordnance/forecasts/alerts/active"},
		{"GET", "/api/ordnance/rfid/tags"},
		{"POST", "/api/ordnance/rfid/scan"},
		{"POST", "/api/ordnance/rfid/transfer"},
		{"GET", "/api/ordnance/rfid/alerts"},
		{"POST", "/api/ordnance/rfid/audit"},
	}

	for _, e := range endpoints {
		t.Run(e.method+" "+e.path, func(t *testing.T) {
			req := httptest.NewRequest(e.method, e.path, nil)
			w := httptest.NewRecorder()
			public.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code,
				"endpoint %s %s should be registered on the public router", e.method, e.path)
		})
	}
}

func TestSetupRoutes_ServerSeparation(t *testing.T) {
	public, internal := newConfiguredRouters(t)

	t.Run("operational endpoints only on internal router", func(t *testing.T) {
		for _, path := range []string{"/health", "/metrics"} {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			public.ServeHTTP(w, req)
			assert.Equal(t, http.StatusNotFound, w.Code,
				"%s should not be accessible on the public router", path)

			req = httptest.NewRequest("GET", path, nil)
			w = httptest.NewRecorder()
			internal.ServeHTTP(w, req)
			assert.NotEqual(t, http.StatusNotFound, w.Code,
				"%s should be registered on the internal router", path)
		}
	})

	t.Run("API endpoints not on internal router", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/ordnance/items", nil)
		w := httptest.NewRecorder()
		internal.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSetupRoutes_MetricsEndpointServesPrometheus(t *testing.T) {
	_, internal := newConfiguredRouters(t)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	internal.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dariiabiriuk/dateval/internal/adapters/http/handlers"
	"github.com/dariiabiriuk/dateval/internal/app"
	"github.com/dariiabiriuk/dateval/internal/platform/config"
	"github.com/dariiabiriuk/dateval/internal/platform/logging"
	"github.com/dariiabiriuk/dateval/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: time.Second,
		MaxRequestSize:  1 << 20,
	}
}

func testRouterEngine(t *testing.T, authCfg *config.AuthConfig) *gin.Engine {
	t.Helper()

	logger := logging.NewWithWriter(&logging.Config{Level: "error", Format: "json"}, &strings.Builder{})

	service := app.NewDateService(app.DateServiceConfig{
		Logger:     logger,
		Registerer: prometheus.NewRegistry(),
	})

	registry := ports.NewHealthRegistry()
	healthHandler := handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now"))
	dateHandler := handlers.NewDateHandler(service)

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:        logger,
		AuthConfig:    authCfg,
		AppConfig:     &config.AppConfig{Name: "dateval", Environment: "test"},
		HealthHandler: healthHandler,
		DateHandler:   dateHandler,
		Timeout:       5 * time.Second,
	})

	return engine
}

func TestServerLifecycle(t *testing.T) {
	logger := logging.NewWithWriter(&logging.Config{Level: "error", Format: "json"}, &strings.Builder{})

	srv := New(testServerConfig(), logger)
	require.NotNil(t, srv)
	require.NotNil(t, srv.Engine())
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	errCh := srv.Start()

	// Give the listener a moment, then shut down cleanly.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	err, open := <-errCh
	if open {
		assert.NoError(t, err)
	}
}

func TestSetupRouter_Routes(t *testing.T) {
	engine := testRouterEngine(t, nil)

	routeMap := make(map[string]bool)
	for _, r := range engine.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	for _, expected := range []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /-/build",
		"GET /-/metrics",
		"POST /api/v1/dates/check",
		"POST /api/v1/dates/check-batch",
		"POST /api/v1/dates/compare",
		"GET /api/v1/calendar/leap-years/:year",
		"GET /api/v1/calendar/months/:month/days",
	} {
		assert.True(t, routeMap[expected], "missing route: %s", expected)
	}
}

func TestSetupRouter_EndToEnd(t *testing.T) {
	engine := testRouterEngine(t, nil)

	t.Run("health probe", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("date check through the full chain", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dates/check",
			strings.NewReader(`{"day": 22, "month": 11, "year": 2002}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "22/11/2002")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
	})
}

func TestSetupRouter_AuthEnabled(t *testing.T) {
	engine := testRouterEngine(t, &config.AuthConfig{Enabled: true})

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dates/check",
			strings.NewReader(`{"day": 1, "month": 1, "year": 2000}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("health endpoints stay open", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("gateway headers pass", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dates/check",
			strings.NewReader(`{"day": 1, "month": 1, "year": 2000}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMaxBodySize(t *testing.T) {
	logger := logging.NewWithWriter(&logging.Config{Level: "error", Format: "json"}, &strings.Builder{})

	cfg := testServerConfig()
	cfg.MaxRequestSize = 16

	srv := New(cfg, logger)
	srv.Engine().POST("/echo", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader(`{"key": "a value that exceeds sixteen bytes"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSetupMinimalRouter(t *testing.T) {
	logger := logging.NewWithWriter(&logging.Config{Level: "error", Format: "json"}, &strings.Builder{})

	registry := ports.NewHealthRegistry()
	healthHandler := handlers.NewHealthHandler(registry, handlers.BuildInfo{})

	engine := gin.New()
	SetupMinimalRouter(engine, logger, healthHandler)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/ready", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

package server

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"notebook-query-be/internal/bootstrap"
	"notebook-query-be/internal/config"
	"notebook-query-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	log := logger.NewFromZap(zap.NewNop())

	repos, _, err := bootstrap.OpenStore(context.Background(), cfg.Database, log)
	require.NoError(t, err)
	container, err := bootstrap.NewContainer(cfg, repos, log)
	require.NoError(t, err)
	return New(cfg, container)
}

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Host: "127.0.0.1", Port: "3030", CorsAllowedOrigins: "*"},
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
	}
}

func TestServerRoutes(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(fiber.MethodPost, "/query", strings.NewReader(`{"query":"{ apiVersion }"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := s.GetApp().Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data":{"apiVersion":"1.0"}}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = s.GetApp().Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUnknownRouteRendersJSONError(t *testing.T) {
	s := newTestServer(t, testConfig())

	resp, err := s.GetApp().Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"errors":[{"message":"Cannot GET /metrics"}]`)
}

func TestMetricsListenerIsOptional(t *testing.T) {
	assert.Nil(t, newTestServer(t, testConfig()).metrics)

	cfg := testConfig()
	cfg.App.MetricsAddr = "127.0.0.1:0"
	s := newTestServer(t, cfg)
	require.NotNil(t, s.metrics)

	rec := httptest.NewRecorder()
	s.metrics.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

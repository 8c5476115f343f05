package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	accessRest "github.com/AzielCF/az-access/access/adapter/rest"
	"github.com/AzielCF/az-access/access/application"
	"github.com/AzielCF/az-access/access/domain"
	"github.com/AzielCF/az-access/access/repository"
	coreconfig "github.com/AzielCF/az-access/core/config"
	"github.com/AzielCF/az-access/validations"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, basePath string, checks ...ReadinessCheck) *fiber.App {
	t.Helper()
	cfg := &coreconfig.Config{
		App:    coreconfig.AppConfig{BasePath: basePath, CorsAllowedOrigins: []string{"*"}},
		Access: coreconfig.AccessConfig{DurationHours: 24, EnumField: coreconfig.EnumFieldServiceID, AllowedCodes: coreconfig.DefaultAllowedCodes},
	}
	svc := application.NewGrantService(repository.NewGrantMemoryRepository(), repository.NewMemoryKeyLocker(), domain.NewExpiryPolicy(24))
	handler := accessRest.NewGrantHandler(svc, validations.NewGrantValidator(cfg.Access))
	return NewServer(cfg, handler, checks...)
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	app := newTestServer(t, "")

	resp, body := get(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out HealthResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "OK", out.Status)
	assert.Equal(t, "API is healthy and running", out.Message)
	_, err := time.Parse(time.RFC3339, out.Timestamp)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestReadiness(t *testing.T) {
	ok := ReadinessCheck{Name: "database", Check: func(context.Context) error { return nil }}
	disabled := ReadinessCheck{Name: "valkey"}

	resp, body := get(t, newTestServer(t, "", ok, disabled), "/health/ready")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"OK","checks":{"database":"OK","valkey":"DISABLED"}}`, string(body))

	failing := ReadinessCheck{Name: "database", Check: func(context.Context) error { return errors.New("dial tcp: refused") }}
	resp, body = get(t, newTestServer(t, "", failing, disabled), "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ERROR","checks":{"database":"ERROR","valkey":"DISABLED"}}`, string(body))
}

func TestNotFoundFallback(t *testing.T) {
	resp, body := get(t, newTestServer(t, ""), "/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Not Found","path":"/nope"}`, string(body))
}

func TestBasePath(t *testing.T) {
	app := newTestServer(t, "/api/v1")

	resp, _ := get(t, app, "/api/v1/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := get(t, app, "/api/v1/content-security")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	resp, _ = get(t, app, "/content-security")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDocs(t *testing.T) {
	app := newTestServer(t, "")

	resp, body := get(t, app, "/docs/doc.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "/content-security/filter"))

	resp, _ = get(t, app, "/docs/index.html")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCorsOrigins(t *testing.T) {
	assert.Equal(t, "*", corsOrigins(coreconfig.AppConfig{BaseUrl: "http://localhost:3300"}))
	assert.Equal(t, "https://a.example, http://localhost:3300",
		corsOrigins(coreconfig.AppConfig{CorsAllowedOrigins: []string{"https://a.example"}, BaseUrl: "http://localhost:3300"}))
}

package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/configs"
	helper "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers"
)

func newPingMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newPingMock(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	SetupRoutes(app, db, configs.Config{SecretKey: "routes-secret"}, prometheus.NewRegistry())
	return app, mock
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func TestHealth(t *testing.T) {
	app, _ := newApp(t)

	status, body := get(t, app, "/health")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestHealthReady(t *testing.T) {
	app, mock := newApp(t)

	mock.ExpectPing()
	status, body := get(t, app, "/health/ready")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	status, body = get(t, app, "/health/ready")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "unavailable", body["status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app, _ := newApp(t)

	for _, path := range []string{"/api/v1/users", "/api/v1/admins", "/api/v1/admins/me", "/api/v1/courses/1/registrations"} {
		status, body := get(t, app, path)
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
		assert.Equal(t, "Missing or invalid Authorization header", body["error"], path)
	}

	req := httptest.NewRequest("POST", "/api/v1/courses", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

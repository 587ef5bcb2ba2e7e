package config

import (
	"ReceiptTracker/internal/validation"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AppConfig {
	return &AppConfig{
		App:      App{Name: "Receipt Tracker", Version: "1.0.0", Env: "test", Port: "0", APIKey: "secret"},
		Database: Database{MaxOpenConns: 1},
		Limiter:  Limiter{RPS: 1000, Burst: 1000},
	}
}

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := testConfig()
	server, err := NewServer(
		WithFiber(NewFiber(cfg)),
		WithLogger(log),
		WithConfig(cfg),
		WithValidator(validation.New()),
		WithDB(sqlx.NewDb(db, "postgres")),
		WithMiddleware(),
	)
	require.NoError(t, err)

	server.RegisterHandler()
	return server, mock
}

func TestNewServerRequiresOptions(t *testing.T) {
	_, err := NewServer()
	assert.Error(t, err)

	_, err = NewServer(WithFiber(fiber.New()), WithLogger(logrus.New()))
	assert.Error(t, err)

	_, err = NewServer(WithMiddleware())
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := server.engine.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHealthzPingsDatabase(t *testing.T) {
	server, mock := newTestServer(t)
	mock.ExpectPing()

	resp, err := server.engine.Test(httptest.NewRequest(fiber.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthzDatabaseDown(t *testing.T) {
	server, mock := newTestServer(t)
	mock.ExpectPing().WillReturnError(assert.AnError)

	resp, err := server.engine.Test(httptest.NewRequest(fiber.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestRoutesRequireAPIKey(t *testing.T) {
	server, _ := newTestServer(t)

	for _, path := range []string{
		"/user/1",
		"/user/1/categories",
		"/user/1/transactions",
		"/user/1/transactions/2/purchases/categories",
		"/user/1/budgets/compare",
		"/admin/info",
	} {
		resp, err := server.engine.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestAdminInfo(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(fiber.MethodGet, "/admin/info/", nil)
	req.Header.Set("access_token", "secret")

	resp, err := server.engine.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"project_name":"Receipt Tracker","version":"1.0.0"}`, string(body))
}

type closingCache struct {
	closed int
	err    error
}

func (c *closingCache) GetJSON(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (c *closingCache) SetJSON(context.Context, string, interface{}, time.Duration) error {
	return nil
}

func (c *closingCache) Incr(context.Context, string) (int64, error) {
	return 0, nil
}

func (c *closingCache) DeleteByPrefix(context.Context, string) error {
	return nil
}

func (c *closingCache) Close() error {
	c.closed++
	return c.err
}

func TestShutdownClosesDatabaseAndCache(t *testing.T) {
	server, mock := newTestServer(t)
	cache := &closingCache{}
	require.NoError(t, WithRedisServer(cache)(server))
	mock.ExpectClose()

	require.NoError(t, server.Shutdown(context.Background()))
	assert.Equal(t, 1, cache.closed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShutdownReportsCacheCloseFailure(t *testing.T) {
	server, mock := newTestServer(t)
	cache := &closingCache{err: errors.New("use of closed network connection")}
	require.NoError(t, WithRedisServer(cache)(server))
	mock.ExpectClose()

	err := server.Shutdown(context.Background())
	assert.ErrorIs(t, err, cache.err)
	assert.Equal(t, 1, cache.closed)
}

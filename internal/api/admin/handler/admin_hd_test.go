package adminHandler

import (
	"ReceiptTracker/internal/api/admin"
	"ReceiptTracker/internal/middleware"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	m := middleware.New(log, middleware.Options{APIKey: "secret"})
	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	New(log, m, admin.InfoResponse{ProjectName: "Receipt Tracker", Version: "1.2.0"}).Start(app)

	for _, path := range []string{"/admin/info", "/admin/info/"} {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		req.Header.Set(middleware.APIKeyHeader, "secret")

		resp, err := app.Test(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.JSONEq(t, `{"project_name":"Receipt Tracker","version":"1.2.0"}`, string(body))
	}
}

func TestGetInfoRequiresKey(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	m := middleware.New(log, middleware.Options{APIKey: "secret"})
	app := fiber.New()
	New(log, m, admin.InfoResponse{}).Start(app)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/info", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

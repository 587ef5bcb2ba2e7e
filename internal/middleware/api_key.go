package middleware

import (
	"ReceiptTracker/pkg/handlerUtil"
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// APIKeyHeader carries the static key on every protected route.
const APIKeyHeader = "access_token"

type apiKeyMiddleware struct {
	key []byte
}

func newAPIKeyMiddleware(key string) *apiKeyMiddleware {
	return &apiKeyMiddleware{key: []byte(key)}
}

func (a *apiKeyMiddleware) matches(candidate string) bool {
	if len(a.key) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(a.key, []byte(candidate)) == 1
}

// NewAPIKeyMiddleware rejects requests without a key with 401 and requests
// with a wrong key with 403.
func (m *middleware) NewAPIKeyMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)
	candidate := ctx.Get(APIKeyHeader)

	if candidate == "" {
		return handlerUtil.New(m.log).HandleUnauthorized(ctx, requestID, "Missing API key")
	}

	if !m.apiKey.matches(candidate) {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"ip":         ctx.IP(),
		}).Warn("Invalid API key")
		return ctx.Status(fiber.StatusForbidden).JSON(handlerUtil.ErrorResponse{
			Error: "Invalid API key",
			Code:  "FORBIDDEN",
		})
	}

	return ctx.Next()
}

package adminHandler

import (
	"ReceiptTracker/internal/api/admin"
	"ReceiptTracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	log        *logrus.Logger
	middleware middleware.Middleware
	info       admin.InfoResponse
}

func New(log *logrus.Logger, middleware middleware.Middleware, info admin.InfoResponse) *AdminHandler {
	return &AdminHandler{
		log:        log,
		middleware: middleware,
		info:       info,
	}
}

func (h *AdminHandler) Start(srv fiber.Router) {
	admins := srv.Group("/admin")

	admins.Get("/info", h.middleware.NewAPIKeyMiddleware, h.GetInfo)
}

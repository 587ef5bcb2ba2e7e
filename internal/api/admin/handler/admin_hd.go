package adminHandler

import (
	"ReceiptTracker/pkg/handlerUtil"
	"ReceiptTracker/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *AdminHandler) GetInfo(ctx *fiber.Ctx) error {
	h.log.WithFields(log.Fields{
		"request_id": h.middleware.GetRequestID(ctx),
		"path":       ctx.Path(),
	}).Debug("Processing admin info request")

	return handlerUtil.New(h.log).HandleSuccess(ctx, fiber.StatusOK, h.info)
}

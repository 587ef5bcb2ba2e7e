package purchaseHandler

import (
	purchaseService "ReceiptTracker/internal/api/purchase/service"
	"ReceiptTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PurchaseHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	purchaseService purchaseService.IPurchaseService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	purchaseService purchaseService.IPurchaseService,
) *PurchaseHandler {
	return &PurchaseHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		purchaseService: purchaseService,
	}
}

func (h *PurchaseHandler) Start(srv fiber.Router) {
	purchases := srv.Group("/user/:user_id<int>/transactions/:transaction_id<int>/purchases")

	purchases.Post("/", h.middleware.NewAPIKeyMiddleware, h.CreatePurchase)
	purchases.Get("/", h.middleware.NewAPIKeyMiddleware, h.ListPurchases)
	purchases.Get("/:purchase_id<int>", h.middleware.NewAPIKeyMiddleware, h.GetPurchase)
	purchases.Put("/:purchase_id<int>", h.middleware.NewAPIKeyMiddleware, h.UpdatePurchase)
	purchases.Delete("/:purchase_id<int>", h.middleware.NewAPIKeyMiddleware, h.DeletePurchase)
}

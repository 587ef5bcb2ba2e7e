package transactionHandler

import (
	transactionService "ReceiptTracker/internal/api/transaction/service"
	"ReceiptTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/user/:user_id<int>/transactions")

	transactions.Post("/", h.middleware.NewAPIKeyMiddleware, h.CreateTransaction)
	transactions.Get("/", h.middleware.NewAPIKeyMiddleware, h.ListTransactions)
	transactions.Get("/:transaction_id<int>", h.middleware.NewAPIKeyMiddleware, h.GetTransaction)
	transactions.Put("/:transaction_id<int>", h.middleware.NewAPIKeyMiddleware, h.UpdateTransaction)
	transactions.Delete("/:transaction_id<int>", h.middleware.NewAPIKeyMiddleware, h.DeleteTransaction)
}

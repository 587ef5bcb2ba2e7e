package budgetHandler

import (
	budgetService "ReceiptTracker/internal/api/budget/service"
	"ReceiptTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.IBudgetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	budgetService budgetService.IBudgetService,
) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: budgetService,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budgets := srv.Group("/user/:user_id<int>/budgets")

	budgets.Post("/", h.middleware.NewAPIKeyMiddleware, h.CreateBudget)
	budgets.Get("/", h.middleware.NewAPIKeyMiddleware, h.GetBudget)
	budgets.Put("/:budget_id<int>", h.middleware.NewAPIKeyMiddleware, h.UpdateBudget)
	budgets.Delete("/:budget_id<int>", h.middleware.NewAPIKeyMiddleware, h.DeleteBudget)
}

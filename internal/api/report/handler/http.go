package reportHandler

import (
	reportService "ReceiptTracker/internal/api/report/service"
	"ReceiptTracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	log           *logrus.Logger
	middleware    middleware.Middleware
	reportService reportService.IReportService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	reportService reportService.IReportService,
) *ReportHandler {
	return &ReportHandler{
		log:           log,
		middleware:    middleware,
		reportService: reportService,
	}
}

// Start must run before the purchase and budget handlers register their
// groups so the literal segments win over the numeric ones.
func (h *ReportHandler) Start(srv fiber.Router) {
	user := srv.Group("/user/:user_id<int>")

	user.Get("/categories", h.middleware.NewAPIKeyMiddleware, h.GetCategorizedSpend)
	user.Get("/transactions/:transaction_id<int>/purchases/categories", h.middleware.NewAPIKeyMiddleware, h.GetTransactionCategoryTotals)
	user.Get("/budgets/compare", h.middleware.NewAPIKeyMiddleware, h.CompareBudget)
}

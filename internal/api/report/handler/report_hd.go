package reportHandler

import (
	"ReceiptTracker/internal/api/report"
	"ReceiptTracker/internal/entity"
	contextPkg "ReceiptTracker/pkg/context"
	"ReceiptTracker/pkg/handlerUtil"
	"ReceiptTracker/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *ReportHandler) GetCategorizedSpend(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing categorized spend request")

	userID, ok := handlerUtil.ParseID(ctx.Params("user_id"))
	if !ok {
		return errHandler.Handle(ctx, requestID, report.ErrInvalidID, ctx.Path(), "parse_user_id")
	}

	res, err := h.reportService.GetCategorizedSpend(c, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "categorized_spend")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ReportHandler) GetTransactionCategoryTotals(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing transaction category totals request")

	userID, ok := handlerUtil.ParseID(ctx.Params("user_id"))
	if !ok {
		return errHandler.Handle(ctx, requestID, report.ErrInvalidID, ctx.Path(), "parse_user_id")
	}
	transactionID, ok := handlerUtil.ParseID(ctx.Params("transaction_id"))
	if !ok {
		return errHandler.Handle(ctx, requestID, report.ErrInvalidID, ctx.Path(), "parse_transaction_id")
	}

	res, err := h.reportService.GetTransactionCategoryTotals(c, userID, transactionID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "transaction_category_totals")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ReportHandler) CompareBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing budget comparison request")

	userID, ok := handlerUtil.ParseID(ctx.Params("user_id"))
	if !ok {
		return errHandler.Handle(ctx, requestID, report.ErrInvalidID, ctx.Path(), "parse_user_id")
	}

	rng, err := entity.ParseDateRange(ctx.Query("date_from"), ctx.Query("date_to"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, report.ErrInvalidDateRange, ctx.Path(), "parse_date_range")
	}
	if !rng.IsZero() {
		h.log.WithFields(log.Fields{
			"request_id":     requestID,
			"range":          rng.Key(),
			"calendar_month": rng.IsCalendarMonth(),
		}).Debug("Budget comparison limited to date range")
	}

	res, err := h.reportService.CompareBudget(c, userID, rng)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "compare_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

package budgetHandler

import (
	"ReceiptTracker/internal/api/budget"
	contextPkg "ReceiptTracker/pkg/context"
	"ReceiptTracker/pkg/handlerUtil"
	"ReceiptTracker/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// parseBudget reports every malformed or negative body as ErrInvalidBudget.
func (h *BudgetHandler) parseBudget(ctx *fiber.Ctx, requestID string) (budget.BudgetRequest, error) {
	var req budget.BudgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to parse budget body")
		return budget.BudgetRequest{}, budget.ErrInvalidBudget
	}

	if err := h.validator.Struct(req); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Budget validation failed")
		return budget.BudgetRequest{}, budget.ErrInvalidBudget
	}

	return req, nil
}

func (h *BudgetHandler) CreateBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create budget request")

	userID, ok := handlerUtil.ParseID(ctx.Params("user_id"))
	if !ok {
		return errHandler.Handle(ctx, requestID, budget.ErrInvalidID, ctx.Path(), "parse_user_id")
	}

	req, err := h.parseBudget(ctx, requestID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	id, err := h.budgetService.CreateBudget(c, userID, req.Limits())
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, budget.CreateBudgetResponse{BudgetID: id})
	}
}

func (h *BudgetHandler) GetBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get budget request")

	userID, ok := handlerUtil.ParseID(ctx.Params("user_id"))
	if !ok {
		return errHandler.Handle(ctx, requestID, budget.ErrInvalidID, ctx.Path(), "parse_user_id")
	}

	res, err := h.budgetService.GetBudget(c, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *BudgetHandler) UpdateBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update budget request")

	userID, budgetID, ok := parseIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, budget.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	req, err := h.parseBudget(ctx, requestID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	res, err := h.budgetService.UpdateBudget(c, userID, budgetID, req.Limits())
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *BudgetHandler) DeleteBudget(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete budget request")

	userID, budgetID, ok := parseIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, budget.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	if err := h.budgetService.DeleteBudget(c, userID, budgetID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_budget")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "OK")
	}
}

func parseIDs(ctx *fiber.Ctx) (int64, int64, bool) {
	userID, ok := handlerUtil.ParseID(ctx.Params("user_id"))
	if !ok {
		return 0, 0, false
	}
	budgetID, ok := handlerUtil.ParseID(ctx.Params("budget_id"))
	if !ok {
		return 0, 0, false
	}
	return userID, budgetID, true
}

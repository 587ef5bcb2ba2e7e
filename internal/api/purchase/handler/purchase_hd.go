package purchaseHandler

import (
	"ReceiptTracker/internal/api/purchase"
	"ReceiptTracker/internal/entity"
	contextPkg "ReceiptTracker/pkg/context"
	"ReceiptTracker/pkg/handlerUtil"
	"ReceiptTracker/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *PurchaseHandler) CreatePurchase(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create purchase request")

	userID, transactionID, ok := parseParentIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, purchase.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	var req purchase.PurchaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	id, err := h.purchaseService.CreatePurchase(c, userID, transactionID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_purchase")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, purchase.CreatePurchaseResponse{PurchaseID: id})
	}
}

func (h *PurchaseHandler) ListPurchases(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list purchases request")

	userID, transactionID, ok := parseParentIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, purchase.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	var purchaseID *int64
	if raw := ctx.Query("purchase_id"); raw != "" {
		id, ok := handlerUtil.ParseID(raw)
		if !ok {
			return errHandler.Handle(ctx, requestID, purchase.ErrInvalidID, ctx.Path(), "parse_purchase_id")
		}
		purchaseID = &id
	}

	sort := entity.PurchaseSort{
		By:    entity.PurchaseSortKey(ctx.Query("sort_by", string(entity.PurchaseSortDate))),
		Order: entity.SortOrder(ctx.Query("sort_order", string(entity.SortDesc))),
	}

	res, err := h.purchaseService.ListPurchases(c, userID, transactionID, purchaseID, sort)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_purchases")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *PurchaseHandler) GetPurchase(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get purchase request")

	userID, transactionID, purchaseID, ok := parseIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, purchase.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	res, err := h.purchaseService.GetPurchase(c, userID, transactionID, purchaseID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_purchase")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *PurchaseHandler) UpdatePurchase(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update purchase request")

	userID, transactionID, purchaseID, ok := parseIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, purchase.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	var req purchase.PurchaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.purchaseService.UpdatePurchase(c, userID, transactionID, purchaseID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_purchase")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *PurchaseHandler) DeletePurchase(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete purchase request")

	userID, transactionID, purchaseID, ok := parseIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, purchase.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	if err := h.purchaseService.DeletePurchase(c, userID, transactionID, purchaseID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_purchase")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "OK")
	}
}

func parseParentIDs(ctx *fiber.Ctx) (int64, int64, bool) {
	userID, ok := handlerUtil.ParseID(ctx.Params("user_id"))
	if !ok {
		return 0, 0, false
	}
	transactionID, ok := handlerUtil.ParseID(ctx.Params("transaction_id"))
	if !ok {
		return 0, 0, false
	}
	return userID, transactionID, true
}

func parseIDs(ctx *fiber.Ctx) (int64, int64, int64, bool) {
	userID, transactionID, ok := parseParentIDs(ctx)
	if !ok {
		return 0, 0, 0, false
	}
	purchaseID, ok := handlerUtil.ParseID(ctx.Params("purchase_id"))
	if !ok {
		return 0, 0, 0, false
	}
	return userID, transactionID, purchaseID, true
}

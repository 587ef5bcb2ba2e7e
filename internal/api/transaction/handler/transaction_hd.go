package transactionHandler

import (
	"ReceiptTracker/internal/api/transaction"
	"ReceiptTracker/internal/entity"
	contextPkg "ReceiptTracker/pkg/context"
	"ReceiptTracker/pkg/handlerUtil"
	"ReceiptTracker/pkg/log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (h *TransactionHandler) CreateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create transaction request")

	userID, ok := handlerUtil.ParseID(ctx.Params("user_id"))
	if !ok {
		return errHandler.Handle(ctx, requestID, transaction.ErrInvalidID, ctx.Path(), "parse_user_id")
	}

	var req transaction.TransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	id, err := h.transactionService.CreateTransaction(c, userID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, transaction.CreateTransactionResponse{TransactionID: id})
	}
}

func (h *TransactionHandler) ListTransactions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list transactions request")

	userID, ok := handlerUtil.ParseID(ctx.Params("user_id"))
	if !ok {
		return errHandler.Handle(ctx, requestID, transaction.ErrInvalidID, ctx.Path(), "parse_user_id")
	}

	var transactionID *int64
	if raw := ctx.Query("transaction_id"); raw != "" {
		id, ok := handlerUtil.ParseID(raw)
		if !ok {
			return errHandler.Handle(ctx, requestID, transaction.ErrInvalidID, ctx.Path(), "parse_transaction_id")
		}
		transactionID = &id
	}

	page, ok := parsePage(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, transaction.ErrInvalidPage, ctx.Path(), "parse_page")
	}

	res, err := h.transactionService.ListTransactions(c, userID, transactionID, page)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_transactions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *TransactionHandler) GetTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get transaction request")

	userID, transactionID, ok := parseIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, transaction.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	res, err := h.transactionService.GetTransaction(c, userID, transactionID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *TransactionHandler) UpdateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update transaction request")

	userID, transactionID, ok := parseIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, transaction.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	var req transaction.TransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.transactionService.UpdateTransaction(c, userID, transactionID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *TransactionHandler) DeleteTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := contextPkg.FromFiberCtxWithTimeout(ctx)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete transaction request")

	userID, transactionID, ok := parseIDs(ctx)
	if !ok {
		return errHandler.Handle(ctx, requestID, transaction.ErrInvalidID, ctx.Path(), "parse_ids")
	}

	if err := h.transactionService.DeleteTransaction(c, userID, transactionID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_transaction")
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
	transactionID, ok := handlerUtil.ParseID(ctx.Params("transaction_id"))
	if !ok {
		return 0, 0, false
	}
	return userID, transactionID, true
}

func parsePage(ctx *fiber.Ctx) (entity.Page, bool) {
	page := entity.Page{Number: entity.DefaultPage, Size: entity.DefaultPageSize}

	if raw := ctx.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return entity.Page{}, false
		}
		page.Number = n
	}
	if raw := ctx.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return entity.Page{}, false
		}
		page.Size = n
	}

	return page, page.IsValid()
}

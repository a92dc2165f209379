package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/storeledger/internal/domain"
)

type TransactionsHandler struct {
	transactionService TransactionServicer
}

func NewTransactionsHandler(transactionService TransactionServicer) *TransactionsHandler {
	return &TransactionsHandler{
		transactionService: transactionService,
	}
}

type TransactionParams struct {
	Type   domain.TransactionType `binding:"omitempty,oneof=deposit withdraw" json:"type"`
	Amount *decimal.Decimal       `binding:"required,money"                   json:"amount"`
}

// entry по умолчанию операция считается пополнением.
func (p TransactionParams) entry() domain.LedgerEntry {
	entry := domain.LedgerEntry{Type: p.Type, Amount: *p.Amount}
	if entry.Type == "" {
		entry.Type = domain.TransactionDeposit
	}
	return entry
}

type TransactionPatchParams struct {
	Type   *domain.TransactionType `binding:"omitempty,oneof=deposit withdraw" json:"type"`
	Amount *decimal.Decimal        `binding:"omitempty,money"                  json:"amount"`
}

// Index GET RouteGroup + TransactionsRoute.
func (h *TransactionsHandler) Index(c *gin.Context) {
	var uri BalanceURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	transactions, err := h.transactionService.List(ctx, caller, uri.ref())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectAll(caller, transactions, newTransactionResponse, newTransactionAdminResponse))
}

// Show GET RouteGroup + TransactionRoute.
func (h *TransactionsHandler) Show(c *gin.Context) {
	var uri TransactionURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	transaction, err := h.transactionService.Get(ctx, caller, uri.ref(), uri.TransactionID)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectTransaction(caller, transaction))
}

// Create POST RouteGroup + TransactionsRoute. Проводит операцию по балансу клиента.
func (h *TransactionsHandler) Create(c *gin.Context) {
	var uri BalanceURI
	var params TransactionParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	transaction, balance, err := h.transactionService.Create(ctx, caller, uri.ref(), params.entry())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, transactionBalance(caller, transaction, balance))
}

// Replace PUT RouteGroup + TransactionRoute.
func (h *TransactionsHandler) Replace(c *gin.Context) {
	var uri TransactionURI
	var params TransactionParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	transaction, balance, err := h.transactionService.Replace(
		ctx, caller, uri.ref(), uri.TransactionID, params.entry(),
	)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionBalance(caller, transaction, balance))
}

// Patch PATCH RouteGroup + TransactionRoute.
func (h *TransactionsHandler) Patch(c *gin.Context) {
	var uri TransactionURI
	var params TransactionPatchParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	transaction, balance, err := h.transactionService.Patch(
		ctx, caller, uri.ref(), uri.TransactionID,
		domain.TransactionPatch{Type: params.Type, Amount: params.Amount},
	)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionBalance(caller, transaction, balance))
}

// SoftDelete DELETE RouteGroup + TransactionSoftDeleteRoute. Итог баланса не пересчитывается.
func (h *TransactionsHandler) SoftDelete(c *gin.Context) {
	var uri TransactionURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.transactionService.SoftDelete(ctx, caller, uri.ref(), uri.TransactionID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, softDeleted(domain.EntityTransaction, uri.TransactionID))
}

// HardDelete DELETE RouteGroup + TransactionRoute.
func (h *TransactionsHandler) HardDelete(c *gin.Context) {
	var uri TransactionURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.transactionService.HardDelete(ctx, caller, uri.ref(), uri.TransactionID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

func transactionBalance(
	caller domain.Caller,
	transaction *domain.Transaction,
	balance *domain.Balance,
) TransactionBalanceResponse {
	return TransactionBalanceResponse{
		Transaction: projectTransaction(caller, transaction),
		Balance:     projectBalance(caller, balance),
	}
}

package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/storeledger/internal/domain"
)

type BalanceHandler struct {
	balanceService BalanceServicer
}

func NewBalanceHandler(balanceService BalanceServicer) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

type BalanceParams struct {
	Total *decimal.Decimal `binding:"required,money_nonneg" json:"total"`
}

// Show GET RouteGroup + BalanceRoute.
func (h *BalanceHandler) Show(c *gin.Context) {
	var uri CustomerURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	balance, err := h.balanceService.Get(ctx, caller, uri.CustomerID)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectBalance(caller, balance))
}

// Replace PUT RouteGroup + BalanceRoute. Администратор выставляет итог напрямую.
func (h *BalanceHandler) Replace(c *gin.Context) {
	var uri CustomerURI
	var params BalanceParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	balance, err := h.balanceService.Replace(ctx, caller, uri.CustomerID, *params.Total)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectBalance(caller, balance))
}

// SoftDelete DELETE RouteGroup + BalanceSoftDeleteRoute.
func (h *BalanceHandler) SoftDelete(c *gin.Context) {
	var uri CustomerURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.balanceService.SoftDelete(ctx, caller, uri.CustomerID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, DetailResponse{
		Detail: fmt.Sprintf("%s of customer with id %d softly deleted", domain.EntityBalance, uri.CustomerID),
	})
}

// HardDelete DELETE RouteGroup + BalanceRoute.
func (h *BalanceHandler) HardDelete(c *gin.Context) {
	var uri CustomerURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.balanceService.HardDelete(ctx, caller, uri.CustomerID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

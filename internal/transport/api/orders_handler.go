package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/service"
)

type OrdersHandler struct {
	orderService OrderServicer
}

func NewOrdersHandler(orderService OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
	}
}

type OrderParams struct {
	PaymentMethod domain.PaymentMethod `binding:"omitempty,oneof=cash balance" json:"payment_method"`
	Note          string               `binding:"required,max_bytes=1000"      json:"note"`
}

func (p OrderParams) args() service.OrderArgs {
	return service.OrderArgs{PaymentMethod: p.PaymentMethod, Note: p.Note}
}

type OrderPatchParams struct {
	PaymentMethod *domain.PaymentMethod `binding:"omitempty,oneof=cash balance" json:"payment_method"`
	Note          *string               `binding:"omitempty,max_bytes=1000"     json:"note"`
}

// Index GET RouteGroup + OrdersRoute.
func (h *OrdersHandler) Index(c *gin.Context) {
	var uri CustomerURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	orders, err := h.orderService.List(ctx, caller, uri.CustomerID)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectAll(caller, orders, newOrderResponse, newOrderAdminResponse))
}

// Show GET RouteGroup + OrderRoute.
func (h *OrdersHandler) Show(c *gin.Context) {
	var uri OrderURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	order, err := h.orderService.Get(ctx, caller, uri.ref())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectOrder(caller, order))
}

// Create POST RouteGroup + OrdersRoute. Заказ создает только сам клиент.
func (h *OrdersHandler) Create(c *gin.Context) {
	var uri CustomerURI
	var params OrderParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	order, err := h.orderService.Create(ctx, caller, uri.CustomerID, params.args())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, projectOrder(caller, order))
}

// Replace PUT RouteGroup + OrderRoute.
func (h *OrdersHandler) Replace(c *gin.Context) {
	var uri OrderURI
	var params OrderParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	order, err := h.orderService.Replace(ctx, caller, uri.ref(), params.args())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectOrder(caller, order))
}

// Patch PATCH RouteGroup + OrderRoute.
func (h *OrdersHandler) Patch(c *gin.Context) {
	var uri OrderURI
	var params OrderPatchParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	order, err := h.orderService.Patch(ctx, caller, uri.ref(), domain.OrderPatch{
		PaymentMethod: params.PaymentMethod,
		Note:          params.Note,
	})
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectOrder(caller, order))
}

// SoftDelete DELETE RouteGroup + OrderSoftDeleteRoute.
func (h *OrdersHandler) SoftDelete(c *gin.Context) {
	var uri OrderURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.orderService.SoftDelete(ctx, caller, uri.ref()); err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, softDeleted(domain.EntityOrder, uri.OrderID))
}

// HardDelete DELETE RouteGroup + OrderRoute.
func (h *OrdersHandler) HardDelete(c *gin.Context) {
	var uri OrderURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.orderService.HardDelete(ctx, caller, uri.ref()); err != nil {
		abortWithErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

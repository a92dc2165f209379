package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/service"
)

type OrderItemsHandler struct {
	orderItemService OrderItemServicer
}

func NewOrderItemsHandler(orderItemService OrderItemServicer) *OrderItemsHandler {
	return &OrderItemsHandler{
		orderItemService: orderItemService,
	}
}

type OrderItemParams struct {
	ItemID   int64 `binding:"required,gt=0" json:"item_id"`
	Quantity int64 `binding:"required,gt=0" json:"quantity"`
}

func (p OrderItemParams) args() service.OrderItemArgs {
	return service.OrderItemArgs{ItemID: p.ItemID, Quantity: p.Quantity}
}

type OrderItemPatchParams struct {
	ItemID   *int64 `binding:"omitempty,gt=0" json:"item_id"`
	Quantity *int64 `binding:"omitempty,gt=0" json:"quantity"`
}

// Index GET RouteGroup + OrderItemsRoute.
func (h *OrderItemsHandler) Index(c *gin.Context) {
	var uri OrderURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	orderItems, err := h.orderItemService.List(ctx, caller, uri.ref())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectAll(caller, orderItems, newOrderItemResponse, newOrderItemAdminResponse))
}

// Show GET RouteGroup + OrderItemRoute.
func (h *OrderItemsHandler) Show(c *gin.Context) {
	var uri OrderItemURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	orderItem, err := h.orderItemService.Get(ctx, caller, uri.ref(), uri.OrderItemID)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectOrderItem(caller, orderItem))
}

// Create POST RouteGroup + OrderItemsRoute. Резервирует товар на складе и увеличивает сумму заказа.
func (h *OrderItemsHandler) Create(c *gin.Context) {
	var uri OrderURI
	var params OrderItemParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	orderItem, err := h.orderItemService.Create(ctx, caller, uri.ref(), params.args())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, projectOrderItem(caller, orderItem))
}

// Replace PUT RouteGroup + OrderItemRoute.
func (h *OrderItemsHandler) Replace(c *gin.Context) {
	var uri OrderItemURI
	var params OrderItemParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	orderItem, err := h.orderItemService.Replace(ctx, caller, uri.ref(), uri.OrderItemID, params.args())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectOrderItem(caller, orderItem))
}

// Patch PATCH RouteGroup + OrderItemRoute.
func (h *OrderItemsHandler) Patch(c *gin.Context) {
	var uri OrderItemURI
	var params OrderItemPatchParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	orderItem, err := h.orderItemService.Patch(ctx, caller, uri.ref(), uri.OrderItemID, domain.OrderItemPatch{
		ItemID:   params.ItemID,
		Quantity: params.Quantity,
	})
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectOrderItem(caller, orderItem))
}

// SoftDelete DELETE RouteGroup + OrderItemSoftDeleteRoute. Склад не восстанавливается.
func (h *OrderItemsHandler) SoftDelete(c *gin.Context) {
	var uri OrderItemURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.orderItemService.SoftDelete(ctx, caller, uri.ref(), uri.OrderItemID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, softDeleted(domain.EntityOrderItem, uri.OrderItemID))
}

// HardDelete DELETE RouteGroup + OrderItemRoute.
func (h *OrderItemsHandler) HardDelete(c *gin.Context) {
	var uri OrderItemURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.orderItemService.HardDelete(ctx, caller, uri.ref(), uri.OrderItemID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

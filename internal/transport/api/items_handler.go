package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/service"
)

type ItemsHandler struct {
	itemService ItemServicer
}

func NewItemsHandler(itemService ItemServicer) *ItemsHandler {
	return &ItemsHandler{
		itemService: itemService,
	}
}

type ItemParams struct {
	Name         string           `binding:"required,min=1,max=255" json:"name"`
	Quantity     *int64           `binding:"required,gte=0"         json:"quantity"`
	OrigPrice    *decimal.Decimal `binding:"required,money"         json:"orig_price"`
	SellingPrice *decimal.Decimal `binding:"required,money"         json:"selling_price"`
}

func (p ItemParams) args() service.ItemArgs {
	return service.ItemArgs{
		Name:         p.Name,
		Quantity:     *p.Quantity,
		OrigPrice:    *p.OrigPrice,
		SellingPrice: *p.SellingPrice,
	}
}

type ItemPatchParams struct {
	Name         *string          `binding:"omitempty,min=1,max=255" json:"name"`
	Quantity     *int64           `binding:"omitempty,gte=0"         json:"quantity"`
	OrigPrice    *decimal.Decimal `binding:"omitempty,money"         json:"orig_price"`
	SellingPrice *decimal.Decimal `binding:"omitempty,money"         json:"selling_price"`
}

// Index GET RouteGroup + ItemsRoute. Каталог доступен любой авторизованной роли.
func (h *ItemsHandler) Index(c *gin.Context) {
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	items, err := h.itemService.List(ctx, caller)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectAll(caller, items, newItemResponse, newItemAdminResponse))
}

// Show GET RouteGroup + ItemRoute.
func (h *ItemsHandler) Show(c *gin.Context) {
	var uri ItemURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	item, err := h.itemService.Get(ctx, caller, uri.ItemID)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectItem(caller, item))
}

// Create POST RouteGroup + ItemsRoute.
func (h *ItemsHandler) Create(c *gin.Context) {
	var params ItemParams
	if !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	item, err := h.itemService.Create(ctx, caller, params.args())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, projectItem(caller, item))
}

// Replace PUT RouteGroup + ItemRoute.
func (h *ItemsHandler) Replace(c *gin.Context) {
	var uri ItemURI
	var params ItemParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	item, err := h.itemService.Replace(ctx, caller, uri.ItemID, params.args())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectItem(caller, item))
}

// Patch PATCH RouteGroup + ItemRoute.
func (h *ItemsHandler) Patch(c *gin.Context) {
	var uri ItemURI
	var params ItemPatchParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	item, err := h.itemService.Patch(ctx, caller, uri.ItemID, domain.ItemPatch{
		Name:         params.Name,
		Quantity:     params.Quantity,
		OrigPrice:    params.OrigPrice,
		SellingPrice: params.SellingPrice,
	})
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectItem(caller, item))
}

// SoftDelete DELETE RouteGroup + ItemSoftDeleteRoute.
func (h *ItemsHandler) SoftDelete(c *gin.Context) {
	var uri ItemURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.itemService.SoftDelete(ctx, caller, uri.ItemID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, softDeleted(domain.EntityItem, uri.ItemID))
}

// HardDelete DELETE RouteGroup + ItemRoute.
func (h *ItemsHandler) HardDelete(c *gin.Context) {
	var uri ItemURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.itemService.HardDelete(ctx, caller, uri.ItemID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

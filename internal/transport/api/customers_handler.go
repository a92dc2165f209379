package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/storeledger/internal/domain"
)

type CustomersHandler struct {
	customerService CustomerServicer
}

func NewCustomersHandler(customerService CustomerServicer) *CustomersHandler {
	return &CustomersHandler{
		customerService: customerService,
	}
}

type CustomerPatchParams struct {
	Email     *string `binding:"omitempty,email,max_bytes=255" json:"email"`
	Password  *string `binding:"omitempty,min=6,max_bytes=72"  json:"password"`
	FirstName *string `binding:"omitempty,min=1,max=100"       json:"first_name"`
	LastName  *string `binding:"omitempty,min=1,max=100"       json:"last_name"`
}

// Index GET RouteGroup + CustomersRoute.
func (h *CustomersHandler) Index(c *gin.Context) {
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	customers, err := h.customerService.List(ctx, caller)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectAll(caller, customers, newCustomerResponse, newCustomerAdminResponse))
}

// Show GET RouteGroup + CustomerRoute.
func (h *CustomersHandler) Show(c *gin.Context) {
	var uri CustomerURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	customer, err := h.customerService.Get(ctx, caller, uri.CustomerID)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectCustomer(caller, customer))
}

// Replace PUT RouteGroup + CustomerRoute.
func (h *CustomersHandler) Replace(c *gin.Context) {
	var uri CustomerURI
	var params CustomerParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	customer, err := h.customerService.Replace(ctx, caller, uri.CustomerID, params.args())
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectCustomer(caller, customer))
}

// Patch PATCH RouteGroup + CustomerRoute. Пустое тело дает 400.
func (h *CustomersHandler) Patch(c *gin.Context) {
	var uri CustomerURI
	var params CustomerPatchParams
	if !bindURI(c, &uri) || !bindJSON(c, &params) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	customer, err := h.customerService.Patch(ctx, caller, uri.CustomerID, domain.CustomerPatch{
		Email:     params.Email,
		Password:  params.Password,
		FirstName: params.FirstName,
		LastName:  params.LastName,
	})
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, projectCustomer(caller, customer))
}

// SoftDelete DELETE RouteGroup + CustomerSoftDeleteRoute. Вместе с клиентом мягко удаляется его баланс.
func (h *CustomersHandler) SoftDelete(c *gin.Context) {
	var uri CustomerURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.customerService.SoftDelete(ctx, caller, uri.CustomerID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, softDeleted(domain.EntityCustomer, uri.CustomerID))
}

// HardDelete DELETE RouteGroup + CustomerRoute.
func (h *CustomersHandler) HardDelete(c *gin.Context) {
	var uri CustomerURI
	if !bindURI(c, &uri) {
		return
	}
	ctx, cancel, caller := serviceCtx(c)
	defer cancel()

	if err := h.customerService.HardDelete(ctx, caller, uri.CustomerID); err != nil {
		abortWithErr(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

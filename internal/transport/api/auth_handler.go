package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/service"
)

type AuthHandler struct {
	customerService CustomerServicer
}

func NewAuthHandler(customerService CustomerServicer) *AuthHandler {
	return &AuthHandler{
		customerService: customerService,
	}
}

type CustomerParams struct {
	Email     string `binding:"required,email,max_bytes=255" json:"email"`
	Password  string `binding:"required,min=6,max_bytes=72"  json:"password"`
	FirstName string `binding:"required,min=1,max=100"       json:"first_name"`
	LastName  string `binding:"required,min=1,max=100"       json:"last_name"`
}

func (p CustomerParams) args() service.CustomerArgs {
	return service.CustomerArgs{
		Email:     p.Email,
		Password:  p.Password,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}

// Register POST RouteGroup + CustomersRoute. Публичная регистрация клиента вместе с нулевым балансом.
func (h *AuthHandler) Register(c *gin.Context) {
	var params CustomerParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, balance, err := h.customerService.Register(ctx, params.args())
	if err != nil {
		abortWithErr(c, err)
		return
	}

	// регистрирует анонимный клиент, поэтому ответ всегда в урезанном виде.
	var anonymous domain.Caller
	c.JSON(http.StatusCreated, CustomerBalanceResponse{
		Customer: projectCustomer(anonymous, customer),
		Balance:  projectBalance(anonymous, balance),
	})
}

// LoginParams принимает как json {email, password}, так и форму oauth2 password flow (username, password).
type LoginParams struct {
	Email    string `binding:"required,max_bytes=255" form:"username" json:"email"`
	Password string `binding:"required,max_bytes=72"  form:"password" json:"password"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	UserID      int64       `json:"user_id"`
	Role        domain.Role `json:"role"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if err := c.ShouldBind(&params); err != nil {
		abortBindErr(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, token, err := h.customerService.Login(ctx, service.LoginArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		abortWithErr(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      customer.ID,
		Role:        customer.Role,
	})
}

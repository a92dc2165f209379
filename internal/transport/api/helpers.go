package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/transport/api/middlewares"
)

// CustomerURI параметры пути, общие для всех вложенных в клиента ресурсов.
type CustomerURI struct {
	CustomerID int64 `binding:"required,gt=0" uri:"customer_id"`
}

type BalanceURI struct {
	CustomerURI
	BalanceID int64 `binding:"required,gt=0" uri:"balance_id"`
}

func (u BalanceURI) ref() domain.BalanceRef {
	return domain.BalanceRef{CustomerID: u.CustomerID, BalanceID: u.BalanceID}
}

type TransactionURI struct {
	BalanceURI
	TransactionID int64 `binding:"required,gt=0" uri:"transaction_id"`
}

type ItemURI struct {
	ItemID int64 `binding:"required,gt=0" uri:"item_id"`
}

type OrderURI struct {
	CustomerURI
	OrderID int64 `binding:"required,gt=0" uri:"order_id"`
}

func (u OrderURI) ref() domain.OrderRef {
	return domain.OrderRef{CustomerID: u.CustomerID, OrderID: u.OrderID}
}

type OrderItemURI struct {
	OrderURI
	OrderItemID int64 `binding:"required,gt=0" uri:"order_item_id"`
}

// DetailResponse ответ на мягкое удаление.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func softDeleted(entity domain.Entity, id int64) DetailResponse {
	return DetailResponse{Detail: fmt.Sprintf("%s with id %d softly deleted", entity, id)}
}

// fieldErrorResponse развернутая ошибка валидации одного поля.
type fieldErrorResponse struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// abortBindErr ошибки валидатора отдаются со статусом 422 и списком полей, остальные ошибки разбора - 400.
func abortBindErr(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		fields := make([]fieldErrorResponse, 0, len(valErrs))
		for _, fe := range valErrs {
			fields = append(fields, fieldErrorResponse{Field: fe.Field(), Tag: fe.Tag(), Message: fe.Error()})
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": fields})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}

// bindURI разбирает параметры пути. При ошибке запрос уже прерван.
func bindURI(c *gin.Context, obj any) bool {
	if err := c.ShouldBindUri(obj); err != nil {
		abortBindErr(c, err)
		return false
	}
	return true
}

// bindJSON разбирает тело запроса. При ошибке запрос уже прерван.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		abortBindErr(c, err)
		return false
	}
	return true
}

// serviceCtx ограничивает время вызова сервиса и возвращает автора запроса.
func serviceCtx(c *gin.Context) (context.Context, context.CancelFunc, domain.Caller) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	return ctx, cancel, middlewares.CallerFromContext(c)
}

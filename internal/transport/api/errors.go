package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/storeledger/internal/domain"
)

// publicErrors сентинелы, текст которых можно отдать клиенту, и их статусы.
var publicErrors = []struct {
	err    error
	status int
}{
	{domain.ErrEmptyPatch, http.StatusBadRequest},
	{domain.ErrInsufficientBalance, http.StatusUnprocessableEntity},
	{domain.ErrOutOfStock, http.StatusUnprocessableEntity},
	{domain.ErrQuantityExceedsStock, http.StatusUnprocessableEntity},
	{domain.ErrEmailInUse, http.StatusConflict},
	{domain.ErrDuplicateKey, http.StatusConflict},
	{domain.ErrInvalidCredentials, http.StatusForbidden},
	{domain.ErrBadRequest, http.StatusBadRequest},
}

// classify возвращает http статус и ошибку, текст которой уйдет клиенту. Для неизвестных ошибок
// публичной ошибки нет.
func classify(err error) (int, error) {
	var forbiddenErr *domain.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		return http.StatusForbidden, forbiddenErr
	}
	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, notFoundErr
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr
	}
	for _, pe := range publicErrors {
		if errors.Is(err, pe.err) {
			return pe.status, pe.err
		}
	}
	return http.StatusInternalServerError, nil
}

// abortWithErr прерывает запрос с ошибкой сервиса. Публичная часть рендерится middlewares.Errors,
// исходная ошибка со всей цепочкой оборачиваний уходит в лог.
func abortWithErr(c *gin.Context, err error) {
	status, public := classify(err)
	if public == nil {
		_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePrivate)
		return
	}
	_ = c.AbortWithError(status, public).SetType(gin.ErrorTypePublic)
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
}

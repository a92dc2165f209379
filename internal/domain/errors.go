package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrForbidden            = errors.New("forbidden")
	ErrBadRequest           = errors.New("bad request")
	ErrEmptyPatch           = fmt.Errorf("%w: no data was found for the update", ErrBadRequest)
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrOutOfStock           = errors.New("item out of stock")
	ErrQuantityExceedsStock = errors.New("ordered quantity exceeds stock")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailInUse           = errors.New("email already in use")
)

// NotFoundError запись отсутствует либо мягко удалена.
type NotFoundError struct {
	Entity Entity
	ID     int64
}

func NewNotFoundError(entity Entity, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s was not found", e.Entity)
	}
	return fmt.Sprintf("%s with id %d was not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// ForbiddenError не прошла проверка роли (Allowed заполнен) или владельца (Allowed пуст).
type ForbiddenError struct {
	Allowed []Role
}

func (e *ForbiddenError) Error() string {
	if len(e.Allowed) == 0 {
		return "not authorized to perform this action"
	}
	roles := make([]string, len(e.Allowed))
	for i, r := range e.Allowed {
		roles[i] = string(r)
	}
	return fmt.Sprintf("only %s authorized to perform this action", strings.Join(roles, ", "))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ValidationError некорректное значение поля.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}

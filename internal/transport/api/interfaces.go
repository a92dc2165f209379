package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/service"
)

// CustomerServicer интерфейс исключительно для моков.
type CustomerServicer interface {
	Register(ctx context.Context, args service.CustomerArgs) (*domain.Customer, *domain.Balance, error)
	Login(ctx context.Context, args service.LoginArgs) (*domain.Customer, string, error)
	List(ctx context.Context, caller domain.Caller) ([]domain.Customer, error)
	Get(ctx context.Context, caller domain.Caller, id int64) (*domain.Customer, error)
	Replace(ctx context.Context, caller domain.Caller, id int64, args service.CustomerArgs) (*domain.Customer, error)
	Patch(ctx context.Context, caller domain.Caller, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	SoftDelete(ctx context.Context, caller domain.Caller, id int64) error
	HardDelete(ctx context.Context, caller domain.Caller, id int64) error
}

type BalanceServicer interface {
	Get(ctx context.Context, caller domain.Caller, customerID int64) (*domain.Balance, error)
	Replace(ctx context.Context, caller domain.Caller, customerID int64, total decimal.Decimal) (*domain.Balance, error)
	SoftDelete(ctx context.Context, caller domain.Caller, customerID int64) error
	HardDelete(ctx context.Context, caller domain.Caller, customerID int64) error
}

type TransactionServicer interface {
	List(ctx context.Context, caller domain.Caller, ref domain.BalanceRef) ([]domain.Transaction, error)
	Get(ctx context.Context, caller domain.Caller, ref domain.BalanceRef, id int64) (*domain.Transaction, error)
	Create(
		ctx context.Context,
		caller domain.Caller,
		ref domain.BalanceRef,
		entry domain.LedgerEntry,
	) (*domain.Transaction, *domain.Balance, error)
	Replace(
		ctx context.Context,
		caller domain.Caller,
		ref domain.BalanceRef,
		id int64,
		entry domain.LedgerEntry,
	) (*domain.Transaction, *domain.Balance, error)
	Patch(
		ctx context.Context,
		caller domain.Caller,
		ref domain.BalanceRef,
		id int64,
		patch domain.TransactionPatch,
	) (*domain.Transaction, *domain.Balance, error)
	SoftDelete(ctx context.Context, caller domain.Caller, ref domain.BalanceRef, id int64) error
	HardDelete(ctx context.Context, caller domain.Caller, ref domain.BalanceRef, id int64) error
}

type ItemServicer interface {
	List(ctx context.Context, caller domain.Caller) ([]domain.Item, error)
	Get(ctx context.Context, caller domain.Caller, id int64) (*domain.Item, error)
	Create(ctx context.Context, caller domain.Caller, args service.ItemArgs) (*domain.Item, error)
	Replace(ctx context.Context, caller domain.Caller, id int64, args service.ItemArgs) (*domain.Item, error)
	Patch(ctx context.Context, caller domain.Caller, id int64, patch domain.ItemPatch) (*domain.Item, error)
	SoftDelete(ctx context.Context, caller domain.Caller, id int64) error
	HardDelete(ctx context.Context, caller domain.Caller, id int64) error
}

type OrderServicer interface {
	List(ctx context.Context, caller domain.Caller, customerID int64) ([]domain.Order, error)
	Get(ctx context.Context, caller domain.Caller, ref domain.OrderRef) (*domain.Order, error)
	Create(ctx context.Context, caller domain.Caller, customerID int64, args service.OrderArgs) (*domain.Order, error)
	Replace(ctx context.Context, caller domain.Caller, ref domain.OrderRef, args service.OrderArgs) (*domain.Order, error)
	Patch(ctx context.Context, caller domain.Caller, ref domain.OrderRef, patch domain.OrderPatch) (*domain.Order, error)
	SoftDelete(ctx context.Context, caller domain.Caller, ref domain.OrderRef) error
	HardDelete(ctx context.Context, caller domain.Caller, ref domain.OrderRef) error
}

type OrderItemServicer interface {
	List(ctx context.Context, caller domain.Caller, ref domain.OrderRef) ([]domain.OrderItem, error)
	Get(ctx context.Context, caller domain.Caller, ref domain.OrderRef, id int64) (*domain.OrderItem, error)
	Create(
		ctx context.Context,
		caller domain.Caller,
		ref domain.OrderRef,
		args service.OrderItemArgs,
	) (*domain.OrderItem, error)
	Replace(
		ctx context.Context,
		caller domain.Caller,
		ref domain.OrderRef,
		id int64,
		args service.OrderItemArgs,
	) (*domain.OrderItem, error)
	Patch(
		ctx context.Context,
		caller domain.Caller,
		ref domain.OrderRef,
		id int64,
		patch domain.OrderItemPatch,
	) (*domain.OrderItem, error)
	SoftDelete(ctx context.Context, caller domain.Caller, ref domain.OrderRef, id int64) error
	HardDelete(ctx context.Context, caller domain.Caller, ref domain.OrderRef, id int64) error
}

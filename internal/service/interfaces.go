package service

import (
	"context"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// Cacher хранилище для кэширования результатов чтения.
type Cacher interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, patch domain.CustomerPatch, actorID int64) (*domain.Customer, error)
	SoftDelete(ctx context.Context, id, actorID int64) error
	HardDelete(ctx context.Context, id int64) error
}

type BalanceRepository interface {
	Create(ctx context.Context, customerID int64) (*domain.Balance, error)
	FindByCustomerID(ctx context.Context, customerID int64) (*domain.Balance, error)
	LockByCustomerID(ctx context.Context, customerID int64) (*domain.Balance, error)
	FindByRef(ctx context.Context, ref domain.BalanceRef) (*domain.Balance, error)
	LockByRef(ctx context.Context, ref domain.BalanceRef) (*domain.Balance, error)
	SetTotal(ctx context.Context, args repoargs.SetBalanceTotal) (*domain.Balance, error)
	SoftDeleteByCustomerID(ctx context.Context, customerID, actorID int64) error
	HardDeleteByCustomerID(ctx context.Context, customerID int64) error
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, ref domain.BalanceRef, id int64) (*domain.Transaction, error)
	List(ctx context.Context, ref domain.BalanceRef) ([]domain.Transaction, error)
	Update(
		ctx context.Context,
		ref domain.BalanceRef,
		id int64,
		entry domain.LedgerEntry,
		actorID int64,
	) (*domain.Transaction, error)
	SoftDelete(ctx context.Context, ref domain.BalanceRef, id, actorID int64) error
	HardDelete(ctx context.Context, ref domain.BalanceRef, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error)
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	LockByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, id int64, patch domain.ItemPatch, actorID int64) (*domain.Item, error)
	SetQuantity(ctx context.Context, id, quantity, actorID int64) error
	SoftDelete(ctx context.Context, id, actorID int64) error
	HardDelete(ctx context.Context, id int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, ref domain.OrderRef) (*domain.Order, error)
	LockByID(ctx context.Context, ref domain.OrderRef) (*domain.Order, error)
	List(ctx context.Context, customerID int64) ([]domain.Order, error)
	Update(ctx context.Context, ref domain.OrderRef, patch domain.OrderPatch, actorID int64) (*domain.Order, error)
	SetTotal(ctx context.Context, orderID int64, total decimal.Decimal, actorID int64) error
	SetStoreNotes(ctx context.Context, orderID int64, notes string) error
	SoftDelete(ctx context.Context, ref domain.OrderRef, actorID int64) error
	HardDelete(ctx context.Context, ref domain.OrderRef) error
}

type OrderItemRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrderItem) (*domain.OrderItem, error)
	FindByID(ctx context.Context, orderID, id int64) (*domain.OrderItem, error)
	List(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	Update(
		ctx context.Context,
		orderID, id int64,
		patch domain.OrderItemPatch,
		actorID int64,
	) (*domain.OrderItem, error)
	SoftDelete(ctx context.Context, orderID, id, actorID int64) error
	HardDelete(ctx context.Context, orderID, id int64) error
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Audit служебные поля, общие для всех таблиц.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	UpdatedBy *int64
	DeletedBy *int64
}

type Customer struct {
	Audit
	ID        int64
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      Role
}

type Balance struct {
	Audit
	ID         int64
	CustomerID int64
	Total      decimal.Decimal
}

type Transaction struct {
	Audit
	ID         int64
	CustomerID int64
	BalanceID  int64
	Type       TransactionType
	Amount     decimal.Decimal
}

// Entry возвращает проводку, которую транзакция внесла в баланс.
func (t Transaction) Entry() LedgerEntry {
	return LedgerEntry{Type: t.Type, Amount: t.Amount}
}

type Item struct {
	Audit
	ID           int64
	Name         string
	Quantity     int64
	OrigPrice    decimal.Decimal
	SellingPrice decimal.Decimal
}

func (i Item) TotalOrigPrice() decimal.Decimal {
	return i.OrigPrice.Mul(decimal.NewFromInt(i.Quantity))
}

func (i Item) TotalSellingPrice() decimal.Decimal {
	return i.SellingPrice.Mul(decimal.NewFromInt(i.Quantity))
}

func (i Item) Profit() decimal.Decimal {
	return i.TotalSellingPrice().Sub(i.TotalOrigPrice())
}

type Order struct {
	Audit
	ID            int64
	CustomerID    int64
	PaymentMethod PaymentMethod
	Note          string
	Total         decimal.Decimal
	StoreNotes    *string
}

type OrderItem struct {
	Audit
	ID        int64
	OrderID   int64
	ItemID    int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

func (o OrderItem) Subtotal() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(o.Quantity))
}

// BalanceRef адрес баланса в иерархии клиента.
type BalanceRef struct {
	CustomerID int64
	BalanceID  int64
}

// OrderRef адрес заказа в иерархии клиента.
type OrderRef struct {
	CustomerID int64
	OrderID    int64
}

package repoargs

import (
	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateItem struct {
	Name         string
	Quantity     int64
	OrigPrice    decimal.Decimal
	SellingPrice decimal.Decimal
}

type CreateOrder struct {
	CustomerID    int64
	PaymentMethod domain.PaymentMethod
	Note          string
}

type CreateOrderItem struct {
	OrderID   int64
	ItemID    int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/storeledger/internal/domain"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyScale)
}

// AuditResponse служебные поля записи, видимые только администратору.
type AuditResponse struct {
	UpdatedAt *time.Time `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
	UpdatedBy *int64     `json:"updated_by"`
	DeletedBy *int64     `json:"deleted_by"`
}

func newAuditResponse(a domain.Audit) AuditResponse {
	return AuditResponse{
		UpdatedAt: a.UpdatedAt,
		DeletedAt: a.DeletedAt,
		UpdatedBy: a.UpdatedBy,
		DeletedBy: a.DeletedBy,
	}
}

type CustomerResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomerAdminResponse struct {
	CustomerResponse
	Role domain.Role `json:"role"`
	AuditResponse
}

func newCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CreatedAt: c.CreatedAt,
	}
}

func newCustomerAdminResponse(c *domain.Customer) CustomerAdminResponse {
	return CustomerAdminResponse{
		CustomerResponse: newCustomerResponse(c),
		Role:             c.Role,
		AuditResponse:    newAuditResponse(c.Audit),
	}
}

type CustomerProjection = Projection[CustomerResponse, CustomerAdminResponse]

func projectCustomer(caller domain.Caller, c *domain.Customer) CustomerProjection {
	return project(caller, c, newCustomerResponse, newCustomerAdminResponse)
}

type BalanceResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Total      string    `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}

type BalanceAdminResponse struct {
	BalanceResponse
	AuditResponse
}

func newBalanceResponse(b *domain.Balance) BalanceResponse {
	return BalanceResponse{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Total:      money(b.Total),
		CreatedAt:  b.CreatedAt,
	}
}

func newBalanceAdminResponse(b *domain.Balance) BalanceAdminResponse {
	return BalanceAdminResponse{BalanceResponse: newBalanceResponse(b), AuditResponse: newAuditResponse(b.Audit)}
}

type BalanceProjection = Projection[BalanceResponse, BalanceAdminResponse]

func projectBalance(caller domain.Caller, b *domain.Balance) BalanceProjection {
	return project(caller, b, newBalanceResponse, newBalanceAdminResponse)
}

// CustomerBalanceResponse ответ на регистрацию.
type CustomerBalanceResponse struct {
	Customer CustomerProjection `json:"customer"`
	Balance  BalanceProjection  `json:"balance"`
}

type TransactionResponse struct {
	ID         int64                  `json:"id"`
	CustomerID int64                  `json:"customer_id"`
	BalanceID  int64                  `json:"balance_id"`
	Type       domain.TransactionType `json:"type"`
	Amount     string                 `json:"amount"`
	CreatedAt  time.Time              `json:"created_at"`
}

type TransactionAdminResponse struct {
	TransactionResponse
	AuditResponse
}

func newTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		CustomerID: t.CustomerID,
		BalanceID:  t.BalanceID,
		Type:       t.Type,
		Amount:     money(t.Amount),
		CreatedAt:  t.CreatedAt,
	}
}

func newTransactionAdminResponse(t *domain.Transaction) TransactionAdminResponse {
	return TransactionAdminResponse{
		TransactionResponse: newTransactionResponse(t),
		AuditResponse:       newAuditResponse(t.Audit),
	}
}

type TransactionProjection = Projection[TransactionResponse, TransactionAdminResponse]

func projectTransaction(caller domain.Caller, t *domain.Transaction) TransactionProjection {
	return project(caller, t, newTransactionResponse, newTransactionAdminResponse)
}

// TransactionBalanceResponse ответ на изменение журнала: сама операция и итоговый баланс.
type TransactionBalanceResponse struct {
	Transaction TransactionProjection `json:"transaction"`
	Balance     BalanceProjection     `json:"balance"`
}

type ItemResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Quantity     int64  `json:"quantity"`
	SellingPrice string `json:"selling_price"`
}

type ItemAdminResponse struct {
	ItemResponse
	OrigPrice         string    `json:"orig_price"`
	TotalOrigPrice    string    `json:"total_orig_price"`
	TotalSellingPrice string    `json:"total_selling_price"`
	Profit            string    `json:"profit"`
	CreatedAt         time.Time `json:"created_at"`
	AuditResponse
}

func newItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Quantity:     i.Quantity,
		SellingPrice: money(i.SellingPrice),
	}
}

func newItemAdminResponse(i *domain.Item) ItemAdminResponse {
	return ItemAdminResponse{
		ItemResponse:      newItemResponse(i),
		OrigPrice:         money(i.OrigPrice),
		TotalOrigPrice:    money(i.TotalOrigPrice()),
		TotalSellingPrice: money(i.TotalSellingPrice()),
		Profit:            money(i.Profit()),
		CreatedAt:         i.CreatedAt,
		AuditResponse:     newAuditResponse(i.Audit),
	}
}

type ItemProjection = Projection[ItemResponse, ItemAdminResponse]

func projectItem(caller domain.Caller, i *domain.Item) ItemProjection {
	return project(caller, i, newItemResponse, newItemAdminResponse)
}

type OrderResponse struct {
	ID            int64                `json:"id"`
	CustomerID    int64                `json:"customer_id"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Note          string               `json:"note"`
	Total         string               `json:"total"`
	StoreNotes    *string              `json:"store_notes"`
	CreatedAt     time.Time            `json:"created_at"`
}

type OrderAdminResponse struct {
	OrderResponse
	AuditResponse
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		PaymentMethod: o.PaymentMethod,
		Note:          o.Note,
		Total:         money(o.Total),
		StoreNotes:    o.StoreNotes,
		CreatedAt:     o.CreatedAt,
	}
}

func newOrderAdminResponse(o *domain.Order) OrderAdminResponse {
	return OrderAdminResponse{OrderResponse: newOrderResponse(o), AuditResponse: newAuditResponse(o.Audit)}
}

type OrderProjection = Projection[OrderResponse, OrderAdminResponse]

func projectOrder(caller domain.Caller, o *domain.Order) OrderProjection {
	return project(caller, o, newOrderResponse, newOrderAdminResponse)
}

type OrderItemResponse struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"order_id"`
	ItemID    int64  `json:"item_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type OrderItemAdminResponse struct {
	OrderItemResponse
	CreatedAt time.Time `json:"created_at"`
	AuditResponse
}

func newOrderItemResponse(oi *domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        oi.ID,
		OrderID:   oi.OrderID,
		ItemID:    oi.ItemID,
		Quantity:  oi.Quantity,
		UnitPrice: money(oi.UnitPrice),
		Subtotal:  money(oi.Subtotal()),
	}
}

func newOrderItemAdminResponse(oi *domain.OrderItem) OrderItemAdminResponse {
	return OrderItemAdminResponse{
		OrderItemResponse: newOrderItemResponse(oi),
		CreatedAt:         oi.CreatedAt,
		AuditResponse:     newAuditResponse(oi.Audit),
	}
}

type OrderItemProjection = Projection[OrderItemResponse, OrderItemAdminResponse]

func projectOrderItem(caller domain.Caller, oi *domain.OrderItem) OrderItemProjection {
	return project(caller, oi, newOrderItemResponse, newOrderItemAdminResponse)
}

package pgrepo

import (
	"context"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/shopspring/decimal"
)

const orderColumns = "id, customer_id, payment_method, note, total, store_notes, " + auditColumns

type orderRow struct {
	auditRow
	ID            int64           `db:"id"`
	CustomerID    int64           `db:"customer_id"`
	PaymentMethod string          `db:"payment_method"`
	Note          string          `db:"note"`
	Total         decimal.Decimal `db:"total"`
	StoreNotes    *string         `db:"store_notes"`
}

func (r orderRow) toDomain() *domain.Order {
	return &domain.Order{
		Audit:         r.auditRow.toDomain(),
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Note:          r.Note,
		Total:         r.Total,
		StoreNotes:    r.StoreNotes,
	}
}

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Create создает пустой заказ с нулевой суммой.
func (r *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row, err := queryOne[orderRow](ctx, r.conn,
		`INSERT INTO orders (customer_id, payment_method, note, total)
		VALUES ($1, $2, $3, 0) RETURNING `+orderColumns,
		args.CustomerID, string(args.PaymentMethod), args.Note,
	)
	if err != nil {
		return nil, convertErr(err, "create order for customer %d", args.CustomerID)
	}
	return row.toDomain(), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, ref domain.OrderRef) (*domain.Order, error) {
	return r.findByID(ctx, ref, "")
}

// LockByID то же, что FindByID, но блокирует строку до конца транзакции.
func (r *OrderRepository) LockByID(ctx context.Context, ref domain.OrderRef) (*domain.Order, error) {
	return r.findByID(ctx, ref, " FOR UPDATE")
}

func (r *OrderRepository) findByID(ctx context.Context, ref domain.OrderRef, lock string) (*domain.Order, error) {
	row, err := queryOne[orderRow](ctx, r.conn,
		`SELECT `+orderColumns+` FROM orders
		WHERE id = $1 AND customer_id = $2 AND deleted_at IS NULL`+lock,
		ref.OrderID, ref.CustomerID,
	)
	if err != nil {
		return nil, convertErr(err, "find order %d", ref.OrderID)
	}
	return row.toDomain(), nil
}

func (r *OrderRepository) List(ctx context.Context, customerID int64) ([]domain.Order, error) {
	rows, err := queryAll[orderRow](ctx, r.conn,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 AND deleted_at IS NULL ORDER BY id`,
		customerID,
	)
	if err != nil {
		return nil, convertErr(err, "list orders of customer %d", customerID)
	}
	res := make([]domain.Order, len(rows))
	for i, row := range rows {
		res[i] = *row.toDomain()
	}
	return res, nil
}

func (r *OrderRepository) Update(
	ctx context.Context,
	ref domain.OrderRef,
	patch domain.OrderPatch,
	actorID int64,
) (*domain.Order, error) {
	q := newUpdate("orders")
	if patch.PaymentMethod != nil {
		q.Set("payment_method", string(*patch.PaymentMethod))
	}
	if patch.Note != nil {
		q.Set("note", *patch.Note)
	}
	if q.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	sql, args := q.Touch(actorID).
		Where("id", ref.OrderID).
		Where("customer_id", ref.CustomerID).
		SQL(orderColumns)

	row, err := queryOne[orderRow](ctx, r.conn, sql, args...)
	if err != nil {
		return nil, convertErr(err, "update order %d", ref.OrderID)
	}
	return row.toDomain(), nil
}

func (r *OrderRepository) SetTotal(ctx context.Context, orderID int64, total decimal.Decimal, actorID int64) error {
	sql, args := newUpdate("orders").Set("total", total).Touch(actorID).Where("id", orderID).SQL("")
	return convertErr(execAffected(ctx, r.conn, sql, args...), "set total of order %d", orderID)
}

// SetStoreNotes служебная пометка магазина. Автор изменения не проставляется.
func (r *OrderRepository) SetStoreNotes(ctx context.Context, orderID int64, notes string) error {
	sql, args := newUpdate("orders").Set("store_notes", notes).Where("id", orderID).SQL("")
	return convertErr(execAffected(ctx, r.conn, sql, args...), "set store notes of order %d", orderID)
}

func (r *OrderRepository) SoftDelete(ctx context.Context, ref domain.OrderRef, actorID int64) error {
	sql, args := newUpdate("orders").
		MarkDeleted(actorID).
		Where("id", ref.OrderID).
		Where("customer_id", ref.CustomerID).
		SQL("")
	return convertErr(execAffected(ctx, r.conn, sql, args...), "soft delete order %d", ref.OrderID)
}

// HardDelete удаляет заказ вместе с позициями (ON DELETE CASCADE).
func (r *OrderRepository) HardDelete(ctx context.Context, ref domain.OrderRef) error {
	err := execAffected(ctx, r.conn,
		`DELETE FROM orders WHERE id = $1 AND customer_id = $2 AND deleted_at IS NULL`,
		ref.OrderID, ref.CustomerID,
	)
	return convertErr(err, "hard delete order %d", ref.OrderID)
}

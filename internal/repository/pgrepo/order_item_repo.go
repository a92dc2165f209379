package pgrepo

import (
	"context"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/shopspring/decimal"
)

const orderItemColumns = "id, order_id, item_id, quantity, unit_price, " + auditColumns

type orderItemRow struct {
	auditRow
	ID        int64           `db:"id"`
	OrderID   int64           `db:"order_id"`
	ItemID    int64           `db:"item_id"`
	Quantity  int64           `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

func (r orderItemRow) toDomain() *domain.OrderItem {
	return &domain.OrderItem{
		Audit:     r.auditRow.toDomain(),
		ID:        r.ID,
		OrderID:   r.OrderID,
		ItemID:    r.ItemID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

type OrderItemRepository struct {
	conn uow.DBTX
}

func NewOrderItemRepository(conn uow.DBTX) *OrderItemRepository {
	return &OrderItemRepository{conn: conn}
}

func (r *OrderItemRepository) Create(ctx context.Context, args repoargs.CreateOrderItem) (*domain.OrderItem, error) {
	row, err := queryOne[orderItemRow](ctx, r.conn,
		`INSERT INTO order_items (order_id, item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4) RETURNING `+orderItemColumns,
		args.OrderID, args.ItemID, args.Quantity, args.UnitPrice,
	)
	if err != nil {
		return nil, convertErr(err, "create order item in order %d", args.OrderID)
	}
	return row.toDomain(), nil
}

func (r *OrderItemRepository) FindByID(ctx context.Context, orderID, id int64) (*domain.OrderItem, error) {
	row, err := queryOne[orderItemRow](ctx, r.conn,
		`SELECT `+orderItemColumns+` FROM order_items
		WHERE id = $1 AND order_id = $2 AND deleted_at IS NULL`,
		id, orderID,
	)
	if err != nil {
		return nil, convertErr(err, "find order item %d", id)
	}
	return row.toDomain(), nil
}

func (r *OrderItemRepository) List(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := queryAll[orderItemRow](ctx, r.conn,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 AND deleted_at IS NULL ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, convertErr(err, "list order items of order %d", orderID)
	}
	res := make([]domain.OrderItem, len(rows))
	for i, row := range rows {
		res[i] = *row.toDomain()
	}
	return res, nil
}

func (r *OrderItemRepository) Update(
	ctx context.Context,
	orderID, id int64,
	patch domain.OrderItemPatch,
	actorID int64,
) (*domain.OrderItem, error) {
	q := newUpdate("order_items")
	if patch.ItemID != nil {
		q.Set("item_id", *patch.ItemID)
	}
	if patch.Quantity != nil {
		q.Set("quantity", *patch.Quantity)
	}
	if q.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	sql, args := q.Touch(actorID).Where("id", id).Where("order_id", orderID).SQL(orderItemColumns)

	row, err := queryOne[orderItemRow](ctx, r.conn, sql, args...)
	if err != nil {
		return nil, convertErr(err, "update order item %d", id)
	}
	return row.toDomain(), nil
}

func (r *OrderItemRepository) SoftDelete(ctx context.Context, orderID, id, actorID int64) error {
	sql, args := newUpdate("order_items").
		MarkDeleted(actorID).
		Where("id", id).
		Where("order_id", orderID).
		SQL("")
	return convertErr(execAffected(ctx, r.conn, sql, args...), "soft delete order item %d", id)
}

func (r *OrderItemRepository) HardDelete(ctx context.Context, orderID, id int64) error {
	err := execAffected(ctx, r.conn,
		`DELETE FROM order_items WHERE id = $1 AND order_id = $2 AND deleted_at IS NULL`,
		id, orderID,
	)
	return convertErr(err, "hard delete order item %d", id)
}

package pgrepo

import (
	"context"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/shopspring/decimal"
)

const itemColumns = "id, name, quantity, orig_price, selling_price, " + auditColumns

type itemRow struct {
	auditRow
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	Quantity     int64           `db:"quantity"`
	OrigPrice    decimal.Decimal `db:"orig_price"`
	SellingPrice decimal.Decimal `db:"selling_price"`
}

func (r itemRow) toDomain() *domain.Item {
	return &domain.Item{
		Audit:        r.auditRow.toDomain(),
		ID:           r.ID,
		Name:         r.Name,
		Quantity:     r.Quantity,
		OrigPrice:    r.OrigPrice,
		SellingPrice: r.SellingPrice,
	}
}

type ItemRepository struct {
	conn uow.DBTX
}

func NewItemRepository(conn uow.DBTX) *ItemRepository {
	return &ItemRepository{conn: conn}
}

func (r *ItemRepository) Create(ctx context.Context, args repoargs.CreateItem) (*domain.Item, error) {
	row, err := queryOne[itemRow](ctx, r.conn,
		`INSERT INTO items (name, quantity, orig_price, selling_price)
		VALUES ($1, $2, $3, $4) RETURNING `+itemColumns,
		args.Name, args.Quantity, args.OrigPrice, args.SellingPrice,
	)
	if err != nil {
		return nil, convertErr(err, "create item %s", args.Name)
	}
	return row.toDomain(), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	return r.findByID(ctx, id, "")
}

// LockByID то же, что FindByID, но блокирует строку до конца транзакции.
func (r *ItemRepository) LockByID(ctx context.Context, id int64) (*domain.Item, error) {
	return r.findByID(ctx, id, " FOR UPDATE")
}

func (r *ItemRepository) findByID(ctx context.Context, id int64, lock string) (*domain.Item, error) {
	row, err := queryOne[itemRow](ctx, r.conn,
		`SELECT `+itemColumns+` FROM items WHERE id = $1 AND deleted_at IS NULL`+lock, id)
	if err != nil {
		return nil, convertErr(err, "find item %d", id)
	}
	return row.toDomain(), nil
}

func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := queryAll[itemRow](ctx, r.conn,
		`SELECT `+itemColumns+` FROM items WHERE deleted_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "list items")
	}
	res := make([]domain.Item, len(rows))
	for i, row := range rows {
		res[i] = *row.toDomain()
	}
	return res, nil
}

func (r *ItemRepository) Update(
	ctx context.Context,
	id int64,
	patch domain.ItemPatch,
	actorID int64,
) (*domain.Item, error) {
	q := newUpdate("items")
	if patch.Name != nil {
		q.Set("name", *patch.Name)
	}
	if patch.Quantity != nil {
		q.Set("quantity", *patch.Quantity)
	}
	if patch.OrigPrice != nil {
		q.Set("orig_price", *patch.OrigPrice)
	}
	if patch.SellingPrice != nil {
		q.Set("selling_price", *patch.SellingPrice)
	}
	if q.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	sql, args := q.Touch(actorID).Where("id", id).SQL(itemColumns)

	row, err := queryOne[itemRow](ctx, r.conn, sql, args...)
	if err != nil {
		return nil, convertErr(err, "update item %d", id)
	}
	return row.toDomain(), nil
}

// SetQuantity записывает новый остаток товара.
func (r *ItemRepository) SetQuantity(ctx context.Context, id, quantity, actorID int64) error {
	sql, args := newUpdate("items").Set("quantity", quantity).Touch(actorID).Where("id", id).SQL("")
	return convertErr(execAffected(ctx, r.conn, sql, args...), "set quantity of item %d", id)
}

func (r *ItemRepository) SoftDelete(ctx context.Context, id, actorID int64) error {
	sql, args := newUpdate("items").MarkDeleted(actorID).Where("id", id).SQL("")
	return convertErr(execAffected(ctx, r.conn, sql, args...), "soft delete item %d", id)
}

func (r *ItemRepository) HardDelete(ctx context.Context, id int64) error {
	err := execAffected(ctx, r.conn, `DELETE FROM items WHERE id = $1 AND deleted_at IS NULL`, id)
	return convertErr(err, "hard delete item %d", id)
}

package pgrepo

import (
	"context"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/shopspring/decimal"
)

const balanceColumns = "id, customer_id, total, " + auditColumns

type balanceRow struct {
	auditRow
	ID         int64           `db:"id"`
	CustomerID int64           `db:"customer_id"`
	Total      decimal.Decimal `db:"total"`
}

func (r balanceRow) toDomain() *domain.Balance {
	return &domain.Balance{
		Audit:      r.auditRow.toDomain(),
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Total:      r.Total,
	}
}

type BalanceRepository struct {
	conn uow.DBTX
}

func NewBalanceRepository(conn uow.DBTX) *BalanceRepository {
	return &BalanceRepository{conn: conn}
}

func (r *BalanceRepository) Create(ctx context.Context, customerID int64) (*domain.Balance, error) {
	row, err := queryOne[balanceRow](ctx, r.conn,
		`INSERT INTO balances (customer_id, total) VALUES ($1, 0) RETURNING `+balanceColumns, customerID)
	if err != nil {
		return nil, convertErr(err, "create balance for customer %d", customerID)
	}
	return row.toDomain(), nil
}

func (r *BalanceRepository) FindByCustomerID(ctx context.Context, customerID int64) (*domain.Balance, error) {
	return r.findByCustomerID(ctx, customerID, "")
}

// LockByCustomerID то же, что FindByCustomerID, но блокирует строку до конца транзакции.
func (r *BalanceRepository) LockByCustomerID(ctx context.Context, customerID int64) (*domain.Balance, error) {
	return r.findByCustomerID(ctx, customerID, " FOR UPDATE")
}

func (r *BalanceRepository) findByCustomerID(ctx context.Context, customerID int64, lock string) (*domain.Balance, error) {
	row, err := queryOne[balanceRow](ctx, r.conn,
		`SELECT `+balanceColumns+` FROM balances WHERE customer_id = $1 AND deleted_at IS NULL`+lock, customerID)
	if err != nil {
		return nil, convertErr(err, "find balance of customer %d", customerID)
	}
	return row.toDomain(), nil
}

func (r *BalanceRepository) FindByRef(ctx context.Context, ref domain.BalanceRef) (*domain.Balance, error) {
	return r.findByRef(ctx, ref, "")
}

// LockByRef то же, что FindByRef, но блокирует строку до конца транзакции.
func (r *BalanceRepository) LockByRef(ctx context.Context, ref domain.BalanceRef) (*domain.Balance, error) {
	return r.findByRef(ctx, ref, " FOR UPDATE")
}

func (r *BalanceRepository) findByRef(ctx context.Context, ref domain.BalanceRef, lock string) (*domain.Balance, error) {
	row, err := queryOne[balanceRow](ctx, r.conn,
		`SELECT `+balanceColumns+` FROM balances
		WHERE id = $1 AND customer_id = $2 AND deleted_at IS NULL`+lock,
		ref.BalanceID, ref.CustomerID,
	)
	if err != nil {
		return nil, convertErr(err, "find balance %d of customer %d", ref.BalanceID, ref.CustomerID)
	}
	return row.toDomain(), nil
}

func (r *BalanceRepository) SetTotal(ctx context.Context, args repoargs.SetBalanceTotal) (*domain.Balance, error) {
	sql, sqlArgs := newUpdate("balances").
		Set("total", args.Total).
		Touch(args.ActorID).
		Where("id", args.BalanceID).
		SQL(balanceColumns)

	row, err := queryOne[balanceRow](ctx, r.conn, sql, sqlArgs...)
	if err != nil {
		return nil, convertErr(err, "set total of balance %d", args.BalanceID)
	}
	return row.toDomain(), nil
}

func (r *BalanceRepository) SoftDeleteByCustomerID(ctx context.Context, customerID, actorID int64) error {
	sql, args := newUpdate("balances").MarkDeleted(actorID).Where("customer_id", customerID).SQL("")
	return convertErr(execAffected(ctx, r.conn, sql, args...), "soft delete balance of customer %d", customerID)
}

// HardDeleteByCustomerID удаляет баланс вместе с его транзакциями (ON DELETE CASCADE).
func (r *BalanceRepository) HardDeleteByCustomerID(ctx context.Context, customerID int64) error {
	err := execAffected(ctx, r.conn,
		`DELETE FROM balances WHERE customer_id = $1 AND deleted_at IS NULL`, customerID)
	return convertErr(err, "hard delete balance of customer %d", customerID)
}

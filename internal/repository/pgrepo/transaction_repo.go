package pgrepo

import (
	"context"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/shopspring/decimal"
)

const transactionColumns = "id, customer_id, balance_id, type, amount, " + auditColumns

type transactionRow struct {
	auditRow
	ID         int64           `db:"id"`
	CustomerID int64           `db:"customer_id"`
	BalanceID  int64           `db:"balance_id"`
	Type       string          `db:"type"`
	Amount     decimal.Decimal `db:"amount"`
}

func (r transactionRow) toDomain() *domain.Transaction {
	return &domain.Transaction{
		Audit:      r.auditRow.toDomain(),
		ID:         r.ID,
		CustomerID: r.CustomerID,
		BalanceID:  r.BalanceID,
		Type:       domain.TransactionType(r.Type),
		Amount:     r.Amount,
	}
}

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row, err := queryOne[transactionRow](ctx, r.conn,
		`INSERT INTO transactions (customer_id, balance_id, type, amount)
		VALUES ($1, $2, $3, $4) RETURNING `+transactionColumns,
		args.Ref.CustomerID, args.Ref.BalanceID, string(args.Type), args.Amount,
	)
	if err != nil {
		return nil, convertErr(err, "create transaction on balance %d", args.Ref.BalanceID)
	}
	return row.toDomain(), nil
}

func (r *TransactionRepository) FindByID(
	ctx context.Context,
	ref domain.BalanceRef,
	id int64,
) (*domain.Transaction, error) {
	row, err := queryOne[transactionRow](ctx, r.conn,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE id = $1 AND customer_id = $2 AND balance_id = $3 AND deleted_at IS NULL`,
		id, ref.CustomerID, ref.BalanceID,
	)
	if err != nil {
		return nil, convertErr(err, "find transaction %d", id)
	}
	return row.toDomain(), nil
}

func (r *TransactionRepository) List(ctx context.Context, ref domain.BalanceRef) ([]domain.Transaction, error) {
	rows, err := queryAll[transactionRow](ctx, r.conn,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE customer_id = $1 AND balance_id = $2 AND deleted_at IS NULL ORDER BY id`,
		ref.CustomerID, ref.BalanceID,
	)
	if err != nil {
		return nil, convertErr(err, "list transactions of balance %d", ref.BalanceID)
	}
	res := make([]domain.Transaction, len(rows))
	for i, row := range rows {
		res[i] = *row.toDomain()
	}
	return res, nil
}

// Update перезаписывает тип и сумму транзакции итоговой проводкой entry.
func (r *TransactionRepository) Update(
	ctx context.Context,
	ref domain.BalanceRef,
	id int64,
	entry domain.LedgerEntry,
	actorID int64,
) (*domain.Transaction, error) {
	sql, args := newUpdate("transactions").
		Set("type", string(entry.Type)).
		Set("amount", entry.Amount).
		Touch(actorID).
		Where("id", id).
		Where("customer_id", ref.CustomerID).
		Where("balance_id", ref.BalanceID).
		SQL(transactionColumns)

	row, err := queryOne[transactionRow](ctx, r.conn, sql, args...)
	if err != nil {
		return nil, convertErr(err, "update transaction %d", id)
	}
	return row.toDomain(), nil
}

func (r *TransactionRepository) SoftDelete(ctx context.Context, ref domain.BalanceRef, id, actorID int64) error {
	sql, args := newUpdate("transactions").
		MarkDeleted(actorID).
		Where("id", id).
		Where("customer_id", ref.CustomerID).
		Where("balance_id", ref.BalanceID).
		SQL("")
	return convertErr(execAffected(ctx, r.conn, sql, args...), "soft delete transaction %d", id)
}

func (r *TransactionRepository) HardDelete(ctx context.Context, ref domain.BalanceRef, id int64) error {
	err := execAffected(ctx, r.conn,
		`DELETE FROM transactions
		WHERE id = $1 AND customer_id = $2 AND balance_id = $3 AND deleted_at IS NULL`,
		id, ref.CustomerID, ref.BalanceID,
	)
	return convertErr(err, "hard delete transaction %d", id)
}

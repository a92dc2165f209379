package pgrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const auditColumns = "created_at, updated_at, deleted_at, updated_by, deleted_by"

type auditRow struct {
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
	UpdatedBy *int64     `db:"updated_by"`
	DeletedBy *int64     `db:"deleted_by"`
}

func (a auditRow) toDomain() domain.Audit {
	return domain.Audit{
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		DeletedAt: a.DeletedAt,
		UpdatedBy: a.UpdatedBy,
		DeletedBy: a.DeletedBy,
	}
}

func queryOne[R any](ctx context.Context, conn uow.DBTX, sql string, args ...any) (R, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		var zero R
		return zero, err //nolint:wrapcheck
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[R]) //nolint:wrapcheck
}

func queryAll[R any](ctx context.Context, conn uow.DBTX, sql string, args ...any) ([]R, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[R]) //nolint:wrapcheck
}

// execAffected выполняет запрос и возвращает pgx.ErrNoRows, если не затронута ни одна строка.
func execAffected(ctx context.Context, conn uow.DBTX, sql string, args ...any) error {
	tag, err := conn.Exec(ctx, sql, args...)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// updateQuery собирает UPDATE из перечисленных колонок. Колонки передаются только константами репозиториев,
// пользовательские данные попадают исключительно в аргументы.
type updateQuery struct {
	table string
	sets  []string
	conds []string
	args  []any
}

func newUpdate(table string) *updateQuery {
	return &updateQuery{table: table}
}

func (q *updateQuery) placeholder(value any) string {
	q.args = append(q.args, value)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *updateQuery) Set(column string, value any) *updateQuery {
	q.sets = append(q.sets, column+" = "+q.placeholder(value))
	return q
}

// Touch проставляет автора и время изменения.
func (q *updateQuery) Touch(actorID int64) *updateQuery {
	q.Set("updated_by", actorID)
	q.sets = append(q.sets, "updated_at = now()")
	return q
}

// MarkDeleted проставляет автора и время мягкого удаления.
func (q *updateQuery) MarkDeleted(actorID int64) *updateQuery {
	q.Set("deleted_by", actorID)
	q.sets = append(q.sets, "deleted_at = now()")
	return q
}

func (q *updateQuery) Where(column string, value any) *updateQuery {
	q.conds = append(q.conds, column+" = "+q.placeholder(value))
	return q
}

func (q *updateQuery) Empty() bool {
	return len(q.sets) == 0
}

// SQL возвращает запрос и аргументы. Мягко удаленные строки не обновляются никогда.
func (q *updateQuery) SQL(returning string) (string, []any) {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(q.table)
	b.WriteString(" SET ")
	b.WriteString(strings.Join(q.sets, ", "))
	b.WriteString(" WHERE ")
	for _, c := range q.conds {
		b.WriteString(c)
		b.WriteString(" AND ")
	}
	b.WriteString("deleted_at IS NULL")
	if returning != "" {
		b.WriteString(" RETURNING ")
		b.WriteString(returning)
	}
	return b.String(), q.args
}

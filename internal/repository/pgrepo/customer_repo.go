package pgrepo

import (
	"context"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
)

const customerColumns = "id, email, password, first_name, last_name, role, " + auditColumns

type customerRow struct {
	auditRow
	ID        int64  `db:"id"`
	Email     string `db:"email"`
	Password  string `db:"password"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Role      string `db:"role"`
}

func (r customerRow) toDomain() *domain.Customer {
	return &domain.Customer{
		Audit:     r.auditRow.toDomain(),
		ID:        r.ID,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      domain.Role(r.Role),
	}
}

type CustomerRepository struct {
	conn uow.DBTX
}

func NewCustomerRepository(conn uow.DBTX) *CustomerRepository {
	return &CustomerRepository{conn: conn}
}

func (r *CustomerRepository) Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error) {
	row, err := queryOne[customerRow](ctx, r.conn,
		`INSERT INTO customers (email, password, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+customerColumns,
		args.Email, args.Password, args.FirstName, args.LastName, string(args.Role),
	)
	if err != nil {
		return nil, convertErr(err, "create customer %s", args.Email)
	}
	return row.toDomain(), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row, err := queryOne[customerRow](ctx, r.conn,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return nil, convertErr(err, "find customer %d", id)
	}
	return row.toDomain(), nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row, err := queryOne[customerRow](ctx, r.conn,
		`SELECT `+customerColumns+` FROM customers WHERE email = $1 AND deleted_at IS NULL`, email)
	if err != nil {
		return nil, convertErr(err, "find customer by email")
	}
	return row.toDomain(), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := queryAll[customerRow](ctx, r.conn,
		`SELECT `+customerColumns+` FROM customers WHERE deleted_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "list customers")
	}
	res := make([]domain.Customer, len(rows))
	for i, row := range rows {
		res[i] = *row.toDomain()
	}
	return res, nil
}

// Update применяет патч. Пароль в патче должен быть уже захэширован.
func (r *CustomerRepository) Update(
	ctx context.Context,
	id int64,
	patch domain.CustomerPatch,
	actorID int64,
) (*domain.Customer, error) {
	q := newUpdate("customers")
	if patch.Email != nil {
		q.Set("email", *patch.Email)
	}
	if patch.Password != nil {
		q.Set("password", *patch.Password)
	}
	if patch.FirstName != nil {
		q.Set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		q.Set("last_name", *patch.LastName)
	}
	if q.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	sql, args := q.Touch(actorID).Where("id", id).SQL(customerColumns)

	row, err := queryOne[customerRow](ctx, r.conn, sql, args...)
	if err != nil {
		return nil, convertErr(err, "update customer %d", id)
	}
	return row.toDomain(), nil
}

func (r *CustomerRepository) SoftDelete(ctx context.Context, id, actorID int64) error {
	sql, args := newUpdate("customers").MarkDeleted(actorID).Where("id", id).SQL("")
	return convertErr(execAffected(ctx, r.conn, sql, args...), "soft delete customer %d", id)
}

// HardDelete удаляет клиента вместе с зависимыми строками (ON DELETE CASCADE).
func (r *CustomerRepository) HardDelete(ctx context.Context, id int64) error {
	err := execAffected(ctx, r.conn, `DELETE FROM customers WHERE id = $1 AND deleted_at IS NULL`, id)
	return convertErr(err, "hard delete customer %d", id)
}

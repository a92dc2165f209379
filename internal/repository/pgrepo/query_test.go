package pgrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateQuery(t *testing.T) {
	sql, args := newUpdate("items").
		Set("name", "pen").
		Set("quantity", int64(3)).
		Touch(7).
		Where("id", int64(10)).
		SQL("id")

	assert.Equal(t,
		"UPDATE items SET name = $1, quantity = $2, updated_by = $3, updated_at = now() "+
			"WHERE id = $4 AND deleted_at IS NULL RETURNING id",
		sql,
	)
	assert.Equal(t, []any{"pen", int64(3), int64(7), int64(10)}, args)
}

func TestUpdateQuery_SoftDelete(t *testing.T) {
	q := newUpdate("transactions")
	assert.True(t, q.Empty())

	sql, args := q.MarkDeleted(1).
		Where("id", int64(5)).
		Where("customer_id", int64(2)).
		Where("balance_id", int64(3)).
		SQL("")

	assert.False(t, q.Empty())
	assert.Equal(t,
		"UPDATE transactions SET deleted_by = $1, deleted_at = now() "+
			"WHERE id = $2 AND customer_id = $3 AND balance_id = $4 AND deleted_at IS NULL",
		sql,
	)
	assert.Len(t, args, 4)
}

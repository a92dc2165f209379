package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "unique", err: &pgconn.PgError{Code: uniqueViolationCode}, want: domain.ErrDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: foreignKeyViolationCode}, want: domain.ErrRecordNotFound},
		{name: "check", err: &pgconn.PgError{Code: checkViolationCode}, want: domain.ErrBadRequest},
		{name: "other", err: errors.New("conn reset"), want: domain.ErrUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := convertErr(tc.err, "find item %d", 1)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "[repository/find item 1]")
		})
	}

	assert.NoError(t, convertErr(nil, "noop"))
}

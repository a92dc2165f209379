package api

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/storeledger/internal/domain"
)

func TestProjectPicksShapeByRole(t *testing.T) {
	balance := &domain.Balance{ID: 1, CustomerID: 2, Total: decimal.RequireFromString("5.1")}

	full := projectBalance(domain.Caller{ID: 1, Role: domain.RoleAdmin}, balance)
	require.NotNil(t, full.Full)
	assert.Nil(t, full.Restricted)

	restricted := projectBalance(domain.Caller{ID: 2, Role: domain.RoleUser}, balance)
	require.NotNil(t, restricted.Restricted)
	assert.Nil(t, restricted.Full)
	assert.Equal(t, "5.10", restricted.Restricted.Total)

	// неизвестная роль не получает полный вид.
	anonymous := projectBalance(domain.Caller{}, balance)
	assert.Nil(t, anonymous.Full)
}

func TestProjectionMarshal(t *testing.T) {
	order := &domain.Order{ID: 3, CustomerID: 2, PaymentMethod: domain.PaymentBalance, Total: decimal.Zero}

	raw, err := json.Marshal(projectOrder(domain.Caller{Role: domain.RoleUser}, order))
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, "balance", res["payment_method"])
	assert.Equal(t, "0.00", res["total"])
	assert.Nil(t, res["store_notes"])
	assert.NotContains(t, res, "updated_at")
}

func TestProjectAllKeepsOrder(t *testing.T) {
	txs := []domain.Transaction{{ID: 3}, {ID: 1}, {ID: 2}}

	res := projectAll(domain.Caller{Role: domain.RoleAdmin}, txs, newTransactionResponse, newTransactionAdminResponse)
	require.Len(t, res, 3)
	for i, p := range res {
		require.NotNil(t, p.Full)
		assert.Equal(t, txs[i].ID, p.Full.ID)
	}
}

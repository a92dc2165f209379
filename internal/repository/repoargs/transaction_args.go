package repoargs

import (
	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	Ref    domain.BalanceRef
	Type   domain.TransactionType
	Amount decimal.Decimal
}

// SetBalanceTotal новый итог баланса и автор изменения.
type SetBalanceTotal struct {
	BalanceID int64
	Total     decimal.Decimal
	ActorID   int64
}

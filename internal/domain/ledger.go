package domain

import (
	"github.com/shopspring/decimal"
)

// MoneyScale количество знаков после запятой у денежных полей.
const MoneyScale = 2

// LedgerEntry проводка по балансу: тип и сумма транзакции.
type LedgerEntry struct {
	Type   TransactionType
	Amount decimal.Decimal
}

// Effect знаковая дельта, которую проводка вносит в баланс: +amount для deposit, -amount для withdraw.
func (e LedgerEntry) Effect() decimal.Decimal {
	if e.Type == TransactionWithdraw {
		return e.Amount.Neg()
	}
	return e.Amount
}

func (e LedgerEntry) Validate() error {
	if e.Type != TransactionDeposit && e.Type != TransactionWithdraw {
		return NewValidationError("type", "must be one of deposit, withdraw")
	}
	return ValidateAmount("amount", e.Amount)
}

// ApplyEntry применяет проводку к total. Возвращает ErrInsufficientBalance, если итог уходит в минус.
func ApplyEntry(total decimal.Decimal, e LedgerEntry) (decimal.Decimal, error) {
	res := total.Add(e.Effect())
	if res.IsNegative() {
		return total, ErrInsufficientBalance
	}
	return res, nil
}

// Reconcile пересчитывает баланс при изменении транзакции.
//
// Алгоритм:
//  1. Откатывает эффект старой проводки old.
//  2. Накладывает патч на old, не переданные поля берутся из old.
//  3. Применяет новую проводку. Отрицательный итог дает ErrInsufficientBalance.
//
// Возвращает новый total и итоговую проводку, которую нужно сохранить вместе с ним.
func Reconcile(total decimal.Decimal, old LedgerEntry, patch TransactionPatch) (decimal.Decimal, LedgerEntry, error) {
	next := patch.Resolve(old)
	if err := next.Validate(); err != nil {
		return total, old, err
	}
	res, err := ApplyEntry(total.Sub(old.Effect()), next)
	if err != nil {
		return total, old, err
	}
	return res, next, nil
}

// ValidateAmount положительная сумма, не больше MoneyScale знаков после запятой.
func ValidateAmount(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return NewValidationError(field, "must be greater than zero")
	}
	return validateScale(field, v)
}

// ValidateNonNegativeAmount то же, что ValidateAmount, но допускает ноль.
func ValidateNonNegativeAmount(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return NewValidationError(field, "must not be negative")
	}
	return validateScale(field, v)
}

func validateScale(field string, v decimal.Decimal) error {
	if !v.Equal(v.Round(MoneyScale)) {
		return NewValidationError(field, "must have at most 2 decimal places")
	}
	return nil
}

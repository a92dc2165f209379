package domain

import "github.com/shopspring/decimal"

// Патчи содержат только переданные поля, nil означает "не менять".

type CustomerPatch struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
}

func (p CustomerPatch) IsEmpty() bool {
	return p.Email == nil && p.Password == nil && p.FirstName == nil && p.LastName == nil
}

type TransactionPatch struct {
	Type   *TransactionType
	Amount *decimal.Decimal
}

func (p TransactionPatch) IsEmpty() bool {
	return p.Type == nil && p.Amount == nil
}

// Resolve накладывает патч на старую проводку.
func (p TransactionPatch) Resolve(old LedgerEntry) LedgerEntry {
	res := old
	if p.Type != nil {
		res.Type = *p.Type
	}
	if p.Amount != nil {
		res.Amount = *p.Amount
	}
	return res
}

type ItemPatch struct {
	Name         *string
	Quantity     *int64
	OrigPrice    *decimal.Decimal
	SellingPrice *decimal.Decimal
}

func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Quantity == nil && p.OrigPrice == nil && p.SellingPrice == nil
}

type OrderPatch struct {
	PaymentMethod *PaymentMethod
	Note          *string
}

func (p OrderPatch) IsEmpty() bool {
	return p.PaymentMethod == nil && p.Note == nil
}

type OrderItemPatch struct {
	ItemID   *int64
	Quantity *int64
}

func (p OrderItemPatch) IsEmpty() bool {
	return p.ItemID == nil && p.Quantity == nil
}

package domain

// ValidateQuantity количество в позиции заказа.
func ValidateQuantity(q int64) error {
	if q <= 0 {
		return NewValidationError("quantity", "must be greater than zero")
	}
	return nil
}

// ReserveStock списывает requested единиц со склада при создании позиции заказа.
// Ошибки: ErrOutOfStock при пустом складе, ErrQuantityExceedsStock если остатка не хватает.
func ReserveStock(stock, requested int64) (int64, error) {
	if stock <= 0 {
		return stock, ErrOutOfStock
	}
	if requested > stock {
		return stock, ErrQuantityExceedsStock
	}
	return stock - requested, nil
}

// ReplaceReservation пересчитывает склад при полной замене позиции: сначала возвращаются held единиц,
// затем списываются requested.
func ReplaceReservation(stock, held, requested int64) (int64, error) {
	restored := stock + held
	if requested > restored {
		return stock, ErrQuantityExceedsStock
	}
	return restored - requested, nil
}

// StockMove итоговые остатки товаров после переноса позиции заказа.
type StockMove struct {
	OldItemID   int64
	OldQuantity int64
	NewItemID   int64
	NewQuantity int64
}

// SameItem true если позиция осталась на том же товаре, тогда Old* и New* описывают одну строку.
func (m StockMove) SameItem() bool {
	return m.OldItemID == m.NewItemID
}

// MoveReservation возвращает held единиц на oldItem и списывает requested с newItem.
// Для того же товара лимит считается от восстановленного остатка, для другого товара от его текущего.
func MoveReservation(oldItem Item, held int64, newItem Item, requested int64) (StockMove, error) {
	restored := oldItem.Quantity + held
	if oldItem.ID == newItem.ID {
		if requested > restored {
			return StockMove{}, ErrQuantityExceedsStock
		}
		left := restored - requested
		return StockMove{OldItemID: oldItem.ID, OldQuantity: left, NewItemID: newItem.ID, NewQuantity: left}, nil
	}
	if requested > newItem.Quantity {
		return StockMove{}, ErrQuantityExceedsStock
	}
	return StockMove{
		OldItemID:   oldItem.ID,
		OldQuantity: restored,
		NewItemID:   newItem.ID,
		NewQuantity: newItem.Quantity - requested,
	}, nil
}

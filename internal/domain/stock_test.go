package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveStock(t *testing.T) {
	left, err := ReserveStock(5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), left)

	_, err = ReserveStock(left, 1)
	require.ErrorIs(t, err, ErrOutOfStock)

	_, err = ReserveStock(3, 4)
	require.ErrorIs(t, err, ErrQuantityExceedsStock)
}

func TestReplaceReservation(t *testing.T) {
	left, err := ReplaceReservation(2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), left)

	_, err = ReplaceReservation(2, 3, 6)
	require.ErrorIs(t, err, ErrQuantityExceedsStock)
}

func TestMoveReservation_SameItem(t *testing.T) {
	// позиция держит 3 единицы, на складе S.
	for _, stock := range []int64{0, 1, 2, 3, 10} {
		item := Item{ID: 1, Quantity: stock}
		move, err := MoveReservation(item, 3, item, 5)
		if 5 <= stock+3 {
			require.NoError(t, err, "stock %d", stock)
			assert.True(t, move.SameItem())
			assert.Equal(t, stock+3-5, move.NewQuantity)
			assert.Equal(t, move.NewQuantity, move.OldQuantity)
			continue
		}
		require.ErrorIs(t, err, ErrQuantityExceedsStock, "stock %d", stock)
	}
}

func TestMoveReservation_OtherItem(t *testing.T) {
	oldItem := Item{ID: 1, Quantity: 4}
	newItem := Item{ID: 2, Quantity: 5}

	move, err := MoveReservation(oldItem, 3, newItem, 5)
	require.NoError(t, err)
	assert.False(t, move.SameItem())
	assert.Equal(t, int64(7), move.OldQuantity)
	assert.Equal(t, int64(0), move.NewQuantity)

	// возврат на старый товар не увеличивает лимит нового.
	_, err = MoveReservation(oldItem, 3, newItem, 6)
	require.ErrorIs(t, err, ErrQuantityExceedsStock)
}

func TestItemDerivedValues(t *testing.T) {
	item := Item{Quantity: 3, OrigPrice: dec("2.50"), SellingPrice: dec("4.00")}
	assert.True(t, dec("7.50").Equal(item.TotalOrigPrice()))
	assert.True(t, dec("12.00").Equal(item.TotalSellingPrice()))
	assert.True(t, dec("4.50").Equal(item.Profit()))

	oi := OrderItem{Quantity: 5, UnitPrice: dec("10.00")}
	assert.True(t, dec("50.00").Equal(oi.Subtotal()))
}

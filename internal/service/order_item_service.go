package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type OrderItemService struct {
	uow           uow.UOW
	customerRepo  CustomerRepository
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	cache         Cacher
	l             *logrus.Logger
}

func NewOrderItemService(u uow.UOW, cache Cacher, l *logrus.Logger) (*OrderItemService, error) {
	customerRepo, err := repoOf[CustomerRepository](u, repoargs.CustomerRepoName)
	if err != nil {
		return nil, err
	}
	orderRepo, err := repoOf[OrderRepository](u, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	orderItemRepo, err := repoOf[OrderItemRepository](u, repoargs.OrderItemRepoName)
	if err != nil {
		return nil, err
	}
	return &OrderItemService{
		uow:           u,
		customerRepo:  customerRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		cache:         cache,
		l:             l,
	}, nil
}

type OrderItemArgs struct {
	ItemID   int64
	Quantity int64
}

func (s *OrderItemService) List(
	ctx context.Context,
	caller domain.Caller,
	ref domain.OrderRef,
) ([]domain.OrderItem, error) {
	if err := s.gateCustomer(ctx, caller, ref.CustomerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	if _, err := gateOrder(ctx, s.orderRepo, ref); err != nil {
		return nil, err
	}
	orderItems, err := s.orderItemRepo.List(ctx, ref.OrderID)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	return orderItems, nil
}

func (s *OrderItemService) Get(
	ctx context.Context,
	caller domain.Caller,
	ref domain.OrderRef,
	id int64,
) (*domain.OrderItem, error) {
	if err := s.gateCustomer(ctx, caller, ref.CustomerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	if _, err := gateOrder(ctx, s.orderRepo, ref); err != nil {
		return nil, err
	}
	return fetchOrFail(domain.EntityOrderItem, id, func() (*domain.OrderItem, error) {
		return s.orderItemRepo.FindByID(ctx, ref.OrderID, id)
	})
}

// Create добавляет товар в заказ.
//
// В одной транзакции резервирует остаток товара, списывает сумму позиции с баланса клиента
// (для заказов с оплатой balance), создает позицию с ценой на момент покупки и увеличивает сумму заказа.
// Строки заказа, товара и баланса блокируются.
//
// Если баланса не хватает, транзакция откатывается, а заказ получает пометку
// domain.StoreNoteInsufficientBalance отдельным запросом.
func (s *OrderItemService) Create(
	ctx context.Context,
	caller domain.Caller,
	ref domain.OrderRef,
	args OrderItemArgs,
) (*domain.OrderItem, error) {
	if err := s.gateCustomer(ctx, caller, ref.CustomerID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := domain.ValidateQuantity(args.Quantity); err != nil {
		return nil, err
	}

	var orderItem *domain.OrderItem
	var underfunded bool
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orders, err := repoFrom[OrderRepository](tx, repoargs.OrderRepoName)
		if err != nil {
			return err
		}
		items, err := repoFrom[ItemRepository](tx, repoargs.ItemRepoName)
		if err != nil {
			return err
		}
		orderItems, err := repoFrom[OrderItemRepository](tx, repoargs.OrderItemRepoName)
		if err != nil {
			return err
		}

		order, err := fetchOrFail(domain.EntityOrder, ref.OrderID, func() (*domain.Order, error) {
			return orders.LockByID(c, ref)
		})
		if err != nil {
			return err
		}
		item, err := lockItem(c, items, args.ItemID)
		if err != nil {
			return err
		}

		left, err := domain.ReserveStock(item.Quantity, args.Quantity)
		if err != nil {
			return err //nolint:wrapcheck
		}
		subtotal := item.SellingPrice.Mul(decimal.NewFromInt(args.Quantity))

		if order.PaymentMethod == domain.PaymentBalance {
			if err = s.charge(c, tx, caller, ref.CustomerID, subtotal); err != nil {
				underfunded = errors.Is(err, domain.ErrInsufficientBalance)
				return err
			}
		}

		orderItem, err = orderItems.Create(c, repoargs.CreateOrderItem{
			OrderID:   order.ID,
			ItemID:    item.ID,
			Quantity:  args.Quantity,
			UnitPrice: item.SellingPrice,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if err = items.SetQuantity(c, item.ID, left, caller.ID); err != nil {
			return err //nolint:wrapcheck
		}
		return orders.SetTotal(c, order.ID, order.Total.Add(subtotal), caller.ID) //nolint:wrapcheck
	})

	if underfunded {
		s.markUnderfunded(ctx, ref.OrderID)
	}
	if txErr != nil {
		return nil, fmt.Errorf("creating order item: %w", txErr)
	}
	invalidateItems(ctx, s.cache, s.l)
	return orderItem, nil
}

// charge списывает сумму позиции с заблокированного баланса клиента.
func (s *OrderItemService) charge(
	ctx context.Context,
	tx uow.TX,
	caller domain.Caller,
	customerID int64,
	amount decimal.Decimal,
) error {
	balances, err := repoFrom[BalanceRepository](tx, repoargs.BalanceRepoName)
	if err != nil {
		return err
	}
	balance, err := fetchOrFail(domain.EntityBalance, 0, func() (*domain.Balance, error) {
		return balances.LockByCustomerID(ctx, customerID)
	})
	if err != nil {
		return err
	}
	total, err := domain.ApplyEntry(balance.Total, domain.LedgerEntry{
		Type:   domain.TransactionWithdraw,
		Amount: amount,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}
	_, err = balances.SetTotal(ctx, repoargs.SetBalanceTotal{
		BalanceID: balance.ID,
		Total:     total,
		ActorID:   caller.ID,
	})
	return err //nolint:wrapcheck
}

// markUnderfunded пишет пометку вне откаченной транзакции. Ее ошибка только логируется,
// клиент в любом случае получает domain.ErrInsufficientBalance.
func (s *OrderItemService) markUnderfunded(ctx context.Context, orderID int64) {
	entry := s.l.WithField("order_id", orderID)
	if err := s.orderRepo.SetStoreNotes(ctx, orderID, domain.StoreNoteInsufficientBalance); err != nil {
		entry.WithError(err).Error("saving store notes")
		return
	}
	entry.Warn("order item rejected: customer balance not sufficient")
}

// Replace заменяет товар и количество позиции. Остаток целевого товара считается так,
// будто старой позиции не было: target.quantity + old.quantity. Сумма заказа и баланс не пересчитываются.
func (s *OrderItemService) Replace(
	ctx context.Context,
	caller domain.Caller,
	ref domain.OrderRef,
	id int64,
	args OrderItemArgs,
) (*domain.OrderItem, error) {
	if err := s.gateCustomer(ctx, caller, ref.CustomerID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := domain.ValidateQuantity(args.Quantity); err != nil {
		return nil, err
	}

	var orderItem *domain.OrderItem
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orders, items, orderItems, err := s.txRepos(tx)
		if err != nil {
			return err
		}
		old, err := s.loadForUpdate(c, orders, orderItems, ref, id)
		if err != nil {
			return err
		}
		target, err := lockItem(c, items, args.ItemID)
		if err != nil {
			return err
		}

		left, err := domain.ReplaceReservation(target.Quantity, old.Quantity, args.Quantity)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if err = items.SetQuantity(c, target.ID, left, caller.ID); err != nil {
			return err //nolint:wrapcheck
		}
		orderItem, err = orderItems.Update(c, ref.OrderID, id, domain.OrderItemPatch{
			ItemID:   &args.ItemID,
			Quantity: &args.Quantity,
		}, caller.ID)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("replacing order item: %w", txErr)
	}
	invalidateItems(ctx, s.cache, s.l)
	return orderItem, nil
}

// Patch меняет товар и/или количество позиции. Остатки пересчитываются, только если одно из них
// действительно изменилось: старый товар получает назад старое количество, с нового списывается новое.
func (s *OrderItemService) Patch(
	ctx context.Context,
	caller domain.Caller,
	ref domain.OrderRef,
	id int64,
	patch domain.OrderItemPatch,
) (*domain.OrderItem, error) {
	if err := s.gateCustomer(ctx, caller, ref.CustomerID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}
	if patch.Quantity != nil {
		if err := domain.ValidateQuantity(*patch.Quantity); err != nil {
			return nil, err
		}
	}

	var orderItem *domain.OrderItem
	var moved bool
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orders, items, orderItems, err := s.txRepos(tx)
		if err != nil {
			return err
		}
		old, err := s.loadForUpdate(c, orders, orderItems, ref, id)
		if err != nil {
			return err
		}

		newItemID, newQty := old.ItemID, old.Quantity
		if patch.ItemID != nil {
			newItemID = *patch.ItemID
		}
		if patch.Quantity != nil {
			newQty = *patch.Quantity
		}
		if newItemID != old.ItemID || newQty != old.Quantity {
			if err = moveStock(c, items, caller, old, newItemID, newQty); err != nil {
				return err
			}
			moved = true
		}

		orderItem, err = orderItems.Update(c, ref.OrderID, id, patch, caller.ID)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating order item: %w", txErr)
	}
	if moved {
		invalidateItems(ctx, s.cache, s.l)
	}
	return orderItem, nil
}

// moveStock блокирует старый и новый товары по возрастанию id и переносит резерв позиции.
func moveStock(
	ctx context.Context,
	items ItemRepository,
	caller domain.Caller,
	old *domain.OrderItem,
	newItemID, newQty int64,
) error {
	first, second := old.ItemID, newItemID
	if second < first {
		first, second = second, first
	}
	locked := make(map[int64]*domain.Item, 2)
	for _, itemID := range []int64{first, second} {
		if _, ok := locked[itemID]; ok {
			continue
		}
		item, err := lockItem(ctx, items, itemID)
		if err != nil {
			return err
		}
		locked[itemID] = item
	}

	move, err := domain.MoveReservation(*locked[old.ItemID], old.Quantity, *locked[newItemID], newQty)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if err = items.SetQuantity(ctx, move.OldItemID, move.OldQuantity, caller.ID); err != nil {
		return err //nolint:wrapcheck
	}
	if move.SameItem() {
		return nil
	}
	return items.SetQuantity(ctx, move.NewItemID, move.NewQuantity, caller.ID) //nolint:wrapcheck
}

// SoftDelete скрывает позицию. Остаток товара и сумма заказа не восстанавливаются.
func (s *OrderItemService) SoftDelete(ctx context.Context, caller domain.Caller, ref domain.OrderRef, id int64) error {
	if err := s.gateCustomer(ctx, caller, ref.CustomerID, domain.RoleAdmin); err != nil {
		return err
	}
	if _, err := gateOrder(ctx, s.orderRepo, ref); err != nil {
		return err
	}
	if err := mutateOrFail(domain.EntityOrderItem, id, func() error {
		return s.orderItemRepo.SoftDelete(ctx, ref.OrderID, id, caller.ID)
	}); err != nil {
		return fmt.Errorf("soft deleting order item: %w", err)
	}
	return nil
}

// HardDelete удаляет позицию. Остаток товара и сумма заказа не восстанавливаются.
func (s *OrderItemService) HardDelete(ctx context.Context, caller domain.Caller, ref domain.OrderRef, id int64) error {
	if err := s.gateCustomer(ctx, caller, ref.CustomerID, domain.RoleAdmin); err != nil {
		return err
	}
	if _, err := gateOrder(ctx, s.orderRepo, ref); err != nil {
		return err
	}
	if err := mutateOrFail(domain.EntityOrderItem, id, func() error {
		return s.orderItemRepo.HardDelete(ctx, ref.OrderID, id)
	}); err != nil {
		return fmt.Errorf("hard deleting order item: %w", err)
	}
	return nil
}

func (s *OrderItemService) gateCustomer(
	ctx context.Context,
	caller domain.Caller,
	customerID int64,
	allowed ...domain.Role,
) error {
	if err := domain.Authorize(caller, customerID, allowed...); err != nil {
		return err
	}
	_, err := fetchOrFail(domain.EntityCustomer, customerID, func() (*domain.Customer, error) {
		return s.customerRepo.FindByID(ctx, customerID)
	})
	return err
}

func (s *OrderItemService) txRepos(tx uow.TX) (OrderRepository, ItemRepository, OrderItemRepository, error) {
	orders, err := repoFrom[OrderRepository](tx, repoargs.OrderRepoName)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := repoFrom[ItemRepository](tx, repoargs.ItemRepoName)
	if err != nil {
		return nil, nil, nil, err
	}
	orderItems, err := repoFrom[OrderItemRepository](tx, repoargs.OrderItemRepoName)
	if err != nil {
		return nil, nil, nil, err
	}
	return orders, items, orderItems, nil
}

func (s *OrderItemService) loadForUpdate(
	ctx context.Context,
	orders OrderRepository,
	orderItems OrderItemRepository,
	ref domain.OrderRef,
	id int64,
) (*domain.OrderItem, error) {
	if _, err := gateOrder(ctx, orders, ref); err != nil {
		return nil, err
	}
	return fetchOrFail(domain.EntityOrderItem, id, func() (*domain.OrderItem, error) {
		return orderItems.FindByID(ctx, ref.OrderID, id)
	})
}

func gateOrder(ctx context.Context, orders OrderRepository, ref domain.OrderRef) (*domain.Order, error) {
	return fetchOrFail(domain.EntityOrder, ref.OrderID, func() (*domain.Order, error) {
		return orders.FindByID(ctx, ref)
	})
}

func lockItem(ctx context.Context, items ItemRepository, id int64) (*domain.Item, error) {
	return fetchOrFail(domain.EntityItem, id, func() (*domain.Item, error) {
		return items.LockByID(ctx, id)
	})
}

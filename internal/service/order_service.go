package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
)

type OrderService struct {
	customerRepo CustomerRepository
	orderRepo    OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	customerRepo, err := repoOf[CustomerRepository](u, repoargs.CustomerRepoName)
	if err != nil {
		return nil, err
	}
	orderRepo, err := repoOf[OrderRepository](u, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	return &OrderService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}, nil
}

type OrderArgs struct {
	PaymentMethod domain.PaymentMethod
	Note          string
}

func (s *OrderService) List(ctx context.Context, caller domain.Caller, customerID int64) ([]domain.Order, error) {
	if err := s.gate(ctx, caller, customerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.List(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, caller domain.Caller, ref domain.OrderRef) (*domain.Order, error) {
	if err := s.gate(ctx, caller, ref.CustomerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	return fetchOrFail(domain.EntityOrder, ref.OrderID, func() (*domain.Order, error) {
		return s.orderRepo.FindByID(ctx, ref)
	})
}

// Create создает пустой заказ клиента. Способ оплаты по умолчанию cash.
func (s *OrderService) Create(
	ctx context.Context,
	caller domain.Caller,
	customerID int64,
	args OrderArgs,
) (*domain.Order, error) {
	if err := s.gate(ctx, caller, customerID, domain.RoleUser); err != nil {
		return nil, err
	}
	if args.PaymentMethod == "" {
		args.PaymentMethod = domain.PaymentCash
	}
	if err := validatePaymentMethod(args.PaymentMethod); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.Create(ctx, repoargs.CreateOrder{
		CustomerID:    customerID,
		PaymentMethod: args.PaymentMethod,
		Note:          args.Note,
	})
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	return order, nil
}

func (s *OrderService) Replace(
	ctx context.Context,
	caller domain.Caller,
	ref domain.OrderRef,
	args OrderArgs,
) (*domain.Order, error) {
	if args.PaymentMethod == "" {
		args.PaymentMethod = domain.PaymentCash
	}
	return s.Patch(ctx, caller, ref, domain.OrderPatch{PaymentMethod: &args.PaymentMethod, Note: &args.Note})
}

func (s *OrderService) Patch(
	ctx context.Context,
	caller domain.Caller,
	ref domain.OrderRef,
	patch domain.OrderPatch,
) (*domain.Order, error) {
	if err := s.gate(ctx, caller, ref.CustomerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}
	if patch.PaymentMethod != nil {
		if err := validatePaymentMethod(*patch.PaymentMethod); err != nil {
			return nil, err
		}
	}
	order, err := fetchOrFail(domain.EntityOrder, ref.OrderID, func() (*domain.Order, error) {
		return s.orderRepo.Update(ctx, ref, patch, caller.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}
	return order, nil
}

func (s *OrderService) SoftDelete(ctx context.Context, caller domain.Caller, ref domain.OrderRef) error {
	if err := s.gate(ctx, caller, ref.CustomerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return err
	}
	if err := mutateOrFail(domain.EntityOrder, ref.OrderID, func() error {
		return s.orderRepo.SoftDelete(ctx, ref, caller.ID)
	}); err != nil {
		return fmt.Errorf("soft deleting order: %w", err)
	}
	return nil
}

func (s *OrderService) HardDelete(ctx context.Context, caller domain.Caller, ref domain.OrderRef) error {
	if err := s.gate(ctx, caller, ref.CustomerID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := mutateOrFail(domain.EntityOrder, ref.OrderID, func() error {
		return s.orderRepo.HardDelete(ctx, ref)
	}); err != nil {
		return fmt.Errorf("hard deleting order: %w", err)
	}
	return nil
}

// gate проверяет права caller на заказы клиента и что сам клиент существует.
func (s *OrderService) gate(ctx context.Context, caller domain.Caller, customerID int64, allowed ...domain.Role) error {
	if err := domain.Authorize(caller, customerID, allowed...); err != nil {
		return err
	}
	_, err := fetchOrFail(domain.EntityCustomer, customerID, func() (*domain.Customer, error) {
		return s.customerRepo.FindByID(ctx, customerID)
	})
	return err
}

func validatePaymentMethod(m domain.PaymentMethod) error {
	if m != domain.PaymentCash && m != domain.PaymentBalance {
		return domain.NewValidationError("payment_method", "must be one of cash, balance")
	}
	return nil
}

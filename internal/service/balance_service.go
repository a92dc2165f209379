package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/shopspring/decimal"
)

type BalanceService struct {
	uow          uow.UOW
	customerRepo CustomerRepository
	balanceRepo  BalanceRepository
}

func NewBalanceService(u uow.UOW) (*BalanceService, error) {
	customerRepo, err := repoOf[CustomerRepository](u, repoargs.CustomerRepoName)
	if err != nil {
		return nil, err
	}
	balanceRepo, err := repoOf[BalanceRepository](u, repoargs.BalanceRepoName)
	if err != nil {
		return nil, err
	}
	return &BalanceService{
		uow:          u,
		customerRepo: customerRepo,
		balanceRepo:  balanceRepo,
	}, nil
}

func (s *BalanceService) Get(ctx context.Context, caller domain.Caller, customerID int64) (*domain.Balance, error) {
	if err := domain.Authorize(caller, customerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	if _, err := fetchOrFail(domain.EntityCustomer, customerID, func() (*domain.Customer, error) {
		return s.customerRepo.FindByID(ctx, customerID)
	}); err != nil {
		return nil, err
	}
	return fetchOrFail(domain.EntityBalance, 0, func() (*domain.Balance, error) {
		return s.balanceRepo.FindByCustomerID(ctx, customerID)
	})
}

// Replace выставляет итог баланса напрямую, минуя транзакции. Доступно только администратору.
func (s *BalanceService) Replace(
	ctx context.Context,
	caller domain.Caller,
	customerID int64,
	total decimal.Decimal,
) (*domain.Balance, error) {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := domain.ValidateNonNegativeAmount("total", total); err != nil {
		return nil, err
	}

	var balance *domain.Balance
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		balances, err := repoFrom[BalanceRepository](tx, repoargs.BalanceRepoName)
		if err != nil {
			return err
		}
		current, err := fetchOrFail(domain.EntityBalance, 0, func() (*domain.Balance, error) {
			return balances.LockByCustomerID(c, customerID)
		})
		if err != nil {
			return err
		}
		balance, err = balances.SetTotal(c, repoargs.SetBalanceTotal{
			BalanceID: current.ID,
			Total:     total,
			ActorID:   caller.ID,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("replacing balance: %w", txErr)
	}
	return balance, nil
}

func (s *BalanceService) SoftDelete(ctx context.Context, caller domain.Caller, customerID int64) error {
	if err := domain.Authorize(caller, customerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return err
	}
	err := mutateOrFail(domain.EntityBalance, 0, func() error {
		return s.balanceRepo.SoftDeleteByCustomerID(ctx, customerID, caller.ID)
	})
	if err != nil {
		return fmt.Errorf("soft deleting balance: %w", err)
	}
	return nil
}

func (s *BalanceService) HardDelete(ctx context.Context, caller domain.Caller, customerID int64) error {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return err
	}
	err := mutateOrFail(domain.EntityBalance, 0, func() error {
		return s.balanceRepo.HardDeleteByCustomerID(ctx, customerID)
	})
	if err != nil {
		return fmt.Errorf("hard deleting balance: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
)

type TransactionService struct {
	uow             uow.UOW
	balanceRepo     BalanceRepository
	transactionRepo TransactionRepository
}

func NewTransactionService(u uow.UOW) (*TransactionService, error) {
	balanceRepo, err := repoOf[BalanceRepository](u, repoargs.BalanceRepoName)
	if err != nil {
		return nil, err
	}
	transactionRepo, err := repoOf[TransactionRepository](u, repoargs.TransactionRepoName)
	if err != nil {
		return nil, err
	}
	return &TransactionService{
		uow:             u,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
	}, nil
}

func (s *TransactionService) List(
	ctx context.Context,
	caller domain.Caller,
	ref domain.BalanceRef,
) ([]domain.Transaction, error) {
	if err := domain.Authorize(caller, ref.CustomerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	if _, err := s.gateBalance(ctx, s.balanceRepo, ref); err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.List(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return transactions, nil
}

func (s *TransactionService) Get(
	ctx context.Context,
	caller domain.Caller,
	ref domain.BalanceRef,
	id int64,
) (*domain.Transaction, error) {
	if err := domain.Authorize(caller, ref.CustomerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	if _, err := s.gateBalance(ctx, s.balanceRepo, ref); err != nil {
		return nil, err
	}
	return fetchOrFail(domain.EntityTransaction, id, func() (*domain.Transaction, error) {
		return s.transactionRepo.FindByID(ctx, ref, id)
	})
}

// Create проводит пополнение или списание по балансу. Строка баланса блокируется на время транзакции,
// списание сверх остатка дает domain.ErrInsufficientBalance без изменений в базе.
func (s *TransactionService) Create(
	ctx context.Context,
	caller domain.Caller,
	ref domain.BalanceRef,
	entry domain.LedgerEntry,
) (*domain.Transaction, *domain.Balance, error) {
	if err := domain.Authorize(caller, ref.CustomerID, domain.RoleUser); err != nil {
		return nil, nil, err
	}
	if err := entry.Validate(); err != nil {
		return nil, nil, err
	}

	var transaction *domain.Transaction
	var balance *domain.Balance
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		balances, err := repoFrom[BalanceRepository](tx, repoargs.BalanceRepoName)
		if err != nil {
			return err
		}
		transactions, err := repoFrom[TransactionRepository](tx, repoargs.TransactionRepoName)
		if err != nil {
			return err
		}

		current, err := s.lockBalance(c, balances, ref)
		if err != nil {
			return err
		}
		total, err := domain.ApplyEntry(current.Total, entry)
		if err != nil {
			return err //nolint:wrapcheck
		}

		transaction, err = transactions.Create(c, repoargs.CreateTransaction{
			Ref:    ref,
			Type:   entry.Type,
			Amount: entry.Amount,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		balance, err = balances.SetTotal(c, repoargs.SetBalanceTotal{
			BalanceID: current.ID,
			Total:     total,
			ActorID:   caller.ID,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("creating transaction: %w", txErr)
	}
	return transaction, balance, nil
}

// Replace полностью заменяет тип и сумму транзакции, пересчитывая баланс.
func (s *TransactionService) Replace(
	ctx context.Context,
	caller domain.Caller,
	ref domain.BalanceRef,
	id int64,
	entry domain.LedgerEntry,
) (*domain.Transaction, *domain.Balance, error) {
	return s.Patch(ctx, caller, ref, id, domain.TransactionPatch{Type: &entry.Type, Amount: &entry.Amount})
}

// Patch меняет переданные поля транзакции. Эффект старой проводки откатывается и применяется новая,
// обе строки сохраняются в одной транзакции.
func (s *TransactionService) Patch(
	ctx context.Context,
	caller domain.Caller,
	ref domain.BalanceRef,
	id int64,
	patch domain.TransactionPatch,
) (*domain.Transaction, *domain.Balance, error) {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return nil, nil, err
	}
	if patch.IsEmpty() {
		return nil, nil, domain.ErrEmptyPatch
	}

	var transaction *domain.Transaction
	var balance *domain.Balance
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		balances, err := repoFrom[BalanceRepository](tx, repoargs.BalanceRepoName)
		if err != nil {
			return err
		}
		transactions, err := repoFrom[TransactionRepository](tx, repoargs.TransactionRepoName)
		if err != nil {
			return err
		}

		current, err := s.lockBalance(c, balances, ref)
		if err != nil {
			return err
		}
		old, err := fetchOrFail(domain.EntityTransaction, id, func() (*domain.Transaction, error) {
			return transactions.FindByID(c, ref, id)
		})
		if err != nil {
			return err
		}

		total, entry, err := domain.Reconcile(current.Total, old.Entry(), patch)
		if err != nil {
			return err //nolint:wrapcheck
		}

		transaction, err = transactions.Update(c, ref, id, entry, caller.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		balance, err = balances.SetTotal(c, repoargs.SetBalanceTotal{
			BalanceID: current.ID,
			Total:     total,
			ActorID:   caller.ID,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("updating transaction: %w", txErr)
	}
	return transaction, balance, nil
}

// SoftDelete скрывает транзакцию. Эффект на баланс не откатывается.
func (s *TransactionService) SoftDelete(ctx context.Context, caller domain.Caller, ref domain.BalanceRef, id int64) error {
	if err := domain.Authorize(caller, ref.CustomerID, domain.RoleAdmin, domain.RoleUser); err != nil {
		return err
	}
	if _, err := s.gateBalance(ctx, s.balanceRepo, ref); err != nil {
		return err
	}
	err := mutateOrFail(domain.EntityTransaction, id, func() error {
		return s.transactionRepo.SoftDelete(ctx, ref, id, caller.ID)
	})
	if err != nil {
		return fmt.Errorf("soft deleting transaction: %w", err)
	}
	return nil
}

// HardDelete удаляет строку транзакции. Эффект на баланс не откатывается.
func (s *TransactionService) HardDelete(ctx context.Context, caller domain.Caller, ref domain.BalanceRef, id int64) error {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.gateBalance(ctx, s.balanceRepo, ref); err != nil {
		return err
	}
	err := mutateOrFail(domain.EntityTransaction, id, func() error {
		return s.transactionRepo.HardDelete(ctx, ref, id)
	})
	if err != nil {
		return fmt.Errorf("hard deleting transaction: %w", err)
	}
	return nil
}

func (s *TransactionService) gateBalance(
	ctx context.Context,
	balances BalanceRepository,
	ref domain.BalanceRef,
) (*domain.Balance, error) {
	return fetchOrFail(domain.EntityBalance, ref.BalanceID, func() (*domain.Balance, error) {
		return balances.FindByRef(ctx, ref)
	})
}

func (s *TransactionService) lockBalance(
	ctx context.Context,
	balances BalanceRepository,
	ref domain.BalanceRef,
) (*domain.Balance, error) {
	return fetchOrFail(domain.EntityBalance, ref.BalanceID, func() (*domain.Balance, error) {
		return balances.LockByRef(ctx, ref)
	})
}

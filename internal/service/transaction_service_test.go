package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/internal/service/mocks"
	"github.com/fsdevblog/storeledger/pkg/uow"
	uowmocks "github.com/fsdevblog/storeledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockBalanceRepo *mocks.MockBalanceRepository
	mockTxRepo      *mocks.MockTransactionRepository
	service         *TransactionService

	ref   domain.BalanceRef
	owner domain.Caller
	admin domain.Caller
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockBalanceRepo = mocks.NewMockBalanceRepository(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockTransactionRepository(s.mockCtrl)

	s.ref = domain.BalanceRef{CustomerID: 7, BalanceID: 3}
	s.owner = domain.Caller{ID: 7, Role: domain.RoleUser}
	s.admin = domain.Caller{ID: 1, Role: domain.RoleAdmin}

	// Репозитории вне транзакции, запрашиваются при инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.BalanceRepoName)).
		Return(s.mockBalanceRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()

	// Те же моки внутри транзакции.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.BalanceRepoName)).
		Return(s.mockBalanceRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()

	var err error
	s.service, err = NewTransactionService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TransactionServiceTestSuite) balance(total int64) *domain.Balance {
	return &domain.Balance{ID: s.ref.BalanceID, CustomerID: s.ref.CustomerID, Total: decimal.NewFromInt(total)}
}

func (s *TransactionServiceTestSuite) TestCreate_Deposit() {
	entry := domain.LedgerEntry{Type: domain.TransactionDeposit, Amount: decimal.RequireFromString("50.25")}

	s.mockBalanceRepo.EXPECT().LockByRef(gomock.Any(), s.ref).Return(s.balance(100), nil)
	s.mockTxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(s.ref, args.Ref)
			s.Equal(domain.TransactionDeposit, args.Type)
			s.True(entry.Amount.Equal(args.Amount))
			return &domain.Transaction{ID: 11, CustomerID: 7, BalanceID: 3, Type: args.Type, Amount: args.Amount}, nil
		})
	s.mockBalanceRepo.EXPECT().SetTotal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.SetBalanceTotal) (*domain.Balance, error) {
			s.Equal(s.ref.BalanceID, args.BalanceID)
			s.Equal(s.owner.ID, args.ActorID)
			s.Equal("150.25", args.Total.StringFixed(2))
			return &domain.Balance{ID: args.BalanceID, CustomerID: 7, Total: args.Total}, nil
		})

	tx, balance, err := s.service.Create(context.Background(), s.owner, s.ref, entry)
	s.Require().NoError(err)
	s.Equal(int64(11), tx.ID)
	s.Equal("150.25", balance.Total.StringFixed(2))
}

func (s *TransactionServiceTestSuite) TestCreate_Rejected() {
	cases := []struct {
		name    string
		caller  domain.Caller
		entry   domain.LedgerEntry
		lock    bool
		wantErr error
	}{
		{
			name:    "overdraft leaves balance untouched",
			caller:  s.owner,
			entry:   domain.LedgerEntry{Type: domain.TransactionWithdraw, Amount: decimal.NewFromInt(101)},
			lock:    true,
			wantErr: domain.ErrInsufficientBalance,
		},
		{
			name:    "other customer",
			caller:  domain.Caller{ID: 8, Role: domain.RoleUser},
			entry:   domain.LedgerEntry{Type: domain.TransactionDeposit, Amount: decimal.NewFromInt(1)},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "admin cannot create",
			caller:  s.admin,
			entry:   domain.LedgerEntry{Type: domain.TransactionDeposit, Amount: decimal.NewFromInt(1)},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "three decimal places",
			caller:  s.owner,
			entry:   domain.LedgerEntry{Type: domain.TransactionDeposit, Amount: decimal.RequireFromString("1.005")},
			wantErr: domain.ErrBadRequest,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.lock {
				// Create и SetTotal не ожидаются: любой их вызов провалит тест.
				s.mockBalanceRepo.EXPECT().LockByRef(gomock.Any(), s.ref).Return(s.balance(100), nil)
			}
			_, _, err := s.service.Create(context.Background(), tc.caller, s.ref, tc.entry)
			s.Require().ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *TransactionServiceTestSuite) TestCreate_BalanceNotFound() {
	s.mockBalanceRepo.EXPECT().LockByRef(gomock.Any(), s.ref).Return(nil, domain.ErrRecordNotFound)

	entry := domain.LedgerEntry{Type: domain.TransactionDeposit, Amount: decimal.NewFromInt(5)}
	_, _, err := s.service.Create(context.Background(), s.owner, s.ref, entry)

	var nf *domain.NotFoundError
	s.Require().ErrorAs(err, &nf)
	s.Equal(domain.EntityBalance, nf.Entity)
	s.Equal(s.ref.BalanceID, nf.ID)
}

func (s *TransactionServiceTestSuite) TestPatch_DepositToWithdraw() {
	old := &domain.Transaction{
		ID:         5,
		CustomerID: s.ref.CustomerID,
		BalanceID:  s.ref.BalanceID,
		Type:       domain.TransactionDeposit,
		Amount:     decimal.NewFromInt(100),
	}
	withdraw := domain.TransactionWithdraw
	amount := decimal.NewFromInt(30)

	s.mockBalanceRepo.EXPECT().LockByRef(gomock.Any(), s.ref).Return(s.balance(150), nil)
	s.mockTxRepo.EXPECT().FindByID(gomock.Any(), s.ref, old.ID).Return(old, nil)
	s.mockTxRepo.EXPECT().Update(gomock.Any(), s.ref, old.ID, gomock.Any(), s.admin.ID).
		DoAndReturn(func(
			_ context.Context,
			_ domain.BalanceRef,
			id int64,
			entry domain.LedgerEntry,
			_ int64,
		) (*domain.Transaction, error) {
			s.Equal(domain.TransactionWithdraw, entry.Type)
			s.True(amount.Equal(entry.Amount))
			return &domain.Transaction{ID: id, Type: entry.Type, Amount: entry.Amount}, nil
		})
	s.mockBalanceRepo.EXPECT().SetTotal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.SetBalanceTotal) (*domain.Balance, error) {
			// 150 - 100 (откат) - 30 (новая проводка).
			s.Equal("20.00", args.Total.StringFixed(2))
			return &domain.Balance{ID: args.BalanceID, Total: args.Total}, nil
		})

	tx, balance, err := s.service.Patch(context.Background(), s.admin, s.ref, old.ID, domain.TransactionPatch{
		Type:   &withdraw,
		Amount: &amount,
	})
	s.Require().NoError(err)
	s.Equal(domain.TransactionWithdraw, tx.Type)
	s.Equal("20.00", balance.Total.StringFixed(2))
}

func (s *TransactionServiceTestSuite) TestPatch_ReverseWouldOverdraw() {
	old := &domain.Transaction{ID: 5, Type: domain.TransactionDeposit, Amount: decimal.NewFromInt(100)}
	amount := decimal.NewFromInt(10)

	// Депозит уже потрачен: на балансе осталось 40.
	s.mockBalanceRepo.EXPECT().LockByRef(gomock.Any(), s.ref).Return(s.balance(40), nil)
	s.mockTxRepo.EXPECT().FindByID(gomock.Any(), s.ref, old.ID).Return(old, nil)

	_, _, err := s.service.Patch(context.Background(), s.admin, s.ref, old.ID, domain.TransactionPatch{Amount: &amount})
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
}

func (s *TransactionServiceTestSuite) TestPatch_Rejected() {
	amount := decimal.NewFromInt(10)
	cases := []struct {
		name    string
		caller  domain.Caller
		patch   domain.TransactionPatch
		wantErr error
	}{
		{name: "empty patch", caller: s.admin, patch: domain.TransactionPatch{}, wantErr: domain.ErrEmptyPatch},
		{name: "user cannot edit", caller: s.owner, patch: domain.TransactionPatch{Amount: &amount}, wantErr: domain.ErrForbidden},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, _, err := s.service.Patch(context.Background(), tc.caller, s.ref, 5, tc.patch)
			s.Require().ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *TransactionServiceTestSuite) TestGet_NotFound() {
	s.mockBalanceRepo.EXPECT().FindByRef(gomock.Any(), s.ref).Return(s.balance(0), nil)
	s.mockTxRepo.EXPECT().FindByID(gomock.Any(), s.ref, int64(42)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Get(context.Background(), s.owner, s.ref, 42)

	var nf *domain.NotFoundError
	s.Require().True(errors.As(err, &nf))
	s.Equal("transaction with id 42 was not found", nf.Error())
}

func (s *TransactionServiceTestSuite) TestSoftDelete_KeepsBalance() {
	s.mockBalanceRepo.EXPECT().FindByRef(gomock.Any(), s.ref).Return(s.balance(10), nil)
	s.mockTxRepo.EXPECT().SoftDelete(gomock.Any(), s.ref, int64(5), s.owner.ID).Return(nil)

	s.Require().NoError(s.service.SoftDelete(context.Background(), s.owner, s.ref, 5))
}

package service

import (
	"context"
	"io"
	"testing"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/internal/service/mocks"
	"github.com/fsdevblog/storeledger/pkg/uow"
	uowmocks "github.com/fsdevblog/storeledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type OrderItemServiceTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockUOW           *uowmocks.MockUOW
	mockTX            *uowmocks.MockTX
	mockCustomerRepo  *mocks.MockCustomerRepository
	mockBalanceRepo   *mocks.MockBalanceRepository
	mockItemRepo      *mocks.MockItemRepository
	mockOrderRepo     *mocks.MockOrderRepository
	mockOrderItemRepo *mocks.MockOrderItemRepository
	mockCache         *mocks.MockCacher
	service           *OrderItemService

	ref   domain.OrderRef
	admin domain.Caller
}

func TestOrderItemServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderItemServiceTestSuite))
}

func (s *OrderItemServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockCustomerRepo = mocks.NewMockCustomerRepository(s.mockCtrl)
	s.mockBalanceRepo = mocks.NewMockBalanceRepository(s.mockCtrl)
	s.mockItemRepo = mocks.NewMockItemRepository(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockOrderItemRepo = mocks.NewMockOrderItemRepository(s.mockCtrl)
	s.mockCache = mocks.NewMockCacher(s.mockCtrl)

	s.ref = domain.OrderRef{CustomerID: 7, OrderID: 1}
	s.admin = domain.Caller{ID: 1, Role: domain.RoleAdmin}

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.CustomerRepoName:  s.mockCustomerRepo,
		repoargs.BalanceRepoName:   s.mockBalanceRepo,
		repoargs.ItemRepoName:      s.mockItemRepo,
		repoargs.OrderRepoName:     s.mockOrderRepo,
		repoargs.OrderItemRepoName: s.mockOrderItemRepo,
	}
	for name, repo := range repos {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()

	// Клиент существует во всех кейсах.
	s.mockCustomerRepo.EXPECT().FindByID(gomock.Any(), s.ref.CustomerID).
		Return(&domain.Customer{ID: s.ref.CustomerID, Role: domain.RoleUser}, nil).AnyTimes()
	s.mockCache.EXPECT().Delete(gomock.Any(), ItemsListCacheKey).Return(nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	var err error
	s.service, err = NewOrderItemService(s.mockUOW, s.mockCache, l)
	s.Require().NoError(err)
}

func (s *OrderItemServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OrderItemServiceTestSuite) order(method domain.PaymentMethod) *domain.Order {
	return &domain.Order{ID: s.ref.OrderID, CustomerID: s.ref.CustomerID, PaymentMethod: method, Total: decimal.Zero}
}

func (s *OrderItemServiceTestSuite) TestCreate_ReservesStockThenOutOfStock() {
	price := decimal.RequireFromString("10.00")
	args := OrderItemArgs{ItemID: 2, Quantity: 5}

	s.mockOrderRepo.EXPECT().LockByID(gomock.Any(), s.ref).Return(s.order(domain.PaymentCash), nil).Times(2)
	// Первый вызов видит 5 единиц на складе, второй уже 0.
	s.mockItemRepo.EXPECT().LockByID(gomock.Any(), args.ItemID).
		Return(&domain.Item{ID: 2, Quantity: 5, SellingPrice: price}, nil).Times(1)
	s.mockItemRepo.EXPECT().LockByID(gomock.Any(), args.ItemID).
		Return(&domain.Item{ID: 2, Quantity: 0, SellingPrice: price}, nil).Times(1)

	s.mockOrderItemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a repoargs.CreateOrderItem) (*domain.OrderItem, error) {
			s.Equal(s.ref.OrderID, a.OrderID)
			s.Equal(int64(5), a.Quantity)
			s.True(price.Equal(a.UnitPrice))
			return &domain.OrderItem{ID: 9, OrderID: a.OrderID, ItemID: a.ItemID, Quantity: a.Quantity, UnitPrice: a.UnitPrice}, nil
		})
	s.mockItemRepo.EXPECT().SetQuantity(gomock.Any(), int64(2), int64(0), s.admin.ID).Return(nil)
	s.mockOrderRepo.EXPECT().SetTotal(gomock.Any(), s.ref.OrderID, gomock.Any(), s.admin.ID).
		DoAndReturn(func(_ context.Context, _ int64, total decimal.Decimal, _ int64) error {
			s.Equal("50.00", total.StringFixed(2))
			return nil
		})

	orderItem, err := s.service.Create(context.Background(), s.admin, s.ref, args)
	s.Require().NoError(err)
	s.Equal("50.00", orderItem.Subtotal().StringFixed(2))

	_, err = s.service.Create(context.Background(), s.admin, s.ref, args)
	s.Require().ErrorIs(err, domain.ErrOutOfStock)
}

func (s *OrderItemServiceTestSuite) TestCreate_InsufficientBalanceSetsStoreNotes() {
	args := OrderItemArgs{ItemID: 2, Quantity: 3}

	s.mockOrderRepo.EXPECT().LockByID(gomock.Any(), s.ref).Return(s.order(domain.PaymentBalance), nil)
	s.mockItemRepo.EXPECT().LockByID(gomock.Any(), args.ItemID).
		Return(&domain.Item{ID: 2, Quantity: 10, SellingPrice: decimal.NewFromInt(10)}, nil)
	s.mockBalanceRepo.EXPECT().LockByCustomerID(gomock.Any(), s.ref.CustomerID).
		Return(&domain.Balance{ID: 4, CustomerID: 7, Total: decimal.NewFromInt(20)}, nil)
	// Пометка пишется вне откаченной транзакции через основной репозиторий заказов.
	s.mockOrderRepo.EXPECT().SetStoreNotes(gomock.Any(), s.ref.OrderID, domain.StoreNoteInsufficientBalance).
		Return(nil).Times(1)

	_, err := s.service.Create(context.Background(), s.admin, s.ref, args)
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
}

func (s *OrderItemServiceTestSuite) TestCreate_DebitsBalance() {
	args := OrderItemArgs{ItemID: 2, Quantity: 2}

	s.mockOrderRepo.EXPECT().LockByID(gomock.Any(), s.ref).Return(s.order(domain.PaymentBalance), nil)
	s.mockItemRepo.EXPECT().LockByID(gomock.Any(), args.ItemID).
		Return(&domain.Item{ID: 2, Quantity: 10, SellingPrice: decimal.RequireFromString("7.50")}, nil)
	s.mockBalanceRepo.EXPECT().LockByCustomerID(gomock.Any(), s.ref.CustomerID).
		Return(&domain.Balance{ID: 4, CustomerID: 7, Total: decimal.NewFromInt(20)}, nil)
	s.mockBalanceRepo.EXPECT().SetTotal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a repoargs.SetBalanceTotal) (*domain.Balance, error) {
			s.Equal(int64(4), a.BalanceID)
			s.Equal("5.00", a.Total.StringFixed(2))
			return &domain.Balance{ID: 4, Total: a.Total}, nil
		})
	s.mockOrderItemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.OrderItem{ID: 9, OrderID: 1, ItemID: 2, Quantity: 2}, nil)
	s.mockItemRepo.EXPECT().SetQuantity(gomock.Any(), int64(2), int64(8), s.admin.ID).Return(nil)
	s.mockOrderRepo.EXPECT().SetTotal(gomock.Any(), s.ref.OrderID, gomock.Any(), s.admin.ID).Return(nil)

	_, err := s.service.Create(context.Background(), s.admin, s.ref, args)
	s.Require().NoError(err)
}

func (s *OrderItemServiceTestSuite) TestPatch_SameItemQuantity() {
	old := &domain.OrderItem{ID: 9, OrderID: s.ref.OrderID, ItemID: 2, Quantity: 3}
	five := int64(5)
	patch := domain.OrderItemPatch{Quantity: &five}

	cases := []struct {
		name      string
		stock     int64
		wantStock int64
		wantErr   error
	}{
		{name: "fits restored stock", stock: 2, wantStock: 0},
		{name: "plenty of stock", stock: 10, wantStock: 8},
		{name: "exceeds restored stock", stock: 1, wantErr: domain.ErrQuantityExceedsStock},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), s.ref).Return(s.order(domain.PaymentCash), nil)
			s.mockOrderItemRepo.EXPECT().FindByID(gomock.Any(), s.ref.OrderID, old.ID).Return(old, nil)
			s.mockItemRepo.EXPECT().LockByID(gomock.Any(), old.ItemID).
				Return(&domain.Item{ID: old.ItemID, Quantity: tc.stock}, nil)
			if tc.wantErr == nil {
				s.mockItemRepo.EXPECT().SetQuantity(gomock.Any(), old.ItemID, tc.wantStock, s.admin.ID).Return(nil)
				s.mockOrderItemRepo.EXPECT().Update(gomock.Any(), s.ref.OrderID, old.ID, patch, s.admin.ID).
					Return(&domain.OrderItem{ID: old.ID, ItemID: old.ItemID, Quantity: five}, nil)
			}

			res, err := s.service.Patch(context.Background(), s.admin, s.ref, old.ID, patch)
			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(five, res.Quantity)
		})
	}
}

func (s *OrderItemServiceTestSuite) TestPatch_MovesToAnotherItem() {
	old := &domain.OrderItem{ID: 9, OrderID: s.ref.OrderID, ItemID: 4, Quantity: 3}
	newItemID := int64(2)
	patch := domain.OrderItemPatch{ItemID: &newItemID}

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), s.ref).Return(s.order(domain.PaymentCash), nil)
	s.mockOrderItemRepo.EXPECT().FindByID(gomock.Any(), s.ref.OrderID, old.ID).Return(old, nil)
	// Товары блокируются по возрастанию id.
	gomock.InOrder(
		s.mockItemRepo.EXPECT().LockByID(gomock.Any(), int64(2)).Return(&domain.Item{ID: 2, Quantity: 3}, nil),
		s.mockItemRepo.EXPECT().LockByID(gomock.Any(), int64(4)).Return(&domain.Item{ID: 4, Quantity: 1}, nil),
	)
	s.mockItemRepo.EXPECT().SetQuantity(gomock.Any(), int64(4), int64(4), s.admin.ID).Return(nil)
	s.mockItemRepo.EXPECT().SetQuantity(gomock.Any(), int64(2), int64(0), s.admin.ID).Return(nil)
	s.mockOrderItemRepo.EXPECT().Update(gomock.Any(), s.ref.OrderID, old.ID, patch, s.admin.ID).
		Return(&domain.OrderItem{ID: old.ID, ItemID: newItemID, Quantity: 3}, nil)

	res, err := s.service.Patch(context.Background(), s.admin, s.ref, old.ID, patch)
	s.Require().NoError(err)
	s.Equal(newItemID, res.ItemID)
}

func (s *OrderItemServiceTestSuite) TestPatch_UnchangedValuesSkipStock() {
	old := &domain.OrderItem{ID: 9, OrderID: s.ref.OrderID, ItemID: 2, Quantity: 3}
	same := old.Quantity
	patch := domain.OrderItemPatch{Quantity: &same}

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), s.ref).Return(s.order(domain.PaymentCash), nil)
	s.mockOrderItemRepo.EXPECT().FindByID(gomock.Any(), s.ref.OrderID, old.ID).Return(old, nil)
	s.mockOrderItemRepo.EXPECT().Update(gomock.Any(), s.ref.OrderID, old.ID, patch, s.admin.ID).Return(old, nil)

	_, err := s.service.Patch(context.Background(), s.admin, s.ref, old.ID, patch)
	s.Require().NoError(err)
}

func (s *OrderItemServiceTestSuite) TestPatch_Empty() {
	_, err := s.service.Patch(context.Background(), s.admin, s.ref, 9, domain.OrderItemPatch{})
	s.Require().ErrorIs(err, domain.ErrEmptyPatch)
	s.Require().ErrorIs(err, domain.ErrBadRequest)
}

func (s *OrderItemServiceTestSuite) TestReplace_UsesTargetItemStock() {
	old := &domain.OrderItem{ID: 9, OrderID: s.ref.OrderID, ItemID: 2, Quantity: 3}
	args := OrderItemArgs{ItemID: 2, Quantity: 6}

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), s.ref).Return(s.order(domain.PaymentCash), nil).Times(2)
	s.mockOrderItemRepo.EXPECT().FindByID(gomock.Any(), s.ref.OrderID, old.ID).Return(old, nil).Times(2)
	s.mockItemRepo.EXPECT().LockByID(gomock.Any(), args.ItemID).Return(&domain.Item{ID: 2, Quantity: 4}, nil)
	s.mockItemRepo.EXPECT().SetQuantity(gomock.Any(), int64(2), int64(1), s.admin.ID).Return(nil)
	s.mockOrderItemRepo.EXPECT().Update(gomock.Any(), s.ref.OrderID, old.ID, gomock.Any(), s.admin.ID).
		Return(&domain.OrderItem{ID: 9, ItemID: 2, Quantity: 6}, nil)

	_, err := s.service.Replace(context.Background(), s.admin, s.ref, old.ID, args)
	s.Require().NoError(err)

	// Восстановленный остаток 2+3 меньше 6.
	s.mockItemRepo.EXPECT().LockByID(gomock.Any(), args.ItemID).Return(&domain.Item{ID: 2, Quantity: 2}, nil)
	_, err = s.service.Replace(context.Background(), s.admin, s.ref, old.ID, args)
	s.Require().ErrorIs(err, domain.ErrQuantityExceedsStock)
}

func (s *OrderItemServiceTestSuite) TestGate() {
	s.Run("user is not allowed", func() {
		_, err := s.service.Create(context.Background(), domain.Caller{ID: 7, Role: domain.RoleUser}, s.ref,
			OrderItemArgs{ItemID: 2, Quantity: 1})
		s.Require().ErrorIs(err, domain.ErrForbidden)
	})
	s.Run("order not found", func() {
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), s.ref).Return(nil, domain.ErrRecordNotFound)
		_, err := s.service.Get(context.Background(), domain.Caller{ID: 7, Role: domain.RoleUser}, s.ref, 9)

		var nf *domain.NotFoundError
		s.Require().ErrorAs(err, &nf)
		s.Equal(domain.EntityOrder, nf.Entity)
	})
	s.Run("order item not found", func() {
		s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), s.ref).Return(s.order(domain.PaymentCash), nil)
		s.mockOrderItemRepo.EXPECT().FindByID(gomock.Any(), s.ref.OrderID, int64(9)).
			Return(nil, domain.ErrRecordNotFound)
		_, err := s.service.Get(context.Background(), s.admin, s.ref, 9)
		s.Require().EqualError(err, "order item with id 9 was not found")
	})
}

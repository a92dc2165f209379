package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/internal/service/mocks"
	"github.com/fsdevblog/storeledger/pkg/uow"
	uowmocks "github.com/fsdevblog/storeledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *mocks.MockCustomerRepository
	mockOrderRepo    *mocks.MockOrderRepository
	service          *OrderService
	admin            domain.Caller
	user             domain.Caller
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	mockUOW := uowmocks.NewMockUOW(mockCtrl)
	s.mockCustomerRepo = mocks.NewMockCustomerRepository(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)
	s.admin = domain.Caller{ID: 1, Role: domain.RoleAdmin}
	s.user = domain.Caller{ID: 2, Role: domain.RoleUser}

	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(s.mockCustomerRepo, nil).AnyTimes()
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	var err error
	s.service, err = NewOrderService(mockUOW)
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) expectCustomer(id int64) {
	s.mockCustomerRepo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Customer{ID: id}, nil)
}

func (s *OrderServiceTestSuite) TestCreate() {
	s.Run("defaults to cash", func() {
		s.expectCustomer(s.user.ID)
		s.mockOrderRepo.EXPECT().Create(gomock.Any(), repoargs.CreateOrder{
			CustomerID:    s.user.ID,
			PaymentMethod: domain.PaymentCash,
			Note:          "by the door",
		}).Return(&domain.Order{ID: 5, CustomerID: s.user.ID, PaymentMethod: domain.PaymentCash}, nil)

		order, err := s.service.Create(context.Background(), s.user, s.user.ID, OrderArgs{Note: "by the door"})
		s.Require().NoError(err)
		s.Equal(int64(5), order.ID)
	})

	s.Run("admin cannot create", func() {
		_, err := s.service.Create(context.Background(), s.admin, s.user.ID, OrderArgs{})
		s.Require().ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("other customer", func() {
		_, err := s.service.Create(context.Background(), s.user, 3, OrderArgs{})
		s.Require().ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("unknown payment method", func() {
		s.expectCustomer(s.user.ID)
		_, err := s.service.Create(context.Background(), s.user, s.user.ID, OrderArgs{PaymentMethod: "card"})
		s.Require().ErrorIs(err, domain.ErrBadRequest)
	})
}

func (s *OrderServiceTestSuite) TestGetGatesCustomer() {
	s.mockCustomerRepo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Get(context.Background(), s.admin, domain.OrderRef{CustomerID: 9, OrderID: 1})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	s.Equal("customer with id 9 was not found", err.Error())
}

func (s *OrderServiceTestSuite) TestPatch() {
	ref := domain.OrderRef{CustomerID: s.user.ID, OrderID: 4}

	s.Run("empty patch", func() {
		s.expectCustomer(s.user.ID)
		_, err := s.service.Patch(context.Background(), s.user, ref, domain.OrderPatch{})
		s.Require().ErrorIs(err, domain.ErrEmptyPatch)
	})

	s.Run("note only", func() {
		note := "leave at reception"
		patch := domain.OrderPatch{Note: &note}
		s.expectCustomer(s.user.ID)
		s.mockOrderRepo.EXPECT().Update(gomock.Any(), ref, patch, s.user.ID).
			Return(&domain.Order{ID: 4, Note: note}, nil)

		order, err := s.service.Patch(context.Background(), s.user, ref, patch)
		s.Require().NoError(err)
		s.Equal(note, order.Note)
	})

	s.Run("missing order", func() {
		note := "x"
		s.expectCustomer(s.user.ID)
		s.mockOrderRepo.EXPECT().Update(gomock.Any(), ref, gomock.Any(), s.user.ID).
			Return(nil, domain.ErrRecordNotFound)

		_, err := s.service.Patch(context.Background(), s.user, ref, domain.OrderPatch{Note: &note})
		var notFound *domain.NotFoundError
		s.Require().ErrorAs(err, &notFound)
		s.Equal(domain.EntityOrder, notFound.Entity)
	})
}

func (s *OrderServiceTestSuite) TestHardDeleteAdminOnly() {
	ref := domain.OrderRef{CustomerID: s.user.ID, OrderID: 4}

	err := s.service.HardDelete(context.Background(), s.user, ref)
	s.Require().ErrorIs(err, domain.ErrForbidden)

	s.expectCustomer(s.user.ID)
	s.mockOrderRepo.EXPECT().HardDelete(gomock.Any(), ref).Return(nil)
	s.Require().NoError(s.service.HardDelete(context.Background(), s.admin, ref))
}

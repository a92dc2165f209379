package service

import (
	"context"
	"errors"
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

type ItemServiceTestSuite struct {
	suite.Suite
	mockItemRepo *mocks.MockItemRepository
	mockCache    *mocks.MockCacher
	service      *ItemService
	user         domain.Caller
	admin        domain.Caller
}

func TestItemServiceSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}

func (s *ItemServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	mockUOW := uowmocks.NewMockUOW(mockCtrl)
	s.mockItemRepo = mocks.NewMockItemRepository(mockCtrl)
	s.mockCache = mocks.NewMockCacher(mockCtrl)
	s.user = domain.Caller{ID: 7, Role: domain.RoleUser}
	s.admin = domain.Caller{ID: 1, Role: domain.RoleAdmin}

	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ItemRepoName)).
		Return(s.mockItemRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	var err error
	s.service, err = NewItemService(mockUOW, s.mockCache, l)
	s.Require().NoError(err)
}

func (s *ItemServiceTestSuite) TestList() {
	items := []domain.Item{{ID: 1, Name: "tea", Quantity: 3, SellingPrice: decimal.NewFromInt(2)}}

	s.Run("cache hit", func() {
		s.mockCache.EXPECT().GetJSON(gomock.Any(), ItemsListCacheKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
				*dest.(*[]domain.Item) = items
				return true, nil
			})

		res, err := s.service.List(context.Background(), s.user)
		s.Require().NoError(err)
		s.Equal(items, res)
	})
	s.Run("cache miss", func() {
		s.mockCache.EXPECT().GetJSON(gomock.Any(), ItemsListCacheKey, gomock.Any()).Return(false, nil)
		s.mockItemRepo.EXPECT().List(gomock.Any()).Return(items, nil)
		s.mockCache.EXPECT().SetJSON(gomock.Any(), ItemsListCacheKey, items).Return(nil)

		res, err := s.service.List(context.Background(), s.user)
		s.Require().NoError(err)
		s.Len(res, 1)
	})
	s.Run("cache failure falls back to storage", func() {
		s.mockCache.EXPECT().GetJSON(gomock.Any(), ItemsListCacheKey, gomock.Any()).
			Return(false, errors.New("connection refused"))
		s.mockItemRepo.EXPECT().List(gomock.Any()).Return(items, nil)
		s.mockCache.EXPECT().SetJSON(gomock.Any(), ItemsListCacheKey, items).Return(errors.New("connection refused"))

		res, err := s.service.List(context.Background(), s.user)
		s.Require().NoError(err)
		s.Equal(items, res)
	})
}

func (s *ItemServiceTestSuite) TestPatch() {
	price := decimal.RequireFromString("3.50")

	s.Run("user is not allowed", func() {
		_, err := s.service.Patch(context.Background(), s.user, 1, domain.ItemPatch{SellingPrice: &price})
		s.Require().ErrorIs(err, domain.ErrForbidden)
	})
	s.Run("negative stock", func() {
		qty := int64(-1)
		_, err := s.service.Patch(context.Background(), s.admin, 1, domain.ItemPatch{Quantity: &qty})
		s.Require().ErrorIs(err, domain.ErrBadRequest)
	})
	s.Run("invalidates cache", func() {
		s.mockItemRepo.EXPECT().Update(gomock.Any(), int64(1), gomock.Any(), s.admin.ID).
			Return(&domain.Item{ID: 1, SellingPrice: price}, nil)
		s.mockCache.EXPECT().Delete(gomock.Any(), ItemsListCacheKey).Return(nil)

		item, err := s.service.Patch(context.Background(), s.admin, 1, domain.ItemPatch{SellingPrice: &price})
		s.Require().NoError(err)
		s.True(price.Equal(item.SellingPrice))
	})
	s.Run("not found", func() {
		s.mockItemRepo.EXPECT().Update(gomock.Any(), int64(2), gomock.Any(), s.admin.ID).
			Return(nil, domain.ErrRecordNotFound)

		_, err := s.service.Patch(context.Background(), s.admin, 2, domain.ItemPatch{SellingPrice: &price})
		s.Require().ErrorIs(err, domain.ErrRecordNotFound)
		s.Require().ErrorContains(err, "item with id 2 was not found")
	})
}

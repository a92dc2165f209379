package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ItemsListCacheKey ключ кэша каталога товаров.
const ItemsListCacheKey = "items:list"

type ItemService struct {
	itemRepo ItemRepository
	cache    Cacher
	l        *logrus.Logger
}

func NewItemService(u uow.UOW, cache Cacher, l *logrus.Logger) (*ItemService, error) {
	itemRepo, err := repoOf[ItemRepository](u, repoargs.ItemRepoName)
	if err != nil {
		return nil, err
	}
	return &ItemService{
		itemRepo: itemRepo,
		cache:    cache,
		l:        l,
	}, nil
}

type ItemArgs struct {
	Name         string
	Quantity     int64
	OrigPrice    decimal.Decimal
	SellingPrice decimal.Decimal
}

func (a ItemArgs) patch() domain.ItemPatch {
	return domain.ItemPatch{
		Name:         &a.Name,
		Quantity:     &a.Quantity,
		OrigPrice:    &a.OrigPrice,
		SellingPrice: &a.SellingPrice,
	}
}

// List отдает каталог из кэша, при промахе читает базу и кладет результат в кэш.
// Ошибки кэша не ломают запрос.
func (s *ItemService) List(ctx context.Context, caller domain.Caller) ([]domain.Item, error) {
	if err := domain.RequireRole(caller, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}

	var items []domain.Item
	hit, cacheErr := s.cache.GetJSON(ctx, ItemsListCacheKey, &items)
	if cacheErr != nil {
		s.l.WithError(cacheErr).Warn("reading items from cache")
	}
	if hit {
		return items, nil
	}

	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	if err = s.cache.SetJSON(ctx, ItemsListCacheKey, items); err != nil {
		s.l.WithError(err).Warn("writing items to cache")
	}
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, caller domain.Caller, id int64) (*domain.Item, error) {
	if err := domain.RequireRole(caller, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	return fetchOrFail(domain.EntityItem, id, func() (*domain.Item, error) {
		return s.itemRepo.FindByID(ctx, id)
	})
}

func (s *ItemService) Create(ctx context.Context, caller domain.Caller, args ItemArgs) (*domain.Item, error) {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validateItemPatch(args.patch()); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.Create(ctx, repoargs.CreateItem{
		Name:         args.Name,
		Quantity:     args.Quantity,
		OrigPrice:    args.OrigPrice,
		SellingPrice: args.SellingPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *ItemService) Replace(ctx context.Context, caller domain.Caller, id int64, args ItemArgs) (*domain.Item, error) {
	return s.Patch(ctx, caller, id, args.patch())
}

func (s *ItemService) Patch(
	ctx context.Context,
	caller domain.Caller,
	id int64,
	patch domain.ItemPatch,
) (*domain.Item, error) {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}
	if err := validateItemPatch(patch); err != nil {
		return nil, err
	}
	item, err := fetchOrFail(domain.EntityItem, id, func() (*domain.Item, error) {
		return s.itemRepo.Update(ctx, id, patch, caller.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *ItemService) SoftDelete(ctx context.Context, caller domain.Caller, id int64) error {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return err
	}
	if err := mutateOrFail(domain.EntityItem, id, func() error {
		return s.itemRepo.SoftDelete(ctx, id, caller.ID)
	}); err != nil {
		return fmt.Errorf("soft deleting item: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ItemService) HardDelete(ctx context.Context, caller domain.Caller, id int64) error {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return err
	}
	if err := mutateOrFail(domain.EntityItem, id, func() error {
		return s.itemRepo.HardDelete(ctx, id)
	}); err != nil {
		return fmt.Errorf("hard deleting item: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ItemService) invalidate(ctx context.Context) {
	invalidateItems(ctx, s.cache, s.l)
}

// invalidateItems сбрасывает кэш каталога после любого изменения остатков или цен.
func invalidateItems(ctx context.Context, cache Cacher, l *logrus.Logger) {
	if err := cache.Delete(ctx, ItemsListCacheKey); err != nil {
		l.WithError(err).Warn("invalidating items cache")
	}
}

func validateItemPatch(p domain.ItemPatch) error {
	if p.Name != nil && *p.Name == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return domain.NewValidationError("quantity", "must not be negative")
	}
	if p.OrigPrice != nil {
		if err := domain.ValidateAmount("orig_price", *p.OrigPrice); err != nil {
			return err
		}
	}
	if p.SellingPrice != nil {
		if err := domain.ValidateAmount("selling_price", *p.SellingPrice); err != nil {
			return err
		}
	}
	return nil
}

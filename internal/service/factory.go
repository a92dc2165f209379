package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/storeledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	CustomerService    *CustomerService
	BalanceService     *BalanceService
	TransactionService *TransactionService
	ItemService        *ItemService
	OrderService       *OrderService
	OrderItemService   *OrderItemService
}

type FactoryArgs struct {
	UOW       uow.UOW
	Hasher    PasswordHasher
	Cache     Cacher
	JWTSecret []byte
	JWTTTL    time.Duration
	Logger    *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	customerService, err := NewCustomerService(args.UOW, args.Hasher, args.JWTSecret, args.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	balanceService, err := NewBalanceService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	transactionService, err := NewTransactionService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	itemService, err := NewItemService(args.UOW, args.Cache, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	orderService, err := NewOrderService(args.UOW)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	orderItemService, err := NewOrderItemService(args.UOW, args.Cache, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	return &AppServices{
		CustomerService:    customerService,
		BalanceService:     balanceService,
		TransactionService: transactionService,
		ItemService:        itemService,
		OrderService:       orderService,
		OrderItemService:   orderItemService,
	}, nil
}

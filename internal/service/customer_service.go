package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/storeledger/internal/domain"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/internal/service/tokens"
	"github.com/fsdevblog/storeledger/pkg/uow"
)

const DefaultJWTTokenExpire = 24 * time.Hour

type CustomerService struct {
	uow          uow.UOW
	customerRepo CustomerRepository
	hasher       PasswordHasher
	jwtSecret    []byte
	jwtExpire    time.Duration
}

func NewCustomerService(
	u uow.UOW,
	hasher PasswordHasher,
	jwtSecret []byte,
	jwtExpire time.Duration,
) (*CustomerService, error) {
	customerRepo, err := repoOf[CustomerRepository](u, repoargs.CustomerRepoName)
	if err != nil {
		return nil, err
	}
	if jwtExpire <= 0 {
		jwtExpire = DefaultJWTTokenExpire
	}
	return &CustomerService{
		uow:          u,
		customerRepo: customerRepo,
		hasher:       hasher,
		jwtSecret:    jwtSecret,
		jwtExpire:    jwtExpire,
	}, nil
}

type CustomerArgs struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register создает клиента с ролью user и его нулевой баланс в одной транзакции.
// Если email занят, вернется domain.ErrEmailInUse.
func (s *CustomerService) Register(ctx context.Context, args CustomerArgs) (*domain.Customer, *domain.Balance, error) {
	customer, balance, err := s.create(ctx, args, domain.RoleUser)
	if err != nil {
		return nil, nil, fmt.Errorf("registering customer: %w", err)
	}
	return customer, balance, nil
}

// EnsureAdmin создает администратора, если клиента с таким email еще нет.
func (s *CustomerService) EnsureAdmin(ctx context.Context, args CustomerArgs) (*domain.Customer, error) {
	existing, err := s.customerRepo.FindByEmail(ctx, args.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("ensuring admin: %w", err)
	}
	customer, _, err := s.create(ctx, args, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("ensuring admin: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) create(
	ctx context.Context,
	args CustomerArgs,
	role domain.Role,
) (*domain.Customer, *domain.Balance, error) {
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, nil, hashErr //nolint:wrapcheck
	}

	var customer *domain.Customer
	var balance *domain.Balance
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		customers, err := repoFrom[CustomerRepository](tx, repoargs.CustomerRepoName)
		if err != nil {
			return err
		}
		balances, err := repoFrom[BalanceRepository](tx, repoargs.BalanceRepoName)
		if err != nil {
			return err
		}

		customer, err = customers.Create(c, repoargs.CreateCustomer{
			Email:     args.Email,
			Password:  password,
			FirstName: args.FirstName,
			LastName:  args.LastName,
			Role:      role,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				return domain.ErrEmailInUse
			}
			return err //nolint:wrapcheck
		}

		balance, err = balances.Create(c, customer.ID)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, nil, txErr
	}
	return customer, balance, nil
}

type LoginArgs struct {
	Email    string
	Password string
}

// Login проверяет пару email/пароль и выпускает jwt токен. Неверная пара дает domain.ErrInvalidCredentials.
func (s *CustomerService) Login(ctx context.Context, args LoginArgs) (*domain.Customer, string, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, args.Email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if !s.hasher.ComparePassword(args.Password, customer.Password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := tokens.GenerateCustomerJWT(customer.ID, customer.Role, s.jwtExpire, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	return customer, token, nil
}

func (s *CustomerService) List(ctx context.Context, caller domain.Caller) ([]domain.Customer, error) {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, caller domain.Caller, id int64) (*domain.Customer, error) {
	if err := domain.Authorize(caller, id, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	return fetchOrFail(domain.EntityCustomer, id, func() (*domain.Customer, error) {
		return s.customerRepo.FindByID(ctx, id)
	})
}

// Replace перезаписывает все поля клиента.
func (s *CustomerService) Replace(
	ctx context.Context,
	caller domain.Caller,
	id int64,
	args CustomerArgs,
) (*domain.Customer, error) {
	return s.Patch(ctx, caller, id, domain.CustomerPatch{
		Email:     &args.Email,
		Password:  &args.Password,
		FirstName: &args.FirstName,
		LastName:  &args.LastName,
	})
}

// Patch обновляет только переданные поля. Пустой патч дает domain.ErrEmptyPatch.
func (s *CustomerService) Patch(
	ctx context.Context,
	caller domain.Caller,
	id int64,
	patch domain.CustomerPatch,
) (*domain.Customer, error) {
	if err := domain.Authorize(caller, id, domain.RoleAdmin, domain.RoleUser); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}
	if patch.Password != nil {
		hash, err := s.hasher.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("updating customer: %w", err)
		}
		patch.Password = &hash
	}

	customer, err := fetchOrFail(domain.EntityCustomer, id, func() (*domain.Customer, error) {
		return s.customerRepo.Update(ctx, id, patch, caller.ID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrEmailInUse
		}
		return nil, fmt.Errorf("updating customer: %w", err)
	}
	return customer, nil
}

// SoftDelete мягко удаляет клиента и его баланс.
func (s *CustomerService) SoftDelete(ctx context.Context, caller domain.Caller, id int64) error {
	if err := domain.Authorize(caller, id, domain.RoleAdmin, domain.RoleUser); err != nil {
		return err
	}
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		customers, err := repoFrom[CustomerRepository](tx, repoargs.CustomerRepoName)
		if err != nil {
			return err
		}
		balances, err := repoFrom[BalanceRepository](tx, repoargs.BalanceRepoName)
		if err != nil {
			return err
		}
		if err = mutateOrFail(domain.EntityCustomer, id, func() error {
			return customers.SoftDelete(c, id, caller.ID)
		}); err != nil {
			return err
		}
		// баланс мог быть удален отдельно раньше.
		if err = balances.SoftDeleteByCustomerID(c, id, caller.ID); err != nil &&
			!errors.Is(err, domain.ErrRecordNotFound) {
			return err //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("soft deleting customer: %w", txErr)
	}
	return nil
}

func (s *CustomerService) HardDelete(ctx context.Context, caller domain.Caller, id int64) error {
	if err := domain.RequireRole(caller, domain.RoleAdmin); err != nil {
		return err
	}
	err := mutateOrFail(domain.EntityCustomer, id, func() error {
		return s.customerRepo.HardDelete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("hard deleting customer: %w", err)
	}
	return nil
}

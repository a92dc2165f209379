package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/storeledger/internal/cache"
	"github.com/fsdevblog/storeledger/internal/config"
	"github.com/fsdevblog/storeledger/internal/repository/pgrepo"
	"github.com/fsdevblog/storeledger/internal/repository/repoargs"
	"github.com/fsdevblog/storeledger/internal/service"
	"github.com/fsdevblog/storeledger/internal/service/psswd"
	"github.com/fsdevblog/storeledger/internal/transport/api"
	"github.com/fsdevblog/storeledger/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, pgrepo.ConnectArgs{
		DSN:           a.Config.DatabaseDSN,
		MigrationsDir: a.Config.MigrationsDir,
	}, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	itemsCache, closeCache, cacheErr := a.initCache(notifyCtx)
	if cacheErr != nil {
		return fmt.Errorf("app run: %s", cacheErr.Error())
	}
	defer closeCache()

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:       unitOfWork,
		Hasher:    psswd.Bcrypt{},
		Cache:     itemsCache,
		JWTSecret: []byte(a.Config.JWTSecret),
		JWTTTL:    a.Config.JWTTTL,
		Logger:    a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if adminErr := a.ensureAdmin(notifyCtx, services.CustomerService); adminErr != nil {
		return fmt.Errorf("app run: %s", adminErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		CustomerService:    services.CustomerService,
		BalanceService:     services.BalanceService,
		TransactionService: services.TransactionService,
		ItemService:        services.ItemService,
		OrderService:       services.OrderService,
		OrderItemService:   services.OrderItemService,
		JWTSecretKey:       []byte(a.Config.JWTSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initCache поднимает redis кеш каталога. Без REDIS_ADDR кеш отключен.
func (a *App) initCache(ctx context.Context) (service.Cacher, func(), error) {
	if a.Config.RedisAddr == "" {
		a.Logger.Info("redis address is not set, items cache disabled")
		return cache.Nop{}, func() {}, nil
	}

	rdb, err := cache.Connect(ctx, a.Config.RedisAddr, a.Config.RedisPassword, a.Config.RedisDB)
	if err != nil {
		return nil, nil, fmt.Errorf("init cache: %w", err)
	}
	closeFn := func() {
		if closeErr := rdb.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Warn("close redis client")
		}
	}
	return cache.NewRedis(rdb, a.Config.CacheTTL), closeFn, nil
}

// ensureAdmin заводит администратора из конфигурации, если он задан и еще не существует.
func (a *App) ensureAdmin(ctx context.Context, customers *service.CustomerService) error {
	if a.Config.AdminEmail == "" || a.Config.AdminPassword == "" {
		return nil
	}
	admin, err := customers.EnsureAdmin(ctx, service.CustomerArgs{
		Email:     a.Config.AdminEmail,
		Password:  a.Config.AdminPassword,
		FirstName: "admin",
		LastName:  "admin",
	})
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	a.Logger.WithField("customer_id", admin.ID).Info("admin account is ready")
	return nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.CustomerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCustomerRepository(dbtx)
		},
		repoargs.BalanceRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBalanceRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.ItemRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewItemRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.OrderItemRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderItemRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}

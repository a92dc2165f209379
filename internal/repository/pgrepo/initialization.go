package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	defaultMaxAttempts   = 30
	defaultRetryInterval = 3 * time.Second
)

type ConnectArgs struct {
	DSN           string
	MigrationsDir string
	// MaxConns 0 оставляет значение pgxpool по умолчанию.
	MaxConns int32
}

// Connect открывает пул соединений, повторяя попытки пока база недоступна, и применяет миграции.
func Connect(ctx context.Context, args ConnectArgs, l *logrus.Logger) (*pgxpool.Pool, error) {
	var attempts uint

	for {
		conn, connErr := newPostgresConnection(ctx, args)
		if connErr == nil {
			if err := postgresMigrate(args.MigrationsDir, args.DSN); err != nil {
				conn.Close()
				return nil, err
			}
			return conn, nil
		}

		attempts++
		if attempts >= defaultMaxAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %w", attempts, connErr)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, defaultMaxAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", defaultRetryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("init postgres connection: %w", ctx.Err())
		case <-time.After(defaultRetryInterval):
		}
	}
}

func newPostgresConnection(ctx context.Context, args ConnectArgs) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(args.DSN)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	if args.MaxConns > 0 {
		poolConfig.MaxConns = args.MaxConns
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer func() {
		_, _ = m.Close()
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

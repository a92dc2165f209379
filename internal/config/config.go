package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultJWTTTL   = 24 * time.Hour
	defaultCacheTTL = 5 * time.Minute
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL"`

	// RedisAddr пустой адрес отключает кеш каталога.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	CacheTTL      time.Duration `env:"CACHE_TTL"`

	// AdminEmail и AdminPassword, если заданы, создают администратора при старте.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// String не раскрывает секреты при логировании конфигурации.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s JWTTTL:%s RedisAddr:%s RedisDB:%d CacheTTL:%s AdminEmail:%s}",
		c.RunAddress, c.MigrationsDir, c.JWTTTL, c.RedisAddr, c.RedisDB, c.CacheTTL, c.AdminEmail,
	)
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	// .env необязателен, переменные окружения процесса имеют приоритет.
	_ = godotenv.Load()

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	flag.DurationVar(&flagConfig.JWTTTL, "t", defaultJWTTTL, "JWT lifetime")
	flag.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address in format host:port, empty disables cache")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:     defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		JWTTTL:        defaultIfZero(envConfig.JWTTTL, flagsConfig.JWTTTL),
		RedisAddr:     defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		RedisPassword: envConfig.RedisPassword,
		RedisDB:       envConfig.RedisDB,
		CacheTTL:      defaultIfZero(envConfig.CacheTTL, defaultCacheTTL),
		AdminEmail:    envConfig.AdminEmail,
		AdminPassword: envConfig.AdminPassword,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero(value, defaultValue time.Duration) time.Duration {
	if value == 0 {
		return defaultValue
	}
	return value
}

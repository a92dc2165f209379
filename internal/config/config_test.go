package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeConfig(t *testing.T) {
	envConfig := &Config{
		DatabaseDSN: "postgres://env",
		JWTSecret:   "env secret",
	}
	flagsConfig := &Config{
		RunAddress:  "localhost:8080",
		DatabaseDSN: "postgres://flag",
		JWTTTL:      time.Hour,
		RedisAddr:   "localhost:6379",
	}

	conf := mergeConfig(envConfig, flagsConfig)

	assert.Equal(t, "localhost:8080", conf.RunAddress)
	assert.Equal(t, "postgres://env", conf.DatabaseDSN, "env wins over flags")
	assert.Equal(t, "env secret", conf.JWTSecret)
	assert.Equal(t, time.Hour, conf.JWTTTL)
	assert.Equal(t, "localhost:6379", conf.RedisAddr)
	assert.Equal(t, defaultCacheTTL, conf.CacheTTL)
}

func TestConfigStringHidesSecrets(t *testing.T) {
	conf := Config{DatabaseDSN: "postgres://user:pass@db", JWTSecret: "top", RedisPassword: "hidden"}
	s := conf.String()
	for _, secret := range []string{"pass@db", "top", "hidden"} {
		assert.NotContains(t, s, secret)
	}
}

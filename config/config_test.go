package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/config"
)

func setTokenEnv(t *testing.T) {
	t.Setenv("JWT_ALGORITHM", "HS256")
	t.Setenv("SECRET_KEY", "test_secret_key")
}

func TestLoad_Defaults(t *testing.T) {
	setTokenEnv(t)
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_ADDR", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, "test_secret_key", cfg.SecretKey)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, ":8080", cfg.ServerAddr)
}

func TestLoad_Overrides(t *testing.T) {
	setTokenEnv(t)
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("SERVER_ADDR", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.DBDriver)
	assert.Equal(t, ":9090", cfg.ServerAddr)
}

func TestLoad_FailsWithoutTokenSettings(t *testing.T) {
	t.Setenv("JWT_ALGORITHM", "")
	t.Setenv("SECRET_KEY", "test_secret_key")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("JWT_ALGORITHM", "HS256")
	t.Setenv("SECRET_KEY", "")
	_, err = config.Load()
	assert.Error(t, err)
}

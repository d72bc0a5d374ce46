package config

import (
	"os"

	"github.com/pkg/errors"
)

// Config holds every process-wide setting, read once at startup.
type Config struct {
	// Token signing settings. Both are required.
	JWTAlgorithm string
	SecretKey    string

	// Store selection: "postgres" (default) or "memory".
	DBDriver string

	// PostgreSQL connection settings, used when DBDriver is "postgres".
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ServerAddr string
}

// Load reads the configuration from the process environment. It fails
// immediately when the token settings are absent instead of deferring the
// error to the first encode/decode call.
func Load() (*Config, error) {
	cfg := &Config{
		JWTAlgorithm: os.Getenv("JWT_ALGORITHM"),
		SecretKey:    os.Getenv("SECRET_KEY"),
		DBDriver:     os.Getenv("DB_DRIVER"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		ServerAddr:   os.Getenv("SERVER_ADDR"),
	}

	if cfg.JWTAlgorithm == "" {
		return nil, errors.New("config: JWT_ALGORITHM is not set")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("config: SECRET_KEY is not set")
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}

	return cfg, nil
}

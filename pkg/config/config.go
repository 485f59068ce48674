package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Stripe   StripeConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
}

type JWTConfig struct {
	SecretKey string
}

type StripeConfig struct {
	SecretKey string
	ApiUrl    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ToolsPlaza API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost:27017"),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "toolsplazadb"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("ACCESS_TOKEN_SECRET", ""),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			ApiUrl:    getEnv("STRIPE_API_URL", "https://api.stripe.com/v1/payment_intents"),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing access token secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Stripe.SecretKey == "" {
		return nil, errors.New("missing stripe secret key")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Драйверы хранилища
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig конфигурация БД
type DatabaseConfig struct {
	Driver   string // sqlite (по умолчанию) или postgres
	Path     string // путь к файлу базы для sqlite
	Host     string
	Port     int
	Username string
	Password string
	Name     string
	SSLMode  string
}

// Load загружает конфигурацию
func Load() error {
	env := getEnv("APP_ENV", "development")

	AppConfig = &Config{
		Environment: env,
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", DriverSQLite),
			Path:     getEnv("DB_PATH", "students.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			Username: getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "students"),
			SSLMode:  getSSLMode(env),
		},
	}

	return validate()
}

// validate проверяет обязательные параметры
func validate() error {
	var errors []string

	cfg := AppConfig.Database

	switch cfg.Driver {
	case DriverSQLite:
		if cfg.Path == "" {
			errors = append(errors, "DB_PATH is required for sqlite")
		}
	case DriverPostgres:
		if cfg.Username == "" {
			errors = append(errors, "DB_USER is required for postgres")
		}
		if cfg.Password == "" && AppConfig.Environment == "production" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown DB_DRIVER %q", cfg.Driver))
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, ", "))
	}

	return nil
}

// getSSLMode возвращает режим SSL в зависимости от окружения
func getSSLMode(env string) string {
	if env == "production" {
		return "require" // В продакшене всегда SSL
	}
	return "disable" // В разработке можно отключить
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

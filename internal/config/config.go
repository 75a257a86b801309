package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config структура конфигурации
type Config struct {
	JWTSecret      string
	SteamAPIKey    string
	DatabaseURL    string
	DatabaseConfig DatabaseConfig
	BackendURL     string
	FrontendURL    string
	AppEnv         string
}

// DatabaseConfig содержит конфигурацию базы данных
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// LoadConfig загружает переменные из .env
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	dbConfig := DatabaseConfig{
		Host:     getEnv("PGHOST", "localhost"),
		Port:     getEnv("PGPORT", "5432"),
		User:     getEnv("PGUSER", "steamtrade_user"),
		Password: getEnv("PGPASSWORD", "steamtrade_pass"),
		Name:     getEnv("PGDATABASE", "steamtrade"),
		SSLMode:  getEnv("PGSSLMODE", "disable"),
	}

	// Формируем строку подключения к базе данных
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name, dbConfig.SSLMode)

	cfg := &Config{
		JWTSecret:      getEnv("JWT_SECRET", ""),
		SteamAPIKey:    getEnv("STEAM_API_KEY", ""),
		DatabaseURL:    dbURL,
		DatabaseConfig: dbConfig,
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:3001"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		AppEnv:         getEnv("APP_ENV", "production"),
	}

	if cfg.JWTSecret == "" || cfg.SteamAPIKey == "" {
		log.Fatal("❌ Ошибка: Не заданы обязательные переменные окружения JWT_SECRET и STEAM_API_KEY")
	}

	return cfg
}

// getEnv получает переменную окружения или использует дефолтное значение
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

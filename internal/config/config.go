package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN       string `mapstructure:"DB_DSN"`
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENV"`
	DaysPath    string `mapstructure:"DAYS_PATH"`
	UniqueSlots bool   `mapstructure:"UNIQUE_SLOTS"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	// Читаем напрямую из переменных окружения (после godotenv.Load они там)
	cfg := &Config{
		DBDSN:       os.Getenv("DB_DSN"),
		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("ENV"),
		DaysPath:    os.Getenv("DAYS_PATH"),
		UniqueSlots: os.Getenv("UNIQUE_SLOTS") == "true",
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DaysPath == "" {
		cfg.DaysPath = "data/days.json"
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// Addr адрес для http-сервера в виде ":8080"
func (c *Config) Addr() string {
	if len(c.Port) > 0 && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

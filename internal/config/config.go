// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment    string
	HTTPAddr       string
	DBDSN          string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	CacheTTL       time.Duration
	AMQPURL        string
	GoogleClientID string
	WorkerInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := &Config{
		Environment:    os.Getenv("ENV"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		DBDSN:          os.Getenv("DB_DSN"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		AMQPURL:        os.Getenv("AMQP_URL"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	cfg.CacheTTL = durationEnv("CACHE_TTL", 5*time.Minute)
	cfg.WorkerInterval = durationEnv("WORKER_INTERVAL", time.Minute)

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using default %s", key, raw, fallback)
		return fallback
	}
	return d
}

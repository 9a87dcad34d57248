package configuration

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store drivers selectable via STORE_DRIVER.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config carries everything main needs to wire the service.
type Config struct {
	Addr          string
	StoreDriver   string
	DatabaseDSN   string
	JWTSigningKey string
	RedisAddr     string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local runs.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		StoreDriver:   getEnv("STORE_DRIVER", StorePostgres),
		DatabaseDSN:   os.Getenv("DB"),
		JWTSigningKey: getEnv("JWT_SIGNING_KEY", "dev-secret-change-me"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
	}
}

// ConnectDB opens the Postgres connection for the gorm-backed store.
func ConnectDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring non-numeric %s=%q", key, v)
	}
	return fallback
}

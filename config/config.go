package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup from environment variables.
type Config struct {
	Port     string
	DBHost   string
	DBPort   string
	DBUser   string
	DBPwd    string
	DBName   string
	RedisAddr string
	RedisPwd  string

	JWTSecret string
	TokenTTL  time.Duration

	WebOrigin     string
	LogLevel      string
	StatsCacheTTL time.Duration

	// Optional seed account created on first boot when no superadmin exists.
	BootstrapEmail string
	BootstrapPwd   string
}

// LoadEnv pulls a local .env into the process environment if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}
}

func Load() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	ttl := 72 * time.Hour
	if d, err := time.ParseDuration(get("TOKEN_TTL", "72h")); err == nil {
		ttl = d
	}
	cacheTTL := 30 * time.Second
	if d, err := time.ParseDuration(get("STATS_CACHE_TTL", "30s")); err == nil {
		cacheTTL = d
	}

	return Config{
		Port:      get("PORT", "4001"),
		DBHost:    get("DB_HOST", "127.0.0.1"),
		DBPort:    get("DB_PORT", "5432"),
		DBUser:    get("DB_USER", "postgres"),
		DBPwd:     os.Getenv("DB_PASSWORD"),
		DBName:    get("DB_NAME", "rentora"),
		RedisAddr: get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:  os.Getenv("REDIS_PASSWORD"),

		JWTSecret: get("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:  ttl,

		WebOrigin:     get("WEB_ORIGIN", "http://localhost:3000"),
		LogLevel:      strings.ToLower(get("LOG_LEVEL", "info")),
		StatsCacheTTL: cacheTTL,

		BootstrapEmail: strings.ToLower(os.Getenv("BOOTSTRAP_ADMIN_EMAIL")),
		BootstrapPwd:   os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
	}
}

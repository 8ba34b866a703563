package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	DatabaseURL        string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSSLMode          string
	DBStatementTimeout time.Duration
	SQLEcho            bool

	SecretKey          string
	AccessTokenExpires time.Duration

	SuperuserEmail    string
	SuperuserPassword string
	SuperuserName     string

	CorsAllowOrigins string
}

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env outside production. Missing files are not an error.
func LoadEnv() {
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		log.Info().Msg("running in production, using system environment")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment")
		return
	}
	log.Info().Msg(".env file loaded")
}

// Load builds the process configuration from the environment.
func Load() Config {
	LoadEnv()

	cfg := Config{
		AppEnv:   GetEnv("APP_ENV", "development"),
		Port:     GetEnv("PORT", "3000"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),

		DatabaseURL:        GetEnv("DATABASE_URL"),
		DBHost:             GetEnv("DB_HOST", "localhost"),
		DBPort:             GetEnv("DB_PORT", "5432"),
		DBUser:             GetEnv("DB_USER", "postgres"),
		DBPassword:         GetEnv("DB_PASSWORD"),
		DBName:             GetEnv("DB_NAME", "mindset"),
		DBSSLMode:          GetEnv("DB_SSLMODE", "disable"),
		DBStatementTimeout: time.Duration(getInt("DB_STATEMENT_TIMEOUT_MS", 3000)) * time.Millisecond,
		SQLEcho:            getBool("SQL_ECHO", false),

		SecretKey:          GetEnv("SECRET_KEY", "dev-secret"),
		AccessTokenExpires: time.Duration(getInt("JWT_ACCESS_TOKEN_EXPIRES", 60)) * time.Minute,

		SuperuserEmail:    GetEnv("SUPERUSER_EMAIL", "admin@example.com"),
		SuperuserPassword: GetEnv("SUPERUSER_PASSWORD", "adminpass"),
		SuperuserName:     GetEnv("SUPERUSER_NAME", "Superuser"),

		CorsAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "*"),
	}

	if cfg.SecretKey == "dev-secret" {
		log.Warn().Msg("SECRET_KEY is not set, using the development default")
	}
	return cfg
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in environment, using default")
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

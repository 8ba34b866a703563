package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/configs"
)

const applicationName = "mindset_backend"

// BuildDSN returns a keyword/value DSN. DATABASE_URL wins over the DB_* parts.
func BuildDSN(cfg configs.Config) (string, error) {
	var base string
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		parsed, err := pq.ParseURL(cfg.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		base = parsed
	} else {
		base = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			quote(cfg.DBHost), quote(cfg.DBPort), quote(cfg.DBUser),
			quote(cfg.DBPassword), quote(cfg.DBName), quote(cfg.DBSSLMode))
	}

	dsn := base + " application_name=" + applicationName
	if ms := cfg.DBStatementTimeout.Milliseconds(); ms > 0 {
		dsn += fmt.Sprintf(" options='-c statement_timeout=%d'", ms)
	}
	return dsn, nil
}

func quote(v string) string {
	if v == "" {
		return "''"
	}
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// ConnectDB opens the gorm session. Unique and FK violations are translated
// to gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func ConnectDB(cfg configs.Config, logger zerolog.Logger) (*gorm.DB, error) {
	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(logger, cfg.SQLEcho),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info().Str("component", "database").Msg("database connected")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("pool tune failed")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUpQueries fills the pool in the background once the server is starting.
func WarmUpQueries(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			log.Warn().Err(err).Msg("warm-up ping failed")
		}
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Settings describes how to reach PostgreSQL.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
	// Debug turns on GORM's SQL logging.
	Debug bool
}

func (s Settings) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		s.Host, s.User, s.Password, s.Name, s.Port, s.SSLMode, s.TimeZone,
	)
}

const connectAttempts = 10

// Connect opens the connection pool, retrying while the database starts up.
func Connect(settings Settings, logger *zap.Logger) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if settings.Debug {
		logLevel = gormlogger.Info
	}
	cfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	var db *gorm.DB
	var err error
	for i := 1; i <= connectAttempts; i++ {
		db, err = gorm.Open(postgres.Open(settings.DSN()), cfg)
		if err == nil {
			logger.Info("Connected to PostgreSQL", zap.String("host", settings.Host), zap.String("database", settings.Name))
			return db, nil
		}
		logger.Warn("PostgreSQL connection failed", zap.Int("attempt", i), zap.Int("max_attempts", connectAttempts), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to PostgreSQL after retries: %w", err)
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

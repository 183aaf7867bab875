package database

import (
	"errors"
	"fmt"
	"time"

	"repairdesk-backend/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("record not found")

// Dialector picks the GORM dialector for the configured driver.
func Dialector(cfg config.Config) gorm.Dialector {
	if cfg.DBDriver == "mysql" {
		return mysql.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

// Open opens a GORM handle on the dialector. Handlers run inside the per-request
// transaction (see middlewares.RequestTx), so GORM's implicit write transactions are off.
func Open(dialector gorm.Dialector, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Connect opens the database described by cfg.
func Connect(cfg config.Config, log *logrus.Logger) (*gorm.DB, error) {
	return Open(Dialector(cfg), log)
}

package database

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for a connection string: postgres URLs go to
// the postgres driver, everything else is treated as a sqlite DSN.
func Dialector(url string) gorm.Dialector {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return postgres.Open(url)
	}
	return sqlite.Open(url)
}

// NewConnection opens the database behind url. Driver errors are translated
// into gorm sentinels (gorm.ErrDuplicatedKey and friends) so callers never
// depend on driver-specific error types.
func NewConnection(url string, log logrus.FieldLogger) (*gorm.DB, error) {
	dialector := Dialector(url)

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialector.Name(), err)
	}

	if dialector.Name() == "sqlite" {
		// sqlite allows a single writer; a shared-cache in-memory database
		// disappears with its last connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.WithField("driver", dialector.Name()).Info("connected to database")
	return db, nil
}

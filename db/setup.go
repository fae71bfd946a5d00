package db

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vgtracker-dev/vgtracker/internal/models"
)

// Connect opens a GORM handle over the lib/pq driver. Going through lib/pq
// keeps store errors as *pq.Error so constraint violations stay
// distinguishable from generic failures.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{})
}

// Migrate creates any missing tables for the domain models. Foreign key
// cascades are declared on the models themselves.
func Migrate(database *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Game{},
		&models.LibraryEntry{},
		&models.Review{},
	}

	migrator := database.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := database.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

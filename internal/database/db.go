package database

import (
	"fueldepot/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection opens the Postgres connection backing the key-value store and
// migrates its single table.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&storage.Record{}); err != nil {
		return nil, err
	}

	return db, nil
}

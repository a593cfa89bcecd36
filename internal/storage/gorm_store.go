package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted key-value row.
type Record struct {
	Key   string `gorm:"type:varchar(100);primaryKey"`
	Value string `gorm:"type:jsonb;not null"`
}

// TableName keeps the table name stable regardless of gorm pluralization.
func (Record) TableName() string { return "kv_records" }

// GormStore persists documents as rows in a single key-value table. Each
// Read/Write is one statement, so the per-call atomicity contract of Store
// holds without explicit transactions.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Store backed by the given gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Read(ctx context.Context, key string) (json.RawMessage, bool) {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: read %q failed: %v", key, err)
		}
		return nil, false
	}
	return json.RawMessage(rec.Value), true
}

func (s *GormStore) Write(ctx context.Context, key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: marshal for %q failed: %v", key, err)
		return false
	}
	rec := Record{Key: key, Value: string(data)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		log.Printf("storage: write %q failed: %v", key, err)
		return false
	}
	return true
}

func (s *GormStore) Remove(ctx context.Context, key string) bool {
	if err := s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error; err != nil {
		log.Printf("storage: remove %q failed: %v", key, err)
		return false
	}
	return true
}

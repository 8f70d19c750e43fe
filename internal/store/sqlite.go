package store

import (
	"errors"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// blob is one row of the key/value table.
type blob struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (blob) TableName() string { return "blobs" }

// SQLite persists the blobs in a single local database file. One file,
// no server - the same deal the app had with browser local storage.
type SQLite struct {
	db    *gorm.DB
	quota int64
}

// OpenSQLite opens (or creates) the database file and syncs the schema.
// quota caps the total stored bytes; pass 0 for DefaultQuota.
func OpenSQLite(path string, quota int64) (*SQLite, error) {
	if quota <= 0 {
		quota = DefaultQuota
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&blob{}); err != nil {
		return nil, err
	}

	log.Println("✅ Local store ready:", path)
	return &SQLite{db: db, quota: quota}, nil
}

func (s *SQLite) Get(key string) (string, bool) {
	var b blob
	err := s.db.First(&b, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ store: read failed for %q: %v", key, err)
		}
		return "", false
	}
	return b.Value, true
}

func (s *SQLite) Set(key, value string) error {
	// Capacity check first: everything except this key, plus the new
	// value, must fit. A rejected write leaves the old row untouched.
	var used int64
	err := s.db.Model(&blob{}).
		Where("key <> ?", key).
		Select("COALESCE(SUM(LENGTH(value)), 0)").
		Scan(&used).Error
	if err != nil {
		return err
	}
	if used+int64(len(value)) > s.quota {
		return ErrQuotaExceeded
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&blob{Key: key, Value: value}).Error
}

func (s *SQLite) Delete(key string) error {
	return s.db.Delete(&blob{}, "key = ?", key).Error
}

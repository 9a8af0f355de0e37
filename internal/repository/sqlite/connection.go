// Package sqlite is a single-file store for local runs and end-to-end tests.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type userRecord struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

type authEventRecord struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     string `gorm:"index;not null"`
	Kind       string `gorm:"not null"`
	OccurredAt time.Time
}

func (authEventRecord) TableName() string { return "auth_events" }

type entryRecord struct {
	ID          string    `gorm:"primaryKey"`
	OwnerID     string    `gorm:"index:idx_entries_owner_date,priority:1;not null"`
	Email       string    `gorm:"not null"`
	Date        time.Time `gorm:"index:idx_entries_owner_date,priority:2"`
	Description string    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (entryRecord) TableName() string { return "calendar_entries" }

// Connection wraps a gorm handle over SQLite.
type Connection struct {
	DB *gorm.DB
}

// NewConnection opens dsn (":memory:" for a private in-memory database) and
// migrates the schema.
func NewConnection(dsn string) (*Connection, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite handle: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across queries.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&userRecord{}, &authEventRecord{}, &entryRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *Connection) Ping(ctx context.Context) error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}

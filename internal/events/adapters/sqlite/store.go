package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/events/core/ports"
)

const latestSchemaVersion = 1

var ErrSchemaTooNew = errors.New("database schema is newer than this build supports")

// EventStore keeps events in an embedded SQLite database.
type EventStore struct {
	db *gorm.DB
}

var (
	_ ports.EventStorePort = (*EventStore)(nil)
	_ ports.BatchAppender  = (*EventStore)(nil)
)

// Open opens (or creates) the database at path and migrates it.
// Use ":memory:" for a throwaway database.
func Open(path string) (*EventStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	} else if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	return NewEventStore(db)
}

// NewEventStore migrates db and wraps it.
func NewEventStore(db *gorm.DB) (*EventStore, error) {
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &EventStore{db: db}, nil
}

func (s *EventStore) Load(ctx context.Context) (domain.EventTable, error) {
	var rows []usageEventRow
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load usage events: %w", err)
	}

	table := make(domain.EventTable, 0, len(rows))
	for i, r := range rows {
		e, err := r.toDomain()
		if err != nil {
			return nil, &domain.ParseError{Line: i + 1, Column: domain.Columns[6], Err: err}
		}
		table = append(table, e)
	}
	return table, nil
}

func (s *EventStore) Append(ctx context.Context, e domain.UsageEvent) error {
	row := fromDomain(e)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert usage event: %w", err)
	}
	return nil
}

// AppendAll inserts events in one transaction.
func (s *EventStore) AppendAll(ctx context.Context, events []domain.UsageEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]usageEventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, fromDomain(e))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("insert usage events: %w", err)
	}
	return nil
}

// SchemaVersion reports the version recorded in schema_meta.
func (s *EventStore) SchemaVersion(ctx context.Context) (int, error) {
	var meta schemaMeta
	if err := s.db.WithContext(ctx).First(&meta, 1).Error; err != nil {
		return 0, err
	}
	return meta.SchemaVersion, nil
}

func (s *EventStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMeta{}); err != nil {
		return fmt.Errorf("create schema_meta: %w", err)
	}

	var meta schemaMeta
	err := db.First(&meta, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		meta = schemaMeta{ID: 1}
		if err := db.Create(&meta).Error; err != nil {
			return fmt.Errorf("init schema_meta: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("read schema_meta: %w", err)
	}

	switch {
	case meta.SchemaVersion > latestSchemaVersion:
		return fmt.Errorf("%w: found %d, supported %d", ErrSchemaTooNew, meta.SchemaVersion, latestSchemaVersion)
	case meta.SchemaVersion == latestSchemaVersion:
		return nil
	}

	if err := db.AutoMigrate(&usageEventRow{}); err != nil {
		return fmt.Errorf("migrate usage_events: %w", err)
	}

	meta.SchemaVersion = latestSchemaVersion
	if err := db.Save(&meta).Error; err != nil {
		return fmt.Errorf("write schema_meta: %w", err)
	}
	return nil
}

package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"ai-usage-tracker/internal/config"
	"ai-usage-tracker/internal/events/adapters/csvfile"
	"ai-usage-tracker/internal/events/adapters/instrumented"
	"ai-usage-tracker/internal/events/core/domain"
	eventsRepoPg "ai-usage-tracker/internal/events/adapters/postgres"
	eventsSQLite "ai-usage-tracker/internal/events/adapters/sqlite"
	"ai-usage-tracker/internal/events/core/ports"
	"ai-usage-tracker/internal/platform/logger"
	"ai-usage-tracker/internal/platform/observability"
)

// Store is the configured event store and the function releasing it.
type Store struct {
	ports.EventStorePort
	Close func() error
}

var _ ports.BatchAppender = (*Store)(nil)

// AppendAll keeps the wrapped store's batch write reachable through Store.
func (s *Store) AppendAll(ctx context.Context, events []domain.UsageEvent) error {
	if batch, ok := s.EventStorePort.(ports.BatchAppender); ok {
		return batch.AppendAll(ctx, events)
	}
	for _, e := range events {
		if err := s.Append(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// OpenStore builds the event store selected by cfg.Driver. When m is not nil
// the store is wrapped with Prometheus instrumentation.
func OpenStore(ctx context.Context, cfg config.StorageConfig, m *observability.Metrics, log *logger.Logger) (*Store, error) {
	var (
		store ports.EventStorePort
		closeFn = func() error { return nil }
	)

	switch cfg.Driver {
	case config.DriverCSV:
		store = csvfile.NewEventStore(cfg.CSVPath)
		log.Info("using csv event store", "path", cfg.CSVPath)

	case config.DriverSQLite:
		s, err := eventsSQLite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store, closeFn = s, s.Close
		log.Info("using sqlite event store", "path", cfg.SQLitePath)

	case config.DriverPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		repo := eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(db))
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		store, closeFn = repo, db.Close
		log.Info("using postgres event store")

	default:
		return nil, fmt.Errorf("%w: unknown storage.driver %q", config.ErrInvalidConfig, cfg.Driver)
	}

	if m != nil {
		store = instrumented.NewEventStore(store, cfg.Driver, m)
	}
	return &Store{EventStorePort: store, Close: closeFn}, nil
}

func openPostgres(ctx context.Context, cfg config.StorageConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return db, nil
}

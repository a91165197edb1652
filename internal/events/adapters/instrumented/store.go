package instrumented

import (
	"context"
	"time"

	"ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/events/core/ports"
	"ai-usage-tracker/internal/platform/observability"
)

// EventStore records Prometheus timings around another store.
type EventStore struct {
	next    ports.EventStorePort
	backend string
	metrics *observability.Metrics
}

var (
	_ ports.EventStorePort = (*EventStore)(nil)
	_ ports.BatchAppender  = (*EventStore)(nil)
)

func NewEventStore(next ports.EventStorePort, backend string, m *observability.Metrics) *EventStore {
	return &EventStore{next: next, backend: backend, metrics: m}
}

func (s *EventStore) Load(ctx context.Context) (domain.EventTable, error) {
	started := time.Now()
	table, err := s.next.Load(ctx)
	s.metrics.ObserveStore("load", s.backend, started, err)
	if err == nil {
		s.metrics.TableSize.Set(float64(table.Len()))
	}
	return table, err
}

func (s *EventStore) Append(ctx context.Context, e domain.UsageEvent) error {
	started := time.Now()
	err := s.next.Append(ctx, e)
	s.metrics.ObserveStore("append", s.backend, started, err)
	if err == nil {
		s.metrics.EventsLoggedTotal.Inc()
	}
	return err
}

// AppendAll forwards to the wrapped store's batch write when it has one.
func (s *EventStore) AppendAll(ctx context.Context, events []domain.UsageEvent) error {
	started := time.Now()
	err := appendAll(ctx, s.next, events)
	s.metrics.ObserveStore("append_all", s.backend, started, err)
	if err == nil {
		s.metrics.EventsLoggedTotal.Add(float64(len(events)))
	}
	return err
}

func appendAll(ctx context.Context, store ports.EventStorePort, events []domain.UsageEvent) error {
	if batch, ok := store.(ports.BatchAppender); ok {
		return batch.AppendAll(ctx, events)
	}
	for _, e := range events {
		if err := store.Append(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

package ports

import (
	"context"

	"ai-usage-tracker/internal/events/core/domain"
)

type EventStorePort interface {
	// Load returns the whole table, creating an empty backing store when
	// none exists yet. A malformed store yields *domain.ParseError.
	Load(ctx context.Context) (domain.EventTable, error)

	// Append adds e after the last logged event.
	Append(ctx context.Context, e domain.UsageEvent) error
}

// BatchAppender is implemented by stores that can append several events in
// one write. Either every event is stored or none is.
type BatchAppender interface {
	AppendAll(ctx context.Context, events []domain.UsageEvent) error
}

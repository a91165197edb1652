package ports

import (
	"context"

	events "ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/metrics/core/domain"
)

// EventTableReader is satisfied by every event store.
type EventTableReader interface {
	Load(ctx context.Context) (events.EventTable, error)
}

type ChartRendererPort interface {
	// BarChart renders one bar per point, in order, as PNG.
	BarChart(title string, s domain.Series) ([]byte, error)
	// LineChart renders the points joined in order, as PNG.
	LineChart(title string, s domain.Series) ([]byte, error)
}

package usecase

import (
	"context"
	"errors"

	"ai-usage-tracker/internal/metrics/core/domain"
	"ai-usage-tracker/internal/metrics/core/ports"
)

var (
	ErrNoData = errors.New("no usage data logged yet")
)

type GetMetricsUseCase struct {
	reader ports.EventTableReader
}

func NewGetMetricsUseCase(reader ports.EventTableReader) *GetMetricsUseCase {
	return &GetMetricsUseCase{reader: reader}
}

// Execute loads the whole table and summarizes it. An empty table gives a
// zero Summary, not an error.
func (uc *GetMetricsUseCase) Execute(ctx context.Context) (domain.Summary, error) {
	table, err := uc.reader.Load(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(table), nil
}

type GetProgressUseCase struct {
	reader ports.EventTableReader
}

func NewGetProgressUseCase(reader ports.EventTableReader) *GetProgressUseCase {
	return &GetProgressUseCase{reader: reader}
}

func (uc *GetProgressUseCase) Execute(ctx context.Context) (domain.Progress, error) {
	table, err := uc.reader.Load(ctx)
	if err != nil {
		return domain.Progress{}, err
	}
	if table.Empty() {
		return domain.Progress{}, ErrNoData
	}
	return domain.BuildProgress(table), nil
}

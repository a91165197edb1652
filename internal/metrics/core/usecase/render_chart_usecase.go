package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"ai-usage-tracker/internal/metrics/core/domain"
	"ai-usage-tracker/internal/metrics/core/ports"
)

var ErrUnknownChart = errors.New("unknown chart")

type ChartKind string

const (
	ChartTaskDistribution  ChartKind = "task-distribution"
	ChartToolDistribution  ChartKind = "tool-distribution"
	ChartCreativityPerTask ChartKind = "creativity-per-task"
	ChartTimePerTask       ChartKind = "time-per-task"
	ChartTimeOverIndex     ChartKind = "time-over-index"
)

var ChartKinds = []ChartKind{
	ChartTaskDistribution,
	ChartToolDistribution,
	ChartCreativityPerTask,
	ChartTimePerTask,
	ChartTimeOverIndex,
}

type RenderChartUseCase struct {
	reader   ports.EventTableReader
	renderer ports.ChartRendererPort
}

func NewRenderChartUseCase(reader ports.EventTableReader, renderer ports.ChartRendererPort) *RenderChartUseCase {
	return &RenderChartUseCase{reader: reader, renderer: renderer}
}

// Execute returns the PNG for kind.
func (uc *RenderChartUseCase) Execute(ctx context.Context, kind ChartKind) ([]byte, error) {
	if !slices.Contains(ChartKinds, kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, kind)
	}

	table, err := uc.reader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if table.Empty() {
		return nil, ErrNoData
	}

	switch kind {
	case ChartTaskDistribution:
		return uc.renderer.BarChart("Task Type Distribution", distributionSeries(domain.TaskDistribution(table)))
	case ChartToolDistribution:
		return uc.renderer.BarChart("AI Tool Effectiveness", distributionSeries(domain.ToolDistribution(table)))
	case ChartCreativityPerTask:
		return uc.renderer.BarChart("Creativity Impact Analysis", domain.CreativityPerTask(table))
	case ChartTimePerTask:
		return uc.renderer.BarChart("Time Comparison", domain.TimePerTask(table))
	default:
		return uc.renderer.LineChart("Progress Over Time", domain.TimeOverIndex(table))
	}
}

func distributionSeries(d domain.Distribution) domain.Series {
	s := make(domain.Series, 0, len(d))
	for _, b := range d {
		s = append(s, domain.Point{Label: b.Key, Value: float64(b.Count)})
	}
	return s
}

package bootstrap

import (
	"ai-usage-tracker/internal/config"
	"ai-usage-tracker/internal/metrics/adapters/chart"
)

func NewChartRenderer(cfg config.ChartsConfig) (*chart.Renderer, error) {
	r := chart.NewRenderer(cfg.Width, cfg.Height)
	if cfg.FontPath == "" {
		return r, nil
	}
	return r.WithFontFile(cfg.FontPath, float64(cfg.FontSize))
}

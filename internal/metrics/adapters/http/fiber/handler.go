package fiber

import (
	"context"
	"errors"
	"net/http"

	eventsHttp "ai-usage-tracker/internal/events/adapters/http/fiber"
	events "ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/metrics/core/domain"
	"ai-usage-tracker/internal/metrics/core/usecase"
	"ai-usage-tracker/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

const noDataMessage = "No data available. Please log some AI usage first."

type GetMetricsUseCase interface {
	Execute(ctx context.Context) (domain.Summary, error)
}

type GetProgressUseCase interface {
	Execute(ctx context.Context) (domain.Progress, error)
}

type RenderChartUseCase interface {
	Execute(ctx context.Context, kind usecase.ChartKind) ([]byte, error)
}

type MetricsHandler struct {
	metricsUC  GetMetricsUseCase
	progressUC GetProgressUseCase
	chartUC    RenderChartUseCase
	log        *logger.Logger
}

func NewMetricsHandler(metricsUC GetMetricsUseCase, progressUC GetProgressUseCase, chartUC RenderChartUseCase, log *logger.Logger) *MetricsHandler {
	return &MetricsHandler{
		metricsUC:  metricsUC,
		progressUC: progressUC,
		chartUC:    chartUC,
		log:        log,
	}
}

// GetMetrics godoc
// @Summary Dashboard metrics
// @Description Five usage scores and the task/tool distributions (Home view)
// @Tags Metrics
// @Produce json
// @Success 200 {object} MetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	summary, err := h.metricsUC.Execute(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}

	resp := toMetricsResponse(summary)
	if resp.HasData {
		resp.Charts = []string{
			chartURL(usecase.ChartTaskDistribution),
			chartURL(usecase.ChartToolDistribution),
		}
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetProgress godoc
// @Summary Progress tracker
// @Description Usage table, all scores and every chart series (Progress view)
// @Tags Metrics
// @Produce json
// @Success 200 {object} ProgressResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /progress [get]
func (h *MetricsHandler) GetProgress(c *fiber.Ctx) error {
	p, err := h.progressUC.Execute(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}

	metrics := toMetricsResponse(p.Summary)
	metrics.Charts = make([]string, 0, len(usecase.ChartKinds))
	for _, k := range usecase.ChartKinds {
		metrics.Charts = append(metrics.Charts, chartURL(k))
	}

	return c.Status(http.StatusOK).JSON(ProgressResponse{
		Events:            eventsHttp.ToResponses(p.Events),
		Metrics:           metrics,
		CreativityPerTask: toPoints(p.CreativityPerTask),
		TimePerTask:       toPoints(p.TimePerTask),
		TimeOverIndex:     toPoints(p.TimeOverIndex),
	})
}

// GetChart godoc
// @Summary Render a chart
// @Description PNG chart over the usage table
// @Tags Metrics
// @Produce png
// @Param kind path string true "task-distribution | tool-distribution | creativity-per-task | time-per-task | time-over-index"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /charts/{kind} [get]
func (h *MetricsHandler) GetChart(c *fiber.Ctx) error {
	kind := usecase.ChartKind(c.Params("kind"))

	png, err := h.chartUC.Execute(c.UserContext(), kind)
	if err != nil {
		return h.writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(http.StatusOK).Send(png)
}

func (h *MetricsHandler) writeError(c *fiber.Ctx, err error) error {
	var pe *events.ParseError
	switch {
	case errors.Is(err, usecase.ErrNoData):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "no_data",
			Message: noDataMessage,
		})
	case errors.Is(err, usecase.ErrUnknownChart):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "unknown_chart",
			Message: err.Error(),
		})
	case errors.As(err, &pe):
		logger.FromCtx(c, h.log).Error("event table is malformed", "line", pe.Line, "column", pe.Column, "error", pe.Err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "corrupt_event_table",
			Message: pe.Error(),
		})
	default:
		logger.FromCtx(c, h.log).Error("metrics query failed", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toMetricsResponse(s domain.Summary) MetricsResponse {
	return MetricsResponse{
		HasData:                s.EventCount > 0,
		EventCount:             s.EventCount,
		AIDependenceScore:      ScoreResponse{Value: s.AIDependenceScore, Display: domain.FormatPercent(s.AIDependenceScore)},
		CreativityScore:        ScoreResponse{Value: s.CreativityScore, Display: domain.FormatScore(s.CreativityScore)},
		ProductivityScore:      ScoreResponse{Value: s.ProductivityScore, Display: domain.FormatPercent(s.ProductivityScore)},
		TimeSaved:              ScoreResponse{Value: s.TimeSaved, Display: domain.FormatHours(s.TimeSaved)},
		SkillDevelopmentImpact: ScoreResponse{Value: s.SkillDevelopmentImpact, Display: domain.FormatScore(s.SkillDevelopmentImpact)},
		TaskDistribution:       toBuckets(s.TaskDistribution),
		ToolDistribution:       toBuckets(s.ToolDistribution),
	}
}

func toBuckets(d domain.Distribution) []BucketResponse {
	out := make([]BucketResponse, 0, len(d))
	for _, b := range d {
		out = append(out, BucketResponse{Key: b.Key, Count: b.Count})
	}
	return out
}

func toPoints(s domain.Series) []PointResponse {
	out := make([]PointResponse, 0, len(s))
	for _, p := range s {
		out = append(out, PointResponse{Label: p.Label, Value: p.Value})
	}
	return out
}

func chartURL(k usecase.ChartKind) string {
	return "/charts/" + string(k)
}

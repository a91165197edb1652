package fiber

import (
	"context"
	"errors"
	"net/http"

	"ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/events/core/usecase"
	"ai-usage-tracker/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (domain.UsageEvent, error)
	BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
	ListEvents(ctx context.Context) (domain.EventTable, error)
}

type EventHandler struct {
	storeUC StoreEventUseCase
	log     *logger.Logger
}

func NewEventHandler(storeUC StoreEventUseCase, log *logger.Logger) *EventHandler {
	return &EventHandler{storeUC: storeUC, log: log}
}

// CreateEvent godoc
// @Summary Log one AI usage event
// @Description Appends a usage event to the table (Input view)
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Usage event"
// @Success 201 {object} CreateEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	e, err := h.storeUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return h.writeError(c, err)
	}

	resp := CreateEventResponse{
		Status:  "created",
		Message: "AI usage logged successfully!",
		Event:   toResponse(e),
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// BulkCreateEvents godoc
// @Summary Bulk log events
// @Description Validates every event, then appends them in order
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	inputs := make([]usecase.StoreEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = toInput(e)
	}

	result, err := h.storeUC.BulkCreateEvents(
		c.UserContext(),
		usecase.BulkCreateEventsInput{Events: inputs},
	)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateEventsResponse{
		Created: result.Created,
	})
}

// ListEvents godoc
// @Summary List logged events
// @Description Returns the whole usage table in log order
// @Tags Events
// @Produce json
// @Success 200 {object} ListEventsResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	table, err := h.storeUC.ListEvents(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(ListEventsResponse{
		Count:  table.Len(),
		Events: ToResponses(table),
	})
}

func (h *EventHandler) writeError(c *fiber.Ctx, err error) error {
	var pe *domain.ParseError
	switch {
	case errors.Is(err, usecase.ErrInvalidEvent):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	case errors.As(err, &pe):
		logger.FromCtx(c, h.log).Error("event table is malformed", "line", pe.Line, "column", pe.Column, "error", pe.Err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "corrupt_event_table",
			Message: pe.Error(),
		})
	default:
		logger.FromCtx(c, h.log).Error("event store failed", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toInput(req CreateEventRequest) usecase.StoreEventInput {
	return usecase.StoreEventInput{
		TaskDescription:        req.TaskDescription,
		AiTool:                 req.AiTool,
		TimeSpentOnAi:          req.TimeSpentOnAi,
		CreativityImpact:       req.CreativityImpact,
		TimeSaved:              req.TimeSaved,
		SkillDevelopmentImpact: req.SkillDevelopmentImpact,
		TaskCompletion:         req.TaskCompletion,
	}
}

func toResponse(e domain.UsageEvent) EventResponse {
	return EventResponse{
		TaskDescription:        e.TaskDescription,
		AiTool:                 e.AiTool,
		TimeSpentOnAi:          e.TimeSpentOnAi,
		CreativityImpact:       e.CreativityImpact,
		TimeSaved:              e.TimeSaved,
		SkillDevelopmentImpact: e.SkillDevelopmentImpact,
		TaskCompletion:         string(e.TaskCompletion),
	}
}

// ToResponses converts a table to its JSON rows.
func ToResponses(table domain.EventTable) []EventResponse {
	out := make([]EventResponse, 0, table.Len())
	for _, e := range table {
		out = append(out, toResponse(e))
	}
	return out
}

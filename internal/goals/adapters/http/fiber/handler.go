package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	events "ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/goals/core/domain"
	"ai-usage-tracker/internal/goals/core/usecase"
	metrics "ai-usage-tracker/internal/metrics/core/domain"
	"ai-usage-tracker/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

type EvaluateGoalUseCase interface {
	Execute(ctx context.Context, in usecase.EvaluateGoalInput) (domain.GoalStatus, error)
}

type GoalHandler struct {
	uc  EvaluateGoalUseCase
	log *logger.Logger
}

func NewGoalHandler(uc EvaluateGoalUseCase, log *logger.Logger) *GoalHandler {
	return &GoalHandler{uc: uc, log: log}
}

// GetGoal godoc
// @Summary Check an AI reduction goal
// @Description Compares the current AI dependence score with a target percentage (Goals view). Nothing is stored.
// @Tags Goals
// @Produce json
// @Param target query int false "Target percentage, 0-100" default(0)
// @Success 200 {object} GoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /goals [get]
func (h *GoalHandler) GetGoal(c *fiber.Ctx) error {
	target := 0
	if raw := c.Query("target", ""); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_target",
				Message: "invalid 'target' parameter",
			})
		}
		target = v
	}

	st, err := h.uc.Execute(c.UserContext(), usecase.EvaluateGoalInput{TargetPercent: target})
	if err != nil {
		var pe *events.ParseError
		switch {
		case errors.Is(err, usecase.ErrInvalidTarget):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_target",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrNoData):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "no_data",
				Message: "No data available. Please log some AI usage first.",
			})
		case errors.As(err, &pe):
			logger.FromCtx(c, h.log).Error("event table is malformed", "line", pe.Line, "column", pe.Column, "error", pe.Err)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "corrupt_event_table",
				Message: pe.Error(),
			})
		default:
			logger.FromCtx(c, h.log).Error("goal evaluation failed", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(GoalResponse{
		CurrentScore:        st.CurrentScore,
		CurrentScoreDisplay: metrics.FormatPercent(st.CurrentScore),
		TargetPercent:       st.TargetPercent,
		Progress:            st.Progress,
		Met:                 st.Met,
	})
}

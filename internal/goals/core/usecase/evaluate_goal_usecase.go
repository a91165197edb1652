package usecase

import (
	"context"
	"errors"
	"fmt"

	"ai-usage-tracker/internal/goals/core/domain"
	metrics "ai-usage-tracker/internal/metrics/core/domain"
	"ai-usage-tracker/internal/metrics/core/ports"
)

var (
	ErrInvalidTarget = errors.New("invalid goal target")
	ErrNoData        = errors.New("no usage data logged yet")
)

const (
	MinTargetPercent = 0
	MaxTargetPercent = 100
)

type EvaluateGoalInput struct {
	TargetPercent int
}

type EvaluateGoalUseCase struct {
	reader ports.EventTableReader
}

func NewEvaluateGoalUseCase(reader ports.EventTableReader) *EvaluateGoalUseCase {
	return &EvaluateGoalUseCase{reader: reader}
}

func (uc *EvaluateGoalUseCase) Execute(ctx context.Context, in EvaluateGoalInput) (domain.GoalStatus, error) {
	if in.TargetPercent < MinTargetPercent || in.TargetPercent > MaxTargetPercent {
		return domain.GoalStatus{}, fmt.Errorf("%w: target must be between %d and %d", ErrInvalidTarget, MinTargetPercent, MaxTargetPercent)
	}

	table, err := uc.reader.Load(ctx)
	if err != nil {
		return domain.GoalStatus{}, err
	}
	if table.Empty() {
		return domain.GoalStatus{}, ErrNoData
	}

	return domain.Evaluate(metrics.AIDependenceScore(table), in.TargetPercent), nil
}

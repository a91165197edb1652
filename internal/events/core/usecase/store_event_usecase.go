package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/events/core/ports"
)

var (
	ErrInvalidEvent = errors.New("invalid event")
)

const (
	minRating     = 1
	maxRating     = 5
	defaultRating = 3
)

type StoreEventUseCase struct {
	repo ports.EventStorePort
}

func NewStoreEventUseCase(repo ports.EventStorePort) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo}
}

// StoreEventInput is one input form submission. A nil rating was not
// filled in and takes the form default; a zero rating is out of range.
type StoreEventInput struct {
	TaskDescription        string
	AiTool                 string
	TimeSpentOnAi          float64
	CreativityImpact       *int
	TimeSaved              float64
	SkillDevelopmentImpact *int
	TaskCompletion         string
}

func (uc *StoreEventUseCase) Execute(ctx context.Context, in StoreEventInput) (domain.UsageEvent, error) {
	e, err := buildEvent(in)
	if err != nil {
		return domain.UsageEvent{}, err
	}

	if err := uc.repo.Append(ctx, e); err != nil {
		return domain.UsageEvent{}, err
	}

	return e, nil
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created int
}

// BulkCreateEvents validates every input before appending any of them.
// Stores implementing ports.BatchAppender take the whole batch in one write.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	events := make([]domain.UsageEvent, 0, len(in.Events))
	for i, ev := range in.Events {
		e, err := buildEvent(ev)
		if err != nil {
			return res, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, e)
	}

	if batch, ok := uc.repo.(ports.BatchAppender); ok {
		if err := batch.AppendAll(ctx, events); err != nil {
			return res, err
		}
		res.Created = len(events)
		return res, nil
	}

	for _, e := range events {
		if err := uc.repo.Append(ctx, e); err != nil {
			return res, err
		}
		res.Created++
	}

	return res, nil
}

func (uc *StoreEventUseCase) ListEvents(ctx context.Context) (domain.EventTable, error) {
	return uc.repo.Load(ctx)
}

// buildEvent applies the input form defaults and bounds.
func buildEvent(in StoreEventInput) (domain.UsageEvent, error) {
	creativity := ratingOrDefault(in.CreativityImpact)
	skill := ratingOrDefault(in.SkillDevelopmentImpact)
	if in.TaskCompletion == "" {
		in.TaskCompletion = string(domain.TaskCompleted)
	}

	if err := validateHours("time_spent_on_ai", in.TimeSpentOnAi); err != nil {
		return domain.UsageEvent{}, err
	}
	if err := validateHours("time_saved", in.TimeSaved); err != nil {
		return domain.UsageEvent{}, err
	}
	if err := validateRating("creativity_impact", creativity); err != nil {
		return domain.UsageEvent{}, err
	}
	if err := validateRating("skill_development_impact", skill); err != nil {
		return domain.UsageEvent{}, err
	}

	completion, err := domain.ParseTaskCompletion(in.TaskCompletion)
	if err != nil {
		return domain.UsageEvent{}, fmt.Errorf("%w: task_completion: %v", ErrInvalidEvent, err)
	}

	return domain.UsageEvent{
		TaskDescription:        in.TaskDescription,
		AiTool:                 in.AiTool,
		TimeSpentOnAi:          in.TimeSpentOnAi,
		CreativityImpact:       creativity,
		TimeSaved:              in.TimeSaved,
		SkillDevelopmentImpact: skill,
		TaskCompletion:         completion,
	}, nil
}

func ratingOrDefault(v *int) int {
	if v == nil {
		return defaultRating
	}
	return *v
}

func validateHours(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number of hours", ErrInvalidEvent, field)
	}
	return nil
}

func validateRating(field string, v int) error {
	if v < minRating || v > maxRating {
		return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidEvent, field, minRating, maxRating)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/events/core/ports"

	"github.com/lib/pq"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var (
	_ ports.EventStorePort = (*EventRepository)(nil)
	_ ports.BatchAppender  = (*EventRepository)(nil)
)

const (
	insertColumns = 7
	// postgres caps bind parameters per statement at 65535
	maxBatchRows = 65535 / insertColumns
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS usage_events (
    id                       BIGSERIAL PRIMARY KEY,
    task_description         TEXT NOT NULL,
    ai_tool                  TEXT NOT NULL,
    time_spent_on_ai         DOUBLE PRECISION NOT NULL CHECK (time_spent_on_ai >= 0),
    creativity_impact        SMALLINT NOT NULL CHECK (creativity_impact BETWEEN 1 AND 5),
    time_saved               DOUBLE PRECISION NOT NULL CHECK (time_saved >= 0),
    skill_development_impact SMALLINT NOT NULL CHECK (skill_development_impact BETWEEN 1 AND 5),
    task_completion          TEXT NOT NULL CHECK (task_completion IN ('Completed', 'Incomplete')),
    logged_at                TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// SQL template
const insertEventSQL = `
INSERT INTO usage_events (
    task_description,
    ai_tool,
    time_spent_on_ai,
    creativity_impact,
    time_saved,
    skill_development_impact,
    task_completion
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7
);
`

const selectEventsSQL = `
SELECT
    task_description,
    ai_tool,
    time_spent_on_ai,
    creativity_impact,
    time_saved,
    skill_development_impact,
    task_completion
FROM usage_events
ORDER BY id
`

// EnsureSchema creates the usage_events table if it does not exist.
func (r *EventRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create usage_events: %w", err)
	}
	return nil
}

// Load creates the table on first access so that an empty database behaves
// like a missing file.
func (r *EventRepository) Load(ctx context.Context) (domain.EventTable, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, selectEventsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := domain.EventTable{}
	for rows.Next() {
		var (
			e          domain.UsageEvent
			completion string
		)
		if err := rows.Scan(
			&e.TaskDescription,
			&e.AiTool,
			&e.TimeSpentOnAi,
			&e.CreativityImpact,
			&e.TimeSaved,
			&e.SkillDevelopmentImpact,
			&completion,
		); err != nil {
			return nil, err
		}

		c, err := domain.ParseTaskCompletion(completion)
		if err != nil {
			return nil, &domain.ParseError{Line: len(table) + 1, Column: domain.Columns[6], Err: err}
		}
		e.TaskCompletion = c

		table = append(table, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

func (r *EventRepository) Append(ctx context.Context, e domain.UsageEvent) error {
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.TaskDescription,
		e.AiTool,
		e.TimeSpentOnAi,
		e.CreativityImpact,
		e.TimeSaved,
		e.SkillDevelopmentImpact,
		string(e.TaskCompletion),
	)
	if err != nil {
		return describePQError(err)
	}
	return nil
}

// AppendAll inserts events with one multi-row INSERT, which postgres applies
// atomically.
func (r *EventRepository) AppendAll(ctx context.Context, events []domain.UsageEvent) error {
	if len(events) == 0 {
		return nil
	}
	if len(events) > maxBatchRows {
		return fmt.Errorf("batch of %d events exceeds %d rows", len(events), maxBatchRows)
	}

	query, args := buildBatchInsert(events)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return describePQError(err)
	}
	return nil
}

func buildBatchInsert(events []domain.UsageEvent) (string, []any) {
	var b strings.Builder
	b.WriteString(`INSERT INTO usage_events (
    task_description,
    ai_tool,
    time_spent_on_ai,
    creativity_impact,
    time_saved,
    skill_development_impact,
    task_completion
) VALUES `)

	args := make([]any, 0, len(events)*insertColumns)
	for i, e := range events {
		if i > 0 {
			b.WriteString(", ")
		}
		n := i * insertColumns
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6, n+7)
		args = append(args,
			e.TaskDescription,
			e.AiTool,
			e.TimeSpentOnAi,
			e.CreativityImpact,
			e.TimeSaved,
			e.SkillDevelopmentImpact,
			string(e.TaskCompletion),
		)
	}
	return b.String(), args
}

// describePQError adds the violated constraint to check failures.
func describePQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return fmt.Errorf("insert usage event (%s %s): %w", pqErr.Code.Name(), pqErr.Constraint, err)
	}
	return err
}

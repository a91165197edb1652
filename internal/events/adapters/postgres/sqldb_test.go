package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-usage-tracker/internal/events/core/domain"
)

func TestSQLDB_RoundTripThroughDatabaseSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEventRepository(NewSQLDB(db))
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO usage_events")).
		WithArgs("report", "GPT-3", 2.0, 4, 1.5, 3, "Completed").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS usage_events")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM usage_events")).
		WillReturnRows(sqlmock.NewRows([]string{
			"task_description", "ai_tool", "time_spent_on_ai", "creativity_impact",
			"time_saved", "skill_development_impact", "task_completion",
		}).AddRow("report", "GPT-3", 2.0, 4, 1.5, 3, "Completed"))

	e := domain.UsageEvent{
		TaskDescription: "report", AiTool: "GPT-3", TimeSpentOnAi: 2,
		CreativityImpact: 4, TimeSaved: 1.5, SkillDevelopmentImpact: 3,
		TaskCompletion: domain.TaskCompleted,
	}
	require.NoError(t, repo.Append(ctx, e))

	table, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, e, table[0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	events "ai-usage-tracker/internal/events/core/domain"
	"ai-usage-tracker/internal/metrics/core/domain"
)

func ev(task, tool string, spent float64, creativity int, saved float64, skill int) events.UsageEvent {
	return events.UsageEvent{
		TaskDescription:        task,
		AiTool:                 tool,
		TimeSpentOnAi:          spent,
		CreativityImpact:       creativity,
		TimeSaved:              saved,
		SkillDevelopmentImpact: skill,
		TaskCompletion:         events.TaskCompleted,
	}
}

func sampleTable() events.EventTable {
	return events.EventTable{
		ev("report", "GPT-4", 2, 4, 1.5, 3),
		ev("email", "Claude", 0.5, 2, 0.25, 5),
		ev("report", "Claude", 1, 5, 2, 1),
		ev("slides", "GPT-4", 3, 1, 0, 2),
		ev("email", "Claude", 0.5, 2, 0.25, 5),
	}
}

func TestEmptyTable_AllScoresZero(t *testing.T) {
	var table events.EventTable

	assert.Zero(t, domain.AIDependenceScore(table))
	assert.Zero(t, domain.CreativityScore(table))
	assert.Zero(t, domain.ProductivityScore(table))
	assert.Zero(t, domain.TimeSaved(table))
	assert.Zero(t, domain.SkillDevelopmentImpact(table))
	assert.Empty(t, domain.TaskDistribution(table))
	assert.Empty(t, domain.ToolDistribution(table))
}

func TestWorkedExample(t *testing.T) {
	table := events.EventTable{
		{TimeSpentOnAi: 2, CreativityImpact: 4},
		{TimeSpentOnAi: 4, CreativityImpact: 2},
	}

	assert.InDelta(t, 3.0, domain.AIDependenceScore(table), 1e-9)
	assert.InDelta(t, 300.0, domain.ProductivityScore(table), 1e-9)
	assert.InDelta(t, 3.0, domain.CreativityScore(table), 1e-9)
}

func TestProductivityIsDependenceTimesHundred(t *testing.T) {
	tables := []events.EventTable{
		sampleTable(),
		{ev("a", "x", 0, 3, 0, 3)},
		{ev("a", "x", 0.1, 3, 0, 3), ev("b", "y", 0.2, 3, 0, 3), ev("c", "z", 7.3, 3, 0, 3)},
	}

	for _, table := range tables {
		assert.InDelta(t, domain.AIDependenceScore(table)*100, domain.ProductivityScore(table), 1e-9)
	}
}

func TestTimeSaved_SumsDuplicates(t *testing.T) {
	table := sampleTable()

	want := 0.0
	for _, e := range table {
		want += e.TimeSaved
	}
	assert.InDelta(t, want, domain.TimeSaved(table), 1e-9)
	assert.InDelta(t, 4.0, domain.TimeSaved(table), 1e-9)
}

func TestMeans(t *testing.T) {
	table := sampleTable()

	assert.InDelta(t, 14.0/5, domain.CreativityScore(table), 1e-9)
	assert.InDelta(t, 16.0/5, domain.SkillDevelopmentImpact(table), 1e-9)
	assert.InDelta(t, 7.0/5, domain.AIDependenceScore(table), 1e-9)
}

func TestTaskDistribution(t *testing.T) {
	table := sampleTable()

	d := domain.TaskDistribution(table)

	assert.Equal(t, table.Len(), d.Total())
	keys := make(map[string]bool, len(d))
	for _, b := range d {
		assert.False(t, keys[b.Key], "duplicate key %q", b.Key)
		keys[b.Key] = true
	}
	assert.Equal(t, domain.Distribution{
		{Key: "report", Count: 2},
		{Key: "email", Count: 2},
		{Key: "slides", Count: 1},
	}, d)
}

func TestToolDistribution(t *testing.T) {
	d := domain.ToolDistribution(sampleTable())

	assert.Equal(t, domain.Distribution{
		{Key: "Claude", Count: 3},
		{Key: "GPT-4", Count: 2},
	}, d)
}

func TestSeries(t *testing.T) {
	table := sampleTable()

	creativity := domain.CreativityPerTask(table)
	require.Len(t, creativity, table.Len())
	assert.Equal(t, domain.Point{Label: "report", Value: 4}, creativity[0])

	spent := domain.TimePerTask(table)
	assert.Equal(t, domain.Point{Label: "slides", Value: 3}, spent[3])

	overIndex := domain.TimeOverIndex(table)
	assert.Equal(t, domain.Point{Label: "4", Value: 0.5}, overIndex[4])
}

func TestSummarize(t *testing.T) {
	s := domain.Summarize(sampleTable())

	assert.Equal(t, 5, s.EventCount)
	assert.InDelta(t, 140.0, s.ProductivityScore, 1e-9)
	assert.Equal(t, "report", s.TaskDistribution[0].Key)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "3.00%", domain.FormatPercent(3))
	assert.Equal(t, "1.25 hours", domain.FormatHours(1.25))
	assert.Equal(t, "2.80", domain.FormatScore(2.8))
}

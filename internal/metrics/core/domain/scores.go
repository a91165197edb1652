package domain

import (
	"sort"
	"strconv"

	events "ai-usage-tracker/internal/events/core/domain"
)

// AIDependenceScore is the mean hours of AI use per logged task.
func AIDependenceScore(t events.EventTable) float64 {
	if t.Empty() {
		return 0
	}
	return sumTimeSpent(t) / float64(t.Len())
}

// CreativityScore is the mean creativity impact rating.
func CreativityScore(t events.EventTable) float64 {
	if t.Empty() {
		return 0
	}
	total := 0
	for _, e := range t {
		total += e.CreativityImpact
	}
	return float64(total) / float64(t.Len())
}

// ProductivityScore is AIDependenceScore scaled by 100. The two are
// proportional; both are kept because both are displayed.
func ProductivityScore(t events.EventTable) float64 {
	total := sumTimeSpent(t)
	if total <= 0 {
		return 0
	}
	return total / float64(t.Len()) * 100
}

// TimeSaved is the total hours saved over all rows.
func TimeSaved(t events.EventTable) float64 {
	total := 0.0
	for _, e := range t {
		total += e.TimeSaved
	}
	return total
}

// SkillDevelopmentImpact is the mean skill development rating.
func SkillDevelopmentImpact(t events.EventTable) float64 {
	if t.Empty() {
		return 0
	}
	total := 0
	for _, e := range t {
		total += e.SkillDevelopmentImpact
	}
	return float64(total) / float64(t.Len())
}

func TaskDistribution(t events.EventTable) Distribution {
	return countBy(t, func(e events.UsageEvent) string { return e.TaskDescription })
}

func ToolDistribution(t events.EventTable) Distribution {
	return countBy(t, func(e events.UsageEvent) string { return e.AiTool })
}

func CreativityPerTask(t events.EventTable) Series {
	s := make(Series, 0, t.Len())
	for _, e := range t {
		s = append(s, Point{Label: e.TaskDescription, Value: float64(e.CreativityImpact)})
	}
	return s
}

func TimePerTask(t events.EventTable) Series {
	s := make(Series, 0, t.Len())
	for _, e := range t {
		s = append(s, Point{Label: e.TaskDescription, Value: e.TimeSpentOnAi})
	}
	return s
}

// TimeOverIndex labels each row with its 0-based position in the log.
func TimeOverIndex(t events.EventTable) Series {
	s := make(Series, 0, t.Len())
	for i, e := range t {
		s = append(s, Point{Label: strconv.Itoa(i), Value: e.TimeSpentOnAi})
	}
	return s
}

func Summarize(t events.EventTable) Summary {
	return Summary{
		EventCount:             t.Len(),
		AIDependenceScore:      AIDependenceScore(t),
		CreativityScore:        CreativityScore(t),
		ProductivityScore:      ProductivityScore(t),
		TimeSaved:              TimeSaved(t),
		SkillDevelopmentImpact: SkillDevelopmentImpact(t),
		TaskDistribution:       TaskDistribution(t),
		ToolDistribution:       ToolDistribution(t),
	}
}

func BuildProgress(t events.EventTable) Progress {
	return Progress{
		Events:            t,
		Summary:           Summarize(t),
		CreativityPerTask: CreativityPerTask(t),
		TimePerTask:       TimePerTask(t),
		TimeOverIndex:     TimeOverIndex(t),
	}
}

func sumTimeSpent(t events.EventTable) float64 {
	total := 0.0
	for _, e := range t {
		total += e.TimeSpentOnAi
	}
	return total
}

func countBy(t events.EventTable, key func(events.UsageEvent) string) Distribution {
	index := make(map[string]int)
	d := Distribution{}
	for _, e := range t {
		k := key(e)
		if i, ok := index[k]; ok {
			d[i].Count++
			continue
		}
		index[k] = len(d)
		d = append(d, Bucket{Key: k, Count: 1})
	}

	sort.SliceStable(d, func(i, j int) bool { return d[i].Count > d[j].Count })
	return d
}

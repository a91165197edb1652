package domain

import (
	events "ai-usage-tracker/internal/events/core/domain"
)

// Summary is everything the dashboard shows for one table snapshot.
type Summary struct {
	EventCount             int
	AIDependenceScore      float64
	CreativityScore        float64
	ProductivityScore      float64
	TimeSaved              float64
	SkillDevelopmentImpact float64
	TaskDistribution       Distribution
	ToolDistribution       Distribution
}

// Bucket is one category of a Distribution.
type Bucket struct {
	Key   string
	Count int
}

// Distribution is ordered by count descending, ties by first appearance.
type Distribution []Bucket

// Total is the number of rows counted, the table length.
func (d Distribution) Total() int {
	n := 0
	for _, b := range d {
		n += b.Count
	}
	return n
}

// Point is one labelled value of a chart series.
type Point struct {
	Label string
	Value float64
}

// Series is a per-row chart input in table order.
type Series []Point

// Progress is the Progress view: the raw table plus every chart series.
type Progress struct {
	Events            events.EventTable
	Summary           Summary
	CreativityPerTask Series
	TimePerTask       Series
	TimeOverIndex     Series
}

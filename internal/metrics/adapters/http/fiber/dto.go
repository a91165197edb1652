package fiber

import eventsHttp "ai-usage-tracker/internal/events/adapters/http/fiber"

type ScoreResponse struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type BucketResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type PointResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type MetricsResponse struct {
	HasData                bool             `json:"has_data"`
	EventCount             int              `json:"event_count"`
	AIDependenceScore      ScoreResponse    `json:"ai_dependence_score"`
	CreativityScore        ScoreResponse    `json:"creativity_score"`
	ProductivityScore      ScoreResponse    `json:"productivity_score"`
	TimeSaved              ScoreResponse    `json:"time_saved"`
	SkillDevelopmentImpact ScoreResponse    `json:"skill_development_impact"`
	TaskDistribution       []BucketResponse `json:"task_distribution"`
	ToolDistribution       []BucketResponse `json:"tool_distribution"`
	Charts                 []string         `json:"charts,omitempty"`
}

type ProgressResponse struct {
	Events            []eventsHttp.EventResponse `json:"events"`
	Metrics           MetricsResponse            `json:"metrics"`
	CreativityPerTask []PointResponse            `json:"creativity_per_task"`
	TimePerTask       []PointResponse            `json:"time_per_task"`
	TimeOverIndex     []PointResponse            `json:"time_over_index"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"no_data"`
	Message string `json:"message" example:"No data available. Please log some AI usage first."`
}

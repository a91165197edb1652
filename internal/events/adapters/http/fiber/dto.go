package fiber

// CreateEventRequest represents one submission of the input form.
// Omitted ratings default to 3.
// @Description Usage event DTO
type CreateEventRequest struct {
	TaskDescription        string  `json:"task_description" example:"Developed a marketing report"`
	AiTool                 string  `json:"ai_tool" example:"GPT-3"`
	TimeSpentOnAi          float64 `json:"time_spent_on_ai" example:"1.5"`
	CreativityImpact       *int    `json:"creativity_impact,omitempty" example:"3"`
	TimeSaved              float64 `json:"time_saved" example:"2"`
	SkillDevelopmentImpact *int    `json:"skill_development_impact,omitempty" example:"3"`
	TaskCompletion         string  `json:"task_completion" example:"Completed" enums:"Completed,Incomplete"`
}

type EventResponse struct {
	TaskDescription        string  `json:"task_description"`
	AiTool                 string  `json:"ai_tool"`
	TimeSpentOnAi          float64 `json:"time_spent_on_ai"`
	CreativityImpact       int     `json:"creativity_impact"`
	TimeSaved              float64 `json:"time_saved"`
	SkillDevelopmentImpact int     `json:"skill_development_impact"`
	TaskCompletion         string  `json:"task_completion"`
}

type CreateEventResponse struct {
	Status  string        `json:"status" example:"created"`
	Message string        `json:"message,omitempty" example:"AI usage logged successfully!"`
	Event   EventResponse `json:"event"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created int `json:"created"`
}

type ListEventsResponse struct {
	Count  int             `json:"count"`
	Events []EventResponse `json:"events"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"creativity_impact must be between 1 and 5"`
}

package fiber

type GoalResponse struct {
	CurrentScore        float64 `json:"current_score" example:"3"`
	CurrentScoreDisplay string  `json:"current_score_display" example:"3.00%"`
	TargetPercent       int     `json:"target_percent" example:"10"`
	Progress            float64 `json:"progress" example:"0.03"`
	Met                 bool    `json:"met"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_target"`
	Message string `json:"message" example:"target must be between 0 and 100"`
}

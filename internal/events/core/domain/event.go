package domain

import (
	"fmt"
	"strings"
)

type TaskCompletion string

const (
	TaskCompleted  TaskCompletion = "Completed"
	TaskIncomplete TaskCompletion = "Incomplete"
)

func (c TaskCompletion) Valid() bool {
	return c == TaskCompleted || c == TaskIncomplete
}

// ParseTaskCompletion accepts the two form values case-insensitively.
func ParseTaskCompletion(s string) (TaskCompletion, error) {
	switch {
	case strings.EqualFold(s, string(TaskCompleted)):
		return TaskCompleted, nil
	case strings.EqualFold(s, string(TaskIncomplete)):
		return TaskIncomplete, nil
	default:
		return "", fmt.Errorf("unknown task completion %q", s)
	}
}

// UsageEvent is one logged use of an AI tool for a task.
type UsageEvent struct {
	TaskDescription        string
	AiTool                 string
	TimeSpentOnAi          float64 // hours
	CreativityImpact       int     // 1..5
	TimeSaved              float64 // hours
	SkillDevelopmentImpact int     // 1..5
	TaskCompletion         TaskCompletion
}

// EventTable holds events in log order.
type EventTable []UsageEvent

func (t EventTable) Len() int { return len(t) }

func (t EventTable) Empty() bool { return len(t) == 0 }

// Columns is the fixed table header, in storage order.
var Columns = []string{
	"Task Description",
	"AI Tool",
	"Time Spent on AI",
	"Creativity Impact",
	"Time Saved",
	"Skill Development Impact",
	"Task Completion",
}

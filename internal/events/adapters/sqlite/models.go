package sqlite

import (
	"time"

	"ai-usage-tracker/internal/events/core/domain"
)

// schemaMeta holds a single row (ID=1) with the table layout version.
type schemaMeta struct {
	ID            int       `gorm:"primaryKey"`
	SchemaVersion int       `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (schemaMeta) TableName() string { return "schema_meta" }

type usageEventRow struct {
	ID                     uint      `gorm:"primaryKey;autoIncrement"`
	TaskDescription        string    `gorm:"not null"`
	AiTool                 string    `gorm:"not null"`
	TimeSpentOnAi          float64   `gorm:"not null"`
	CreativityImpact       int       `gorm:"not null"`
	TimeSaved              float64   `gorm:"not null"`
	SkillDevelopmentImpact int       `gorm:"not null"`
	TaskCompletion         string    `gorm:"not null;size:16"`
	CreatedAt              time.Time `gorm:"autoCreateTime"`
}

func (usageEventRow) TableName() string { return "usage_events" }

func fromDomain(e domain.UsageEvent) usageEventRow {
	return usageEventRow{
		TaskDescription:        e.TaskDescription,
		AiTool:                 e.AiTool,
		TimeSpentOnAi:          e.TimeSpentOnAi,
		CreativityImpact:       e.CreativityImpact,
		TimeSaved:              e.TimeSaved,
		SkillDevelopmentImpact: e.SkillDevelopmentImpact,
		TaskCompletion:         string(e.TaskCompletion),
	}
}

func (r usageEventRow) toDomain() (domain.UsageEvent, error) {
	c, err := domain.ParseTaskCompletion(r.TaskCompletion)
	if err != nil {
		return domain.UsageEvent{}, err
	}
	return domain.UsageEvent{
		TaskDescription:        r.TaskDescription,
		AiTool:                 r.AiTool,
		TimeSpentOnAi:          r.TimeSpentOnAi,
		CreativityImpact:       r.CreativityImpact,
		TimeSaved:              r.TimeSaved,
		SkillDevelopmentImpact: r.SkillDevelopmentImpact,
		TaskCompletion:         c,
	}, nil
}

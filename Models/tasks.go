package Models

import (
	"time"

	"gorm.io/gorm"
)

// TaskTemplate is a recurring task definition. Templates are never
// deleted, only deactivated, so completed history stays attached.
type TaskTemplate struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null;uniqueIndex"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`
}

// DailyTask is one occurrence of a template on one logical date. The
// composite unique index doubles as the concurrency guard during
// reconciliation: a second writer's insert simply collides and is
// ignored.
type DailyTask struct {
	gorm.Model
	TaskID      uint       `json:"task_id" gorm:"not null;index;uniqueIndex:uniq_task_day"`
	TaskDate    time.Time  `json:"task_date" gorm:"not null;index;uniqueIndex:uniq_task_day"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	CompletedAt *time.Time `json:"completed_at"`
}

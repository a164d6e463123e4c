package Models

import "time"

// DaySummary is a denormalized rollup of one logical date. It is a
// cache of a recount over DailyTask rows and is always rewritten from
// those rows, never patched incrementally.
type DaySummary struct {
	Date           time.Time `json:"date" gorm:"primaryKey"`
	TotalTasks     int       `json:"total_tasks" gorm:"not null"`
	CompletedTasks int       `json:"completed_tasks" gorm:"not null"`
	CompletionPct  float64   `json:"completion_pct" gorm:"not null"`
}

package Services

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"DailyTodo/Clock"
	"DailyTodo/Models"
)

// EnsureDayExists materializes daily tasks and the summary row for the
// given logical date (nil means today). Safe to call any number of
// times, including concurrently: inserts ride on the
// (task_id, task_date) unique index and a losing writer's conflict is
// absorbed as already-done. Instances and summary commit as one unit,
// so a crash mid-reconcile never leaves new instances without their
// summary rewrite.
func EnsureDayExists(db *gorm.DB, targetDate *time.Time) error {
	date := Clock.LogicalDate()
	if targetDate != nil {
		date = Clock.DateOf(*targetDate)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := generateDailyTasks(tx, date); err != nil {
			return err
		}
		return refreshDaySummary(tx, date)
	})
}

func generateDailyTasks(db *gorm.DB, date time.Time) error {
	var templates []Models.TaskTemplate
	if err := db.Where("is_active = ?", true).Find(&templates).Error; err != nil {
		return fmt.Errorf("loading active templates: %w", err)
	}

	for _, template := range templates {
		task := Models.DailyTask{
			TaskID:   template.ID,
			TaskDate: date,
		}
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&task)
		if result.Error != nil {
			return fmt.Errorf("creating daily task for template %d: %w", template.ID, result.Error)
		}
	}
	return nil
}

// refreshDaySummary rewrites the summary row for date from a full
// recount of its daily tasks. Always a full overwrite so the cached
// rollup cannot drift from the source rows. Instances of templates
// deactivated mid-day still count: deactivation only affects future
// reconciliation.
func refreshDaySummary(db *gorm.DB, date time.Time) error {
	var total int64
	if err := db.Model(&Models.DailyTask{}).
		Where("task_date = ?", date).
		Count(&total).Error; err != nil {
		return fmt.Errorf("counting daily tasks: %w", err)
	}

	var completed int64
	if err := db.Model(&Models.DailyTask{}).
		Where("task_date = ? AND completed = ?", date, true).
		Count(&completed).Error; err != nil {
		return fmt.Errorf("counting completed tasks: %w", err)
	}

	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}

	summary := Models.DaySummary{
		Date:           date,
		TotalTasks:     int(total),
		CompletedTasks: int(completed),
		CompletionPct:  pct,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(&summary).Error; err != nil {
		return fmt.Errorf("upserting day summary: %w", err)
	}
	return nil
}

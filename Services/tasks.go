package Services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"DailyTodo/Clock"
	"DailyTodo/Models"
)

var validate = validator.New()

// CreateTemplateInput is the payload for creating a task template.
type CreateTemplateInput struct {
	Name string `json:"name" form:"name" validate:"required"`
}

// TodayTask pairs a daily task with its template name for display.
type TodayTask struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// GetTodayTasks returns the current logical day's task instances joined
// with their template names.
func GetTodayTasks(db *gorm.DB) ([]TodayTask, error) {
	today := Clock.LogicalDate()

	var tasks []TodayTask
	err := db.Model(&Models.DailyTask{}).
		Select("daily_tasks.id, task_templates.name, daily_tasks.completed, daily_tasks.completed_at").
		Joins("JOIN task_templates ON task_templates.id = daily_tasks.task_id").
		Where("daily_tasks.task_date = ?", today).
		Order("task_templates.name").
		Scan(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("loading today's tasks: %w", err)
	}
	return tasks, nil
}

// CreateTaskTemplate adds a new recurring task and reconciles today so
// the task shows up immediately instead of after the next day boundary.
func CreateTaskTemplate(db *gorm.DB, input CreateTemplateInput) (*Models.TaskTemplate, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validate.Struct(input); err != nil {
		return nil, &ValidationError{Message: "task name cannot be empty"}
	}

	var count int64
	if err := db.Model(&Models.TaskTemplate{}).
		Where("name = ?", input.Name).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("checking template name: %w", err)
	}
	if count > 0 {
		return nil, &ValidationError{Message: "a task with this name already exists"}
	}

	template := Models.TaskTemplate{Name: input.Name, IsActive: true}
	if err := db.Create(&template).Error; err != nil {
		// Racing create can still hit the unique name index.
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, &ValidationError{Message: "a task with this name already exists"}
		}
		return nil, fmt.Errorf("creating template: %w", err)
	}

	if err := EnsureDayExists(db, nil); err != nil {
		return nil, err
	}
	return &template, nil
}

// ToggleTaskTemplate flips a template's active flag. Only future
// reconciliation is affected; already-materialized instances stay.
func ToggleTaskTemplate(db *gorm.DB, id uint) (*Models.TaskTemplate, error) {
	var template Models.TaskTemplate
	if err := db.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "task template", ID: id}
		}
		return nil, fmt.Errorf("loading template %d: %w", id, err)
	}

	template.IsActive = !template.IsActive
	if err := db.Model(&template).Update("is_active", template.IsActive).Error; err != nil {
		return nil, fmt.Errorf("toggling template %d: %w", id, err)
	}
	return &template, nil
}

// CompleteTask marks a daily task as done. Only today's tasks are
// mutable, completion is terminal, and repeated calls are no-ops so
// retried client requests never double-count.
func CompleteTask(db *gorm.DB, id uint) (*Models.DailyTask, error) {
	var task Models.DailyTask
	if err := db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "daily task", ID: id}
		}
		return nil, fmt.Errorf("loading daily task %d: %w", id, err)
	}

	if !Clock.IsToday(task.TaskDate) {
		return nil, &ImmutableStateError{Message: "cannot modify past or future tasks"}
	}

	if task.Completed {
		return &task, nil
	}

	now := Clock.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&task).Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": now,
		}).Error; err != nil {
			return fmt.Errorf("completing daily task %d: %w", id, err)
		}
		return recountCompleted(tx, task.TaskDate)
	})
	if err != nil {
		return nil, err
	}

	task.Completed = true
	task.CompletedAt = &now
	return &task, nil
}

// recountCompleted refreshes the completed count and percentage on an
// existing summary row. The stored total is reused as-is: a template
// deactivated after the morning reconcile keeps its slot until the next
// full reconcile.
func recountCompleted(tx *gorm.DB, date time.Time) error {
	var summary Models.DaySummary
	if err := tx.Where("date = ?", date).First(&summary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No summary yet; the next reconcile will build it.
			return nil
		}
		return fmt.Errorf("loading day summary: %w", err)
	}

	var completed int64
	if err := tx.Model(&Models.DailyTask{}).
		Where("task_date = ? AND completed = ?", date, true).
		Count(&completed).Error; err != nil {
		return fmt.Errorf("counting completed tasks: %w", err)
	}

	pct := 0.0
	if summary.TotalTasks > 0 {
		pct = float64(completed) / float64(summary.TotalTasks) * 100
	}

	return tx.Model(&Models.DaySummary{}).
		Where("date = ?", date).
		Updates(map[string]interface{}{
			"completed_tasks": int(completed),
			"completion_pct":  pct,
		}).Error
}

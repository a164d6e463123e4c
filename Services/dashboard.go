package Services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"DailyTodo/Clock"
	"DailyTodo/Models"
)

// Progress is the completion state of a single day.
type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// ConsistencyEntry is one template's completion rate across its whole
// history.
type ConsistencyEntry struct {
	Task    string  `json:"task"`
	Percent float64 `json:"percent"`
}

// DashboardData aggregates everything the dashboard page needs.
type DashboardData struct {
	Today           Progress            `json:"today"`
	CurrentStreak   int                 `json:"current_streak"`
	BestStreak      int                 `json:"best_streak"`
	Weekly          []Models.DaySummary `json:"weekly"`
	TaskConsistency []ConsistencyEntry  `json:"task_consistency"`
}

// TodayProgress returns today's completion counts, or zeros when no
// summary exists yet.
func TodayProgress(db *gorm.DB) (Progress, error) {
	today := Clock.LogicalDate()

	var summary Models.DaySummary
	if err := db.Where("date = ?", today).First(&summary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Progress{}, nil
		}
		return Progress{}, fmt.Errorf("loading today's summary: %w", err)
	}
	if summary.TotalTasks == 0 {
		return Progress{}, nil
	}

	return Progress{
		Completed: summary.CompletedTasks,
		Total:     summary.TotalTasks,
		Percent:   summary.CompletionPct,
	}, nil
}

// CurrentStreak counts consecutive 100% days ending at today. The walk
// stops at the first missing or incomplete day.
func CurrentStreak(db *gorm.DB) (int, error) {
	streak := 0
	cursor := Clock.LogicalDate()

	for {
		var summary Models.DaySummary
		if err := db.Where("date = ?", cursor).First(&summary).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return streak, nil
			}
			return 0, fmt.Errorf("loading summary for %s: %w", cursor.Format("2006-01-02"), err)
		}
		if summary.CompletionPct < 100 {
			return streak, nil
		}

		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// BestStreak scans all summaries in date order and tracks the longest
// run of 100% days. Only exact next-day adjacency between 100% rows
// continues a run; a gap with no summary at all breaks it.
func BestStreak(db *gorm.DB) (int, error) {
	var summaries []Models.DaySummary
	if err := db.Order("date").Find(&summaries).Error; err != nil {
		return 0, fmt.Errorf("loading summaries: %w", err)
	}

	best := 0
	current := 0
	var lastDate *Models.DaySummary

	for i := range summaries {
		s := &summaries[i]
		if s.CompletionPct == 100 {
			if lastDate != nil && lastDate.Date.AddDate(0, 0, 1).Equal(s.Date) {
				current++
			} else {
				current = 1
			}
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
		lastDate = s
	}

	return best, nil
}

// WeeklySummary returns summaries in the inclusive window
// [today-(days-1), today], oldest first. Days without a summary are
// simply absent, not zero-filled.
func WeeklySummary(db *gorm.DB, days int) ([]Models.DaySummary, error) {
	today := Clock.LogicalDate()
	start := today.AddDate(0, 0, -(days - 1))

	var summaries []Models.DaySummary
	if err := db.Where("date >= ? AND date <= ?", start, today).
		Order("date").
		Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("loading weekly summaries: %w", err)
	}
	return summaries, nil
}

// TaskConsistency computes each template's lifetime completion rate.
// Templates that never materialized an instance are omitted.
func TaskConsistency(db *gorm.DB) ([]ConsistencyEntry, error) {
	var templates []Models.TaskTemplate
	if err := db.Order("name").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	results := []ConsistencyEntry{}
	for _, template := range templates {
		var total int64
		if err := db.Model(&Models.DailyTask{}).
			Where("task_id = ?", template.ID).
			Count(&total).Error; err != nil {
			return nil, fmt.Errorf("counting instances for %q: %w", template.Name, err)
		}
		if total == 0 {
			continue
		}

		var completed int64
		if err := db.Model(&Models.DailyTask{}).
			Where("task_id = ? AND completed = ?", template.ID, true).
			Count(&completed).Error; err != nil {
			return nil, fmt.Errorf("counting completions for %q: %w", template.Name, err)
		}

		percent := float64(completed) / float64(total) * 100
		results = append(results, ConsistencyEntry{
			Task:    template.Name,
			Percent: math.Round(percent*10) / 10,
		})
	}

	return results, nil
}

// GetDashboardData assembles the full dashboard payload.
func GetDashboardData(db *gorm.DB) (*DashboardData, error) {
	today, err := TodayProgress(db)
	if err != nil {
		return nil, err
	}
	currentStreak, err := CurrentStreak(db)
	if err != nil {
		return nil, err
	}
	bestStreak, err := BestStreak(db)
	if err != nil {
		return nil, err
	}
	weekly, err := WeeklySummary(db, 7)
	if err != nil {
		return nil, err
	}
	consistency, err := TaskConsistency(db)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Today:           today,
		CurrentStreak:   currentStreak,
		BestStreak:      bestStreak,
		Weekly:          weekly,
		TaskConsistency: consistency,
	}, nil
}

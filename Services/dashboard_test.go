package Services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"DailyTodo/Models"
)

func seedSummary(t *testing.T, db *gorm.DB, day time.Time, total, completed int) {
	t.Helper()
	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}
	require.NoError(t, db.Create(&Models.DaySummary{
		Date:           day,
		TotalTasks:     total,
		CompletedTasks: completed,
		CompletionPct:  pct,
	}).Error)
}

func TestTodayProgressWithoutSummary(t *testing.T) {
	db := newTestDB(t)
	setClock(t, localTime(2024, time.January, 10, 12, 0))

	progress, err := TodayProgress(db)
	require.NoError(t, err)
	assert.Equal(t, Progress{}, progress)
}

func TestTodayProgress(t *testing.T) {
	db := newTestDB(t)
	setClock(t, localTime(2024, time.January, 10, 12, 0))

	seedSummary(t, db, date(2024, time.January, 10), 4, 3)

	progress, err := TodayProgress(db)
	require.NoError(t, err)
	assert.Equal(t, 3, progress.Completed)
	assert.Equal(t, 4, progress.Total)
	assert.Equal(t, 75.0, progress.Percent)
}

func TestStreaksWithGap(t *testing.T) {
	db := newTestDB(t)
	setClock(t, localTime(2024, time.January, 5, 12, 0))

	// Jan 1-3 perfect, Jan 4 missing entirely, Jan 5 perfect.
	seedSummary(t, db, date(2024, time.January, 1), 2, 2)
	seedSummary(t, db, date(2024, time.January, 2), 2, 2)
	seedSummary(t, db, date(2024, time.January, 3), 2, 2)
	seedSummary(t, db, date(2024, time.January, 5), 2, 2)

	current, err := CurrentStreak(db)
	require.NoError(t, err)
	assert.Equal(t, 1, current)

	best, err := BestStreak(db)
	require.NoError(t, err)
	assert.Equal(t, 3, best)
}

func TestCurrentStreakStopsAtIncompleteDay(t *testing.T) {
	db := newTestDB(t)
	setClock(t, localTime(2024, time.January, 5, 12, 0))

	seedSummary(t, db, date(2024, time.January, 3), 2, 1)
	seedSummary(t, db, date(2024, time.January, 4), 2, 2)
	seedSummary(t, db, date(2024, time.January, 5), 2, 2)

	current, err := CurrentStreak(db)
	require.NoError(t, err)
	assert.Equal(t, 2, current)
}

func TestCurrentStreakZeroWhenTodayIncomplete(t *testing.T) {
	db := newTestDB(t)
	setClock(t, localTime(2024, time.January, 5, 12, 0))

	seedSummary(t, db, date(2024, time.January, 5), 2, 1)

	current, err := CurrentStreak(db)
	require.NoError(t, err)
	assert.Equal(t, 0, current)
}

func TestBestStreakResetsOnIncompleteDay(t *testing.T) {
	db := newTestDB(t)
	setClock(t, localTime(2024, time.January, 10, 12, 0))

	seedSummary(t, db, date(2024, time.January, 1), 1, 1)
	seedSummary(t, db, date(2024, time.January, 2), 2, 1)
	seedSummary(t, db, date(2024, time.January, 3), 1, 1)
	seedSummary(t, db, date(2024, time.January, 4), 1, 1)

	best, err := BestStreak(db)
	require.NoError(t, err)
	assert.Equal(t, 2, best)
}

func TestWeeklySummaryWindow(t *testing.T) {
	db := newTestDB(t)
	setClock(t, localTime(2024, time.January, 10, 12, 0))

	// Jan 3 is one day outside the 7-day window ending today.
	seedSummary(t, db, date(2024, time.January, 3), 2, 2)
	seedSummary(t, db, date(2024, time.January, 4), 2, 1)
	seedSummary(t, db, date(2024, time.January, 7), 2, 2)
	seedSummary(t, db, date(2024, time.January, 10), 2, 0)

	weekly, err := WeeklySummary(db, 7)
	require.NoError(t, err)
	require.Len(t, weekly, 3)
	assert.Equal(t, date(2024, time.January, 4), weekly[0].Date)
	assert.Equal(t, date(2024, time.January, 7), weekly[1].Date)
	assert.Equal(t, date(2024, time.January, 10), weekly[2].Date)
}

func TestTaskConsistency(t *testing.T) {
	db := newTestDB(t)
	setClock(t, localTime(2024, time.January, 20, 12, 0))

	exercise := Models.TaskTemplate{Name: "Exercise", IsActive: true}
	require.NoError(t, db.Create(&exercise).Error)
	unused := Models.TaskTemplate{Name: "Unused", IsActive: false}
	require.NoError(t, db.Create(&unused).Error)

	for day := 1; day <= 10; day++ {
		task := Models.DailyTask{
			TaskID:    exercise.ID,
			TaskDate:  date(2024, time.January, day),
			Completed: day <= 7,
		}
		require.NoError(t, db.Create(&task).Error)
	}

	consistency, err := TaskConsistency(db)
	require.NoError(t, err)
	require.Len(t, consistency, 1)
	assert.Equal(t, "Exercise", consistency[0].Task)
	assert.Equal(t, 70.0, consistency[0].Percent)
}

func TestGetDashboardData(t *testing.T) {
	db := newTestDB(t)
	setClock(t, localTime(2024, time.January, 10, 12, 0))

	_, err := CreateTaskTemplate(db, CreateTemplateInput{Name: "Exercise"})
	require.NoError(t, err)

	tasks, err := GetTodayTasks(db)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	_, err = CompleteTask(db, tasks[0].ID)
	require.NoError(t, err)

	data, err := GetDashboardData(db)
	require.NoError(t, err)
	assert.Equal(t, 1, data.Today.Completed)
	assert.Equal(t, 100.0, data.Today.Percent)
	assert.Equal(t, 1, data.CurrentStreak)
	assert.Equal(t, 1, data.BestStreak)
	require.Len(t, data.Weekly, 1)
	require.Len(t, data.TaskConsistency, 1)
	assert.Equal(t, 100.0, data.TaskConsistency[0].Percent)
}

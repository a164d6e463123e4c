package Services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"DailyTodo/Clock"
	"DailyTodo/Models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	// Busy timeout lets concurrent writers wait for the lock instead of
	// failing immediately.
	db, err := gorm.Open(sqlite.Open(dbPath+"?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))
	return db
}

// setClock pins the logical clock for the duration of a test.
func setClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := Clock.Now
	Clock.Now = func() time.Time { return at.In(Clock.Location) }
	t.Cleanup(func() { Clock.Now = orig })
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func localTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, Clock.Location)
}

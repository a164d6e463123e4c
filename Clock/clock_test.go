package Clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := Now
	Now = func() time.Time { return at.In(Location) }
	t.Cleanup(func() { Now = orig })
}

func TestLogicalDateBeforeResetHour(t *testing.T) {
	// 02:59 still belongs to the previous logical day.
	setNow(t, time.Date(2024, time.January, 10, 2, 59, 0, 0, Location))
	assert.Equal(t, time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC), LogicalDate())
}

func TestLogicalDateAtResetHour(t *testing.T) {
	setNow(t, time.Date(2024, time.January, 10, 3, 0, 0, 0, Location))
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), LogicalDate())
}

func TestLogicalDateCrossesMonthBoundary(t *testing.T) {
	setNow(t, time.Date(2024, time.March, 1, 1, 30, 0, 0, Location))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), LogicalDate())
}

func TestDateOfNormalizesToMidnightUTC(t *testing.T) {
	stamp := time.Date(2024, time.January, 10, 23, 45, 12, 0, Location)
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), DateOf(stamp))
}

func TestIsToday(t *testing.T) {
	setNow(t, time.Date(2024, time.January, 10, 12, 0, 0, 0, Location))

	assert.True(t, IsToday(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsToday(time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsToday(time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)))
}

package Clock

import (
	"log"
	"os"
	"strconv"
	"time"
)

// The logical day starts at ResetHour local time rather than midnight,
// so finishing tasks at 01:30 still counts toward the previous day.
var (
	Location  = time.FixedZone("IST", 5*3600+1800)
	ResetHour = 3

	// Now is the only wall-clock access in the whole application.
	// Tests swap it out for deterministic dates.
	Now = func() time.Time { return time.Now().In(Location) }
)

// Configure reads TIMEZONE and DAY_RESET_HOUR from the environment.
// Called once at startup, after the .env file is loaded.
func Configure() {
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("Invalid TIMEZONE %q, keeping default: %v", tz, err)
		} else {
			Location = loc
		}
	}
	if raw := os.Getenv("DAY_RESET_HOUR"); raw != "" {
		hour, err := strconv.Atoi(raw)
		if err != nil || hour < 0 || hour > 23 {
			log.Printf("Invalid DAY_RESET_HOUR %q, keeping default", raw)
		} else {
			ResetHour = hour
		}
	}
}

// LogicalDate returns the calendar date of the current logical day.
// Before the reset hour the logical day is still yesterday.
func LogicalDate() time.Time {
	now := Now().In(Location)
	if now.Hour() < ResetHour {
		now = now.AddDate(0, 0, -1)
	}
	return DateOf(now)
}

// DateOf truncates a timestamp to its calendar date, normalized to
// midnight UTC so dates compare and index as exact values.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsToday reports whether d is the current logical date.
func IsToday(d time.Time) bool {
	return DateOf(d).Equal(LogicalDate())
}

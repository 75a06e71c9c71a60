package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hallboard/schoolfeed/infra/logger"
)

func TestResolveDate(t *testing.T) {
	now := time.Date(2024, 7, 25, 14, 30, 0, 0, time.Local)

	got := ResolveDate("2024-07-22", now, logger.NopLogger{})
	assert.Equal(t, "2024-07-22", ISODate(got))

	got = ResolveDate("", now, logger.NopLogger{})
	assert.Equal(t, now, got)

	got = ResolveDate("not-a-date", now, logger.NopLogger{})
	assert.Equal(t, now, got, "invalid date must fall back to now")
}

func TestMondayOf(t *testing.T) {
	// 2024-07-22 is a Monday.
	start := time.Date(2024, 7, 22, 0, 0, 0, 0, time.Local)
	for i := 0; i < 28; i++ {
		d := start.AddDate(0, 0, i).Add(9 * time.Hour)
		monday := MondayOf(d)
		if monday.Weekday() != time.Monday {
			t.Fatalf("MondayOf(%s) = %s, not a Monday", ISODate(d), ISODate(monday))
		}
		if d.Before(monday) || d.After(monday.AddDate(0, 0, 7)) {
			t.Fatalf("%s outside week starting %s", ISODate(d), ISODate(monday))
		}
		assert.Equal(t, 0, monday.Hour(), "time of day must be zeroed")
	}
}

func TestMondayOfSunday(t *testing.T) {
	sunday := time.Date(2024, 7, 28, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-07-22", ISODate(MondayOf(sunday)))
}

func TestWeekdayName(t *testing.T) {
	d := time.Date(2024, 7, 22, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "Monday", WeekdayName(d))
	assert.Equal(t, "Sunday", WeekdayName(d.AddDate(0, 0, 6)))
}

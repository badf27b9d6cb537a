package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartAndEndOfDay(t *testing.T) {
	// 2025-07-01 01:00 UTC is 06:30 IST the same day.
	at := time.Date(2025, 7, 1, 1, 0, 0, 0, time.UTC)

	start := StartOfDay(at)
	end := EndOfDay(at)

	assert.Equal(t, "2025-07-01 00:00:00", start.Format(DateTimeLayout))
	assert.Equal(t, "2025-07-01 23:59:59", end.Format(DateTimeLayout))
}

func TestStartOfDayCrossesUTCDate(t *testing.T) {
	// 2025-06-30 20:00 UTC is already 2025-07-01 in IST.
	at := time.Date(2025, 6, 30, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-01", StartOfDay(at).Format(DateLayout))
}

func TestWeekRange(t *testing.T) {
	// 2025-07-02 is a Wednesday.
	at := time.Date(2025, 7, 2, 12, 0, 0, 0, IST)

	start, end := WeekRange(at)

	assert.Equal(t, "2025-06-30", start.Format(DateLayout))
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, "2025-07-06", end.Format(DateLayout))
}

func TestWeekRangeSundayBelongsToPrecedingMonday(t *testing.T) {
	// 2025-07-06 is a Sunday.
	at := time.Date(2025, 7, 6, 8, 0, 0, 0, IST)

	start, _ := WeekRange(at)
	assert.Equal(t, "2025-06-30", start.Format(DateLayout))
}

func TestMonthRange(t *testing.T) {
	at := time.Date(2025, 2, 14, 12, 0, 0, 0, IST)

	start, end := MonthRange(at)

	assert.Equal(t, "2025-02-01", start.Format(DateLayout))
	assert.Equal(t, "2025-02-28", end.Format(DateLayout))
}

func TestParseInIST(t *testing.T) {
	parsed, err := ParseInIST(DateLayout, "2025-07-01")

	assert.NoError(t, err)
	assert.Equal(t, IST, parsed.Location())
	assert.Equal(t, "2025-07-01 00:00:00", parsed.Format(DateTimeLayout))
}

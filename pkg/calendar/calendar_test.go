package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWorkingDay(t *testing.T) {
	// 2025-01-06 is a Monday
	for i := 0; i < 5; i++ {
		d := time.Date(2025, 1, 6+i, 0, 0, 0, 0, time.UTC)
		assert.True(t, IsWorkingDay(d), "%s should be a working day", d.Weekday())
	}
	assert.False(t, IsWorkingDay(time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC))) // Saturday
	assert.False(t, IsWorkingDay(time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC))) // Sunday
}

func TestDaysInMonth(t *testing.T) {
	days := DaysInMonth(2025, time.January)
	require.Len(t, days, 31)
	assert.Equal(t, 1, days[0].Day())
	assert.Equal(t, 31, days[30].Day())

	assert.Len(t, DaysInMonth(2025, time.February), 28)
	assert.Len(t, DaysInMonth(2024, time.February), 29) // leap year
}

func TestFirstWorkingDayOfMonth(t *testing.T) {
	// 2025-02-01 is a Saturday, so the first working day is Monday the 3rd
	d, err := FirstWorkingDayOfMonth(2025, time.February)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Day())

	// 2025-01-01 is a Wednesday
	d, err = FirstWorkingDayOfMonth(2025, time.January)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Day())
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*3600)
	a := time.Date(2025, 3, 10, 23, 45, 0, 0, loc)
	b := time.Date(2025, 3, 10, 1, 0, 0, 0, loc)
	assert.Equal(t, DateOnly(a), DateOnly(b))
	assert.Equal(t, "2025-03-10", DateOnly(a).Format("2006-01-02"))
}

func TestDateKey(t *testing.T) {
	d := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "7-2025-03-10", DateKey(7, d))
}

func TestMonthNameES(t *testing.T) {
	assert.Equal(t, "Enero", MonthNameES(time.January))
	assert.Equal(t, "Diciembre", MonthNameES(time.December))
}

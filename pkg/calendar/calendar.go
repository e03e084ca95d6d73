package calendar

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoWorkingDay = errors.New("month has no working day")

var monthNamesES = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// DateOnly strips the time-of-day and timezone so two timestamps on the
// same calendar day compare equal.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWorkingDay reports whether d falls on Monday through Friday.
func IsWorkingDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// DaysInMonth returns every calendar day of the month, ascending.
func DaysInMonth(year int, month time.Month) []time.Time {
	var days []time.Time
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Month() == month {
		days = append(days, d)
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// FirstWorkingDayOfMonth returns the first Monday-to-Friday day of the
// month. No real calendar month lacks one, but the contract stays explicit.
func FirstWorkingDayOfMonth(year int, month time.Month) (time.Time, error) {
	for _, d := range DaysInMonth(year, month) {
		if IsWorkingDay(d) {
			return d, nil
		}
	}
	return time.Time{}, ErrNoWorkingDay
}

// DateKey builds the day-precision dedup key for an (activity, date) pair.
func DateKey(activityID uint, d time.Time) string {
	return fmt.Sprintf("%d-%s", activityID, d.Format("2006-01-02"))
}

// MonthNameES returns the capitalized Spanish month name, as shown in the
// detailed report.
func MonthNameES(m time.Month) string {
	return monthNamesES[m-1]
}

// FormatDateES renders a date the way the report displays it (dd/mm/yyyy).
func FormatDateES(d time.Time) string {
	return d.Format("02/01/2006")
}

package calculator

import (
	"fmt"
	"time"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

// Day truncates t to UTC midnight of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextCycleRange returns the date range of the cycle that follows a cycle ending on prevEnd.
// The new cycle starts the day after prevEnd and ends the day before the next payday.
func NextCycleRange(prevEnd time.Time, rule models.PayRule) (start, end time.Time, err error) {
	return CycleRangeFrom(Day(prevEnd).AddDate(0, 0, 1), rule)
}

// CycleRangeFrom returns a cycle starting on start and ending the day before the
// first payday strictly after start.
func CycleRangeFrom(start time.Time, rule models.PayRule) (time.Time, time.Time, error) {
	start = Day(start)
	payday, err := NextPayday(start, rule)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, payday.AddDate(0, 0, -1), nil
}

// NextPayday returns the first payday strictly after from.
func NextPayday(from time.Time, rule models.PayRule) (time.Time, error) {
	from = Day(from)
	switch rule.Type {
	case models.PayCycleWeekly:
		return from.AddDate(0, 0, 7), nil
	case models.PayCycleFortnightly:
		return from.AddDate(0, 0, 14), nil
	case models.PayCycleEvery4Weeks:
		return from.AddDate(0, 0, 28), nil
	case models.PayCycleSpecificDate:
		if rule.PayDay < 1 || rule.PayDay > 31 {
			return time.Time{}, fmt.Errorf("pay day must be between 1 and 31, got %d", rule.PayDay)
		}
		candidate := clampedDay(from.Year(), from.Month(), rule.PayDay)
		if !candidate.After(from) {
			candidate = clampedDay(from.Year(), from.Month()+1, rule.PayDay)
		}
		return candidate, nil
	case models.PayCycleLastWorkingDay:
		candidate := lastWorkingDay(from.Year(), from.Month())
		if !candidate.After(from) {
			candidate = lastWorkingDay(from.Year(), from.Month()+1)
		}
		return candidate, nil
	}
	return time.Time{}, fmt.Errorf("unknown pay cycle type: %q", rule.Type)
}

// CycleName labels a cycle by its start date.
func CycleName(start time.Time) string {
	return start.Format("2 Jan 2006")
}

// clampedDay returns day of the given month, clamped to the month's length.
// month may overflow into the next year.
func clampedDay(year int, month time.Month, day int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// lastWorkingDay returns the last Monday-to-Friday day of the month.
func lastWorkingDay(year int, month time.Month) time.Time {
	d := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

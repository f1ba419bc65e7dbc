package domain

import "time"

// Week is the Sunday–Thursday work week: Start is Sunday 00:00:00.000 and
// End is Thursday 23:59:59.999, both in local time. A Week is a value;
// navigation always computes a new one.
type Week struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Equal reports whether two weeks start at the same instant.
func (w Week) Equal(other Week) bool {
	return w.Start.Equal(other.Start)
}

// Contains reports whether d falls inside the week (inclusive).
func (w Week) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// WeekBounds computes the work week bounding d. Sunday–Thursday dates snap
// back to their own Sunday; Friday and Saturday have no current work week and
// roll forward to the next Sunday.
func WeekBounds(d time.Time) Week {
	day := startOfDay(d)
	switch day.Weekday() {
	case time.Friday:
		day = day.AddDate(0, 0, 2)
	case time.Saturday:
		day = day.AddDate(0, 0, 1)
	default:
		day = day.AddDate(0, 0, -int(day.Weekday()))
	}
	end := day.AddDate(0, 0, 4)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, end.Location())
	return Week{Start: day, End: end}
}

// CurrentWeek returns the work week bounding the current wall-clock date.
func CurrentWeek() Week {
	return WeekBounds(time.Now())
}

// NextWeek returns the work week after w.
func NextWeek(w Week) Week {
	return WeekBounds(w.Start.AddDate(0, 0, 7))
}

// PreviousWeek returns the work week before w.
func PreviousWeek(w Week) Week {
	return WeekBounds(w.Start.AddDate(0, 0, -7))
}

// WeekDates enumerates the five dates of the week starting at start, Sunday
// through Thursday. A zero start yields an empty slice, which callers treat
// as "no columns", not an error.
func WeekDates(start time.Time) []time.Time {
	if start.IsZero() {
		return nil
	}
	dates := make([]time.Time, 5)
	day := startOfDay(start)
	for i := range dates {
		dates[i] = day.AddDate(0, 0, i)
	}
	return dates
}

// IsSameDay reports calendar-day equality in local time, ignoring time of day.
func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether d is the current calendar day.
func IsToday(d time.Time) bool {
	return IsSameDay(d, time.Now())
}

func startOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

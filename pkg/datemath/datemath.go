package datemath

import "time"

// StartOfDay returns midnight at the start of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 at the end of t's calendar day, in t's location.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// RecencyCutoff returns midnight at the start of the calendar day that is
// days days before base. A page counts as recently modified when its
// timestamp is strictly after this instant.
func RecencyCutoff(base time.Time, days int) time.Time {
	return StartOfDay(base.AddDate(0, 0, -days))
}

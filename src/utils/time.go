package utils

import "time"

// DaysBetween returns the number of calendar days from a to b, comparing
// dates only. Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	aDate := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDate := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	return int(bDate.Sub(aDate).Hours() / 24)
}

// MarketClose pins a date to the 4 PM New York close of that session.
func MarketClose(day time.Time) time.Time {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.FixedZone("EST", -5*3600)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), 16, 0, 0, 0, loc)
}

// NextDay returns the same wall-clock time one calendar day later.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

package domain

import "time"

// DateOnly reduces t to the civil date it names, at midnight UTC. Dates
// loaded from postgres arrive in the session location, so everything that
// later calls Day() or feeds a map key goes through here first.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart normalizes t to the first of its month, midnight UTC. Due
// months take part in == comparisons via BucketKey, and time.Time equality
// under == includes the location, so every due month must be built by this
// function or time.Date with time.UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

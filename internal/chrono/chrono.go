package chrono

import (
	"time"

	"hltv-crawler/lib/timezone"
)

// API is the interface that anything depending on the system clock should use.
type API interface {
	// Now returns the current time in the site's timezone.
	Now() time.Time
}

// StandardImpl is the standard implementation of API using the system clock.
type StandardImpl struct{}

func (StandardImpl) Now() time.Time {
	return timezone.Now()
}

// Fixed always returns the same instant, for tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f).In(timezone.Location)
}

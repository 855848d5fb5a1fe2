package book

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// "Today" decides both birthday validation and the upcoming-birthday window.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard time package.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

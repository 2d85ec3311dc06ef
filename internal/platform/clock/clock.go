package clock

import "time"

// Clock abstracts time so usecases stay deterministic in tests. Derived
// aggregates ("today", the trailing week) take their notion of now from here
// rather than from time.Now.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

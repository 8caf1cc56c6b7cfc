package services

import "time"

// Clock supplies the current time so lifecycle stamps can be controlled in tests
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a clock reading the wall clock in UTC
func SystemClock() Clock { return systemClock{} }

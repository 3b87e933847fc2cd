package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "UTC"

var current atomic.Pointer[time.Location]

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// SetDefault selects the store timezone used to read wall-clock inputs.
func SetDefault(tz string) {
	current.Store(Location(tz))
}

func Default() *time.Location {
	if loc := current.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Default())
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

package timezone

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Wall-clock layouts are read in the store timezone. RFC3339 carries its own offset.
var wallClockLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// DateTime is a request timestamp that accepts RFC3339 as well as the
// "YYYY-MM-DD HH:MM[:SS]" form used by the salon front desk.
type DateTime struct {
	time.Time
}

func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range wallClockLayouts {
		if t, err := time.ParseInLocation(layout, s, Default()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", s)
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date-time must be a string: %w", err)
	}

	t, err := Parse(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

// Ptr returns nil for an unset value.
func (d *DateTime) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

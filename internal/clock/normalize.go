// Package clock normalizes persisted timestamps into canonical UTC
// instants. Older data arrives in several shapes: native time values,
// RFC3339 strings with or without an offset, and zone-less strings from
// before the storage zone was fixed. Everything is stored in UTC and
// converted to a display zone only when rendered.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimestamp marks a persisted timestamp that cannot be parsed.
// Callers skip or flag the affected record; it is never fatal to a listing.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// DefaultDisplayZone is the zone the original deployment rendered in.
const DefaultDisplayZone = "America/Bogota"

// layouts tried in order for string timestamps. Zone-less layouts are
// interpreted as UTC, the storage zone.
var layouts = []struct {
	format string
	naive  bool
}{
	{time.RFC3339Nano, false},
	{time.RFC3339, false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05.999999999", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02", true},
}

// Normalize converts a persisted timestamp value into a UTC instant.
func Normalize(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC(), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil timestamp", ErrInvalidTimestamp)
		}
		return v.UTC(), nil
	case string:
		return parseString(v)
	case []byte:
		return parseString(string(v))
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidTimestamp, value)
	}
}

func parseString(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidTimestamp)
	}
	for _, l := range layouts {
		var (
			t   time.Time
			err error
		)
		if l.naive {
			t, err = time.ParseInLocation(l.format, s, time.UTC)
		} else {
			t, err = time.Parse(l.format, s)
		}
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// Display converts a stored instant to the given display zone. The stored
// value itself is never mutated; this is a presentation-time conversion.
func Display(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc)
}

// LoadDisplayZone resolves a display zone name, falling back to UTC for
// an empty name. An unknown name is an error so a typo in configuration
// is visible rather than silently rendered in UTC.
func LoadDisplayZone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

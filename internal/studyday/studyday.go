// Package studyday maps instants onto study days. A study day runs from
// 06:00 to 06:00 in a fixed UTC+3 zone, so late-night sessions count
// towards the day they started on.
package studyday

import (
	"fmt"
	"time"
)

const (
	// KeyLayout is the format of a day key, e.g. 2026-01-13.
	KeyLayout = "2006-01-02"
	// DisplayLayout is the short human form used in trend charts.
	DisplayLayout = "Jan 02"

	// UTCOffset is the fixed offset of the study calendar.
	UTCOffset = 3 * time.Hour
	// BoundaryHour is the local hour at which a new study day begins.
	BoundaryHour = 6
)

var zone = time.FixedZone("UTC+3", int(UTCOffset/time.Second))

// Key returns the study day key that t falls in.
func Key(t time.Time) string {
	local := t.In(zone)
	if local.Hour() < BoundaryHour {
		local = local.AddDate(0, 0, -1)
	}
	return local.Format(KeyLayout)
}

// Today is Key(time.Now()).
func Today() string {
	return Key(time.Now())
}

// Parse validates a day key and returns the calendar date it names,
// at midnight UTC.
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	// time.Parse accepts some non-canonical forms; only the zero-padded one is a key.
	if t.Format(KeyLayout) != key {
		return time.Time{}, fmt.Errorf("invalid day key %q: not in %s form", key, KeyLayout)
	}
	return t, nil
}

// Display renders a day key as "Jan 02". Malformed keys are returned as-is.
func Display(key string) string {
	t, err := Parse(key)
	if err != nil {
		return key
	}
	return t.Format(DisplayLayout)
}

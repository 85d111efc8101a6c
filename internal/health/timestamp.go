package health

import (
	"strings"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/runtime"
)

// timestampLayouts are tried in order after the fractional part and any
// trailing Z have been removed. Layouts without a zone parse as UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an engine timestamp such as
// "2025-07-01T01:01:00.123456789Z" into UTC. Everything from the first
// '.' is discarded, so sub-second precision of any length is accepted
// (and an offset written after the fraction is ignored). A missing zone
// means UTC. The second return value is false when s is not a timestamp.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	s = strings.TrimSuffix(s, "Z")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatISO renders t in UTC with a Z suffix. Microseconds are included
// only when non-zero.
func FormatISO(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format("2006-01-02T15:04:05.000000Z")
	}
	return t.Format("2006-01-02T15:04:05Z")
}

// LastActivity returns the latest parseable instant among State.FinishedAt,
// State.StartedAt and Created. Docker reports FinishedAt as the zero time
// for containers that never stopped, which the max naturally discards.
func LastActivity(d runtime.Detail) (time.Time, bool) {
	var latest time.Time
	found := false

	for _, raw := range []string{d.FinishedAt(), d.StartedAt(), d.Created()} {
		t, ok := ParseTimestamp(raw)
		if !ok {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}

	return latest, found
}

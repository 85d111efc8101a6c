package health

import (
	"fmt"
	"math"
	"time"
)

// Status represents the overall health of a run
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Outcome classifies a single job container.
type Outcome string

const (
	// OutcomeExecuted means the container was active inside the window
	OutcomeExecuted Outcome = "executed_at"
	// OutcomeStale means the last activity is older than the window
	OutcomeStale Outcome = "last_seen"
	// OutcomeUnknown means no timestamp could be resolved
	OutcomeUnknown Outcome = "unknown"
)

// Record is the classification of one job container.
type Record struct {
	Name    string
	Outcome Outcome
	At      time.Time // zero for OutcomeUnknown
}

// Healthy reports whether this record counts towards a healthy run.
func (r Record) Healthy() bool {
	return r.Outcome == OutcomeExecuted
}

// String renders the record the way it appears in the report's job map.
func (r Record) String() string {
	switch r.Outcome {
	case OutcomeExecuted:
		return fmt.Sprintf("executed_at: %s", FormatISO(r.At))
	case OutcomeStale:
		return fmt.Sprintf("last_seen: %s", FormatISO(r.At))
	default:
		return "last_seen: unknown"
	}
}

// Classify compares a container's last activity against the look-back
// window. The boundary is inclusive: activity exactly window ago is
// still executed.
func Classify(name string, at time.Time, ok bool, now time.Time, window time.Duration) Record {
	if !ok {
		return Record{Name: name, Outcome: OutcomeUnknown}
	}
	if now.Sub(at) <= window {
		return Record{Name: name, Outcome: OutcomeExecuted, At: at}
	}
	return Record{Name: name, Outcome: OutcomeStale, At: at}
}

// Summarize returns StatusUnhealthy if any record is stale or unknown.
// No records at all is healthy.
func Summarize(records []Record) Status {
	for _, r := range records {
		if !r.Healthy() {
			return StatusUnhealthy
		}
	}
	return StatusHealthy
}

// maxWindowHours is the longest window a time.Duration can hold.
const maxWindowHours = float64(math.MaxInt64) / float64(time.Hour)

// Window converts a look-back window in (possibly fractional) hours.
// Windows too long for a time.Duration saturate instead of wrapping, so
// they still cover every representable age.
func Window(hours float64) time.Duration {
	if hours >= maxWindowHours {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(hours * float64(time.Hour))
}

// FormatAge renders how long ago t was, relative to now, for humans.
func FormatAge(now, t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return formatDuration(now.Sub(t))
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		return "in " + formatDuration(-d)
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		hours := int(d.Hours())
		mins := int(d.Minutes()) % 60
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	return fmt.Sprintf("%dd %dh", days, hours)
}

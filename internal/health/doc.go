// Package health classifies job containers by their last activity.
//
// # Timestamps
//
// ParseTimestamp accepts the RFC3339-like strings docker and podman emit,
// with any number of fractional digits and an optional trailing Z. It
// never fails loudly; an unparsable value is simply absent.
//
// LastActivity picks the latest of State.FinishedAt, State.StartedAt and
// Created that parses.
//
// # Classification
//
//	health.Classify(name, at, ok, now, window)
//
// yields one of:
//
//	executed_at: <ISO>   // now - at <= window
//	last_seen: <ISO>     // older than the window
//	last_seen: unknown   // no timestamp
//
// Summarize folds records into StatusHealthy or StatusUnhealthy.
package health

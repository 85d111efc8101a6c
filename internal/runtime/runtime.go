// Package runtime wraps the docker/podman command-line tools that
// edawatch polls for job containers.
package runtime

import (
	"context"
)

// Summary is one record of `<engine> ps -a --format '{{json .}}'` output.
// Docker and podman disagree on field names and shapes, so it is kept as
// a raw mapping and read through accessors.
type Summary map[string]any

// ID returns the container identifier ("ID" for docker, "Id" for podman).
func (s Summary) ID() string {
	if id := stringField(s, "ID"); id != "" {
		return id
	}
	return stringField(s, "Id")
}

// Name returns the container's display name. "Names" is preferred over
// "Name"; when the engine returns a list of names the first one is used.
// Names of any other type yield "".
func (s Summary) Name() string {
	raw := s["Names"]
	if isEmpty(raw) {
		raw = s["Name"]
	}

	switch v := raw.(type) {
	case string:
		return v
	case []any:
		if len(v) == 0 {
			return ""
		}
		first, _ := v[0].(string)
		return first
	default:
		return ""
	}
}

// Detail is the first element of `<engine> inspect <id>` output. Every
// field is optional; an empty Detail means inspection failed.
type Detail map[string]any

// State returns the nested State object, or nil.
func (d Detail) State() map[string]any {
	state, _ := d["State"].(map[string]any)
	return state
}

// FinishedAt returns State.FinishedAt as reported by the engine.
func (d Detail) FinishedAt() string {
	return stringField(d.State(), "FinishedAt")
}

// StartedAt returns State.StartedAt as reported by the engine.
func (d Detail) StartedAt() string {
	return stringField(d.State(), "StartedAt")
}

// Created returns the top-level Created timestamp.
func (d Detail) Created() string {
	return stringField(d, "Created")
}

// Engine lists and inspects containers.
type Engine interface {
	// Name returns the engine executable (e.g., "docker", "podman")
	Name() string

	// List returns every container, running or not, in engine order.
	// Lines of output that are not JSON objects are skipped.
	List(ctx context.Context) ([]Summary, error)

	// Inspect returns the detail for one container. It never fails;
	// any problem yields an empty Detail.
	Inspect(ctx context.Context, id string) Detail
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// isEmpty mirrors the "missing or blank" check used when choosing between
// the Names and Name fields.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

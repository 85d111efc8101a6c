package monitor

import (
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/runtime"
)

// Target is a listed container selected for inspection.
type Target struct {
	Name string
	ID   string
}

// FilterByPrefix selects the summaries whose name starts with prefix,
// keeping engine order. Summaries without a usable name or ID are skipped.
func FilterByPrefix(summaries []runtime.Summary, prefix string) []Target {
	var targets []Target
	for _, s := range summaries {
		name := s.Name()
		if name == "" || !strings.HasPrefix(name, prefix) {
			continue
		}

		id := s.ID()
		if id == "" {
			logging.Debug("skipping container without id", "name", name)
			continue
		}
		targets = append(targets, Target{Name: name, ID: id})
	}
	return targets
}

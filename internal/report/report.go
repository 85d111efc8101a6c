// Package report assembles and encodes the JSON health payload.
package report

import (
	"encoding/json"
	"io"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/health"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/hostinfo"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/monitor"
)

// HealthReport is the document written to stdout.
type HealthReport struct {
	Timestamp      string  `json:"timestamp"`
	Host           string  `json:"host"`
	AnsibleVersion string  `json:"ansible_version"`
	AnsibleUser    string  `json:"ansible_user"`
	Message        Message `json:"message"`
}

// Message carries the overall status and one entry per job container.
type Message struct {
	Status health.Status     `json:"status"`
	Jobs   map[string]string `json:"jobs"`
}

// Build combines a monitor result with host metadata. Jobs is never nil
// so an empty run encodes as {}. Containers sharing a name collapse to
// the last one listed.
func Build(result *monitor.Result, md hostinfo.Metadata) *HealthReport {
	jobs := make(map[string]string, len(result.Records))
	for _, r := range result.Records {
		jobs[r.Name] = r.String()
	}

	return &HealthReport{
		Timestamp:      health.FormatISO(result.CheckedAt),
		Host:           md.Host,
		AnsibleVersion: md.AnsibleVersion,
		AnsibleUser:    md.AnsibleUser,
		Message: Message{
			Status: result.Status,
			Jobs:   jobs,
		},
	}
}

// Write encodes r as JSON followed by a newline. pretty selects 2-space
// indentation. Non-ASCII and HTML characters are written verbatim.
func Write(w io.Writer, r *HealthReport, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}

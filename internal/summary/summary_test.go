package summary

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/compliance"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/health"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/monitor"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestJobRows(t *testing.T) {
	result := &monitor.Result{
		CheckedAt: now,
		Engine:    "docker",
		Records: []health.Record{
			{Name: "ansible-a", Outcome: health.OutcomeExecuted, At: now.Add(-90 * time.Minute)},
			{Name: "ansible-b", Outcome: health.OutcomeUnknown},
		},
		Status: health.StatusUnhealthy,
	}

	rows := JobRows(result)
	require.Len(t, rows, 2)

	assert.Equal(t, "ansible-a", rows[0][0])
	assert.Contains(t, rows[0][1], "executed")
	assert.Equal(t, "2024-05-01T10:30:00Z", rows[0][2])
	assert.Equal(t, "1h 30m", rows[0][3])

	assert.Equal(t, "ansible-b", rows[1][0])
	assert.Contains(t, rows[1][1], "unknown")
	assert.Equal(t, "-", rows[1][2])
	assert.Equal(t, "unknown", rows[1][3])
}

func TestJobs(t *testing.T) {
	var buf bytes.Buffer
	err := Jobs(&buf, &monitor.Result{
		CheckedAt: now,
		Engine:    "podman",
		Records: []health.Record{
			{Name: "ansible-a", Outcome: health.OutcomeStale, At: now.Add(-30 * time.Hour)},
		},
		Status: health.StatusUnhealthy,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "JOB")
	assert.Contains(t, out, "ansible-a")
	assert.Contains(t, out, "unhealthy")
	assert.Contains(t, out, "podman")
}

func TestJobs_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := Jobs(&buf, &monitor.Result{CheckedAt: now, Engine: "docker", Status: health.StatusHealthy})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No job containers matched")
}

func TestComplianceRows(t *testing.T) {
	result := &compliance.Result{
		Status:  compliance.StatusNonCompliant,
		Entries: []compliance.Entry{
			{Directive: "PermitRootLogin", Value: "yes"},
			{Directive: "Port", Value: "22"},
		},
		Mismatches: []compliance.Mismatch{
			{Directive: "PermitRootLogin", Expected: "no", Observed: "yes"},
		},
	}

	rows := ComplianceRows(result)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"PermitRootLogin", "no", "yes"}, rows[0][:3])
	assert.Contains(t, rows[0][3], "✗")
	assert.Equal(t, []string{"Port", "22", "22"}, rows[1][:3])
	assert.Contains(t, rows[1][3], "✓")
}

func TestCompliance(t *testing.T) {
	var buf bytes.Buffer
	err := Compliance(&buf, &compliance.Result{Status: compliance.StatusCompliant})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No directives recorded")
}

func TestTable(t *testing.T) {
	out := Table([]string{"A", "B"}, [][]string{{"one", "two"}})
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.Contains(t, out, "╭")
}

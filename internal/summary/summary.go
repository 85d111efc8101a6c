// Package summary renders human-readable tables for terminal output.
//
// Tables are written to stderr by the commands so stdout stays reserved
// for machine-readable JSON.
package summary

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/compliance"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/health"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/monitor"
)

var (
	accent = lipgloss.Color("39")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	yellow = lipgloss.Color("214")
	dim    = lipgloss.Color("241")

	headerStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1)
	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	okStyle    = lipgloss.NewStyle().Foreground(green)
	badStyle   = lipgloss.NewStyle().Foreground(red)
	warnStyle  = lipgloss.NewStyle().Foreground(yellow)
	mutedStyle = lipgloss.NewStyle().Foreground(dim)
)

// Table renders rows under headers with rounded borders.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// JobRows returns one row per record: name, outcome, timestamp and age.
func JobRows(result *monitor.Result) [][]string {
	rows := make([][]string, 0, len(result.Records))
	for _, r := range result.Records {
		ts := "-"
		if !r.At.IsZero() {
			ts = health.FormatISO(r.At)
		}
		rows = append(rows, []string{
			r.Name,
			formatOutcome(r.Outcome),
			ts,
			health.FormatAge(result.CheckedAt, r.At),
		})
	}
	return rows
}

// Jobs writes the job table followed by the overall status.
func Jobs(w io.Writer, result *monitor.Result) error {
	if len(result.Records) == 0 {
		_, err := fmt.Fprintf(w, "No job containers matched (%s). Status: %s\n",
			result.Engine, formatStatus(result.Status))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s %s via %s\n",
		Table([]string{"JOB", "OUTCOME", "TIMESTAMP", "AGE"}, JobRows(result)),
		mutedStyle.Render("Status:"), formatStatus(result.Status), result.Engine)
	return err
}

// ComplianceRows returns one row per recorded directive with its default
// and the observed value. Mismatched rows are marked.
func ComplianceRows(result *compliance.Result) [][]string {
	expected := make(map[string]string, len(result.Mismatches))
	for _, m := range result.Mismatches {
		expected[m.Directive] = m.Expected
	}

	rows := make([][]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		want, ok := expected[e.Directive]
		if !ok {
			want = e.Value
		}
		mark := okStyle.Render("✓")
		if want != e.Value {
			mark = badStyle.Render("✗")
		}
		rows = append(rows, []string{e.Directive, want, e.Value, mark})
	}
	return rows
}

// Compliance writes the directive table followed by the report status.
func Compliance(w io.Writer, result *compliance.Result) error {
	rows := ComplianceRows(result)
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "No directives recorded. Status: %s\n", result.Status)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s %s (%d mismatched)\n",
		Table([]string{"DIRECTIVE", "EXPECTED", "OBSERVED", ""}, rows),
		mutedStyle.Render("Status:"), result.Status, len(result.Mismatches))
	return err
}

func formatOutcome(o health.Outcome) string {
	switch o {
	case health.OutcomeExecuted:
		return okStyle.Render("✓ executed")
	case health.OutcomeStale:
		return warnStyle.Render("⚠ stale")
	default:
		return badStyle.Render("? unknown")
	}
}

func formatStatus(s health.Status) string {
	if s == health.StatusHealthy {
		return okStyle.Render(string(s))
	}
	return badStyle.Render(string(s))
}

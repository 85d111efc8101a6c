package compliance

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ReportFileName is the report written by every run.
const ReportFileName = "json_log.json"

// Report status values.
const (
	StatusCompliant    = "compliant"
	StatusNonCompliant = "non-compliant"
)

// Entry is one directive value recorded in the report.
type Entry struct {
	Directive string
	Value     string
}

// Mismatch is a directive whose observed value differs from its default.
type Mismatch struct {
	Directive string
	Expected  string
	Observed  string
}

// Result is the outcome of a scan. Entries keep report order.
type Result struct {
	Status     string
	Entries    []Entry
	Mismatches []Mismatch
}

// set records value for directive, keeping the first position of a
// directive already present.
func (r *Result) set(directive, value string) {
	for i := range r.Entries {
		if r.Entries[i].Directive == directive {
			r.Entries[i].Value = value
			return
		}
	}
	r.Entries = append(r.Entries, Entry{Directive: directive, Value: value})
}

// MarshalJSON renders {"message": {"status": ..., <directive>: <value>...}}
// with status first and directives in report order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"message":{"status":`)
	if err := writeString(&buf, r.Status); err != nil {
		return nil, err
	}
	for _, e := range r.Entries {
		if e.Directive == "status" {
			continue
		}
		buf.WriteByte(',')
		if err := writeString(&buf, e.Directive); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// writeString JSON-encodes s without escaping HTML characters.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// Encode renders r with 4-space indentation and no trailing newline.
func Encode(r *Result) ([]byte, error) {
	raw, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "    "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Scan checks config lines against defaults. A directive matches a line
// whose first field equals it case-insensitively; blank lines and lines
// starting with '#' are ignored. As in sshd itself the first occurrence of
// a directive is the effective one, and everything from the first Match
// line onward is conditional and not scanned. Any differing value makes
// the result non-compliant; directives absent from the config are left out.
func Scan(lines []string, defaults Defaults) *Result {
	result := &Result{Status: StatusCompliant}
	global := globalSection(lines)

	for _, exp := range defaults {
		observed, found := firstValue(global, exp.Directive)
		if !found {
			continue
		}

		result.set(exp.Directive, observed)
		if observed != exp.Value {
			result.Status = StatusNonCompliant
			result.Mismatches = append(result.Mismatches, Mismatch{
				Directive: exp.Directive,
				Expected:  exp.Value,
				Observed:  observed,
			})
		}
	}

	return result
}

// globalSection returns the lines before the first Match block.
func globalSection(lines []string) []string {
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) > 0 && strings.EqualFold(fields[0], "Match") {
			return lines[:i]
		}
	}
	return lines
}

// firstValue returns the last field of the first line setting directive.
func firstValue(lines []string, directive string) (string, bool) {
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if strings.EqualFold(fields[0], directive) {
			return fields[len(fields)-1], true
		}
	}
	return "", false
}

// ScanLegacy reproduces the historical checker byte for byte, including
// its quirks:
//   - lines containing '#' anywhere are skipped
//   - a line matches when it merely contains the directive name
//   - status starts as "non-compliant" and flips to "compliant" when a
//     value differs
//   - differing values only reach the report once a later matching
//     value is merged
//
// emit is called with the report so far after every differing line.
func ScanLegacy(lines []string, defaults Defaults, emit func(*Result) error) (*Result, error) {
	report := &Result{Status: StatusNonCompliant}
	pending := &Result{}

	for _, exp := range defaults {
		for _, line := range lines {
			if !strings.Contains(line, exp.Directive) || strings.Contains(line, "#") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			observed := fields[len(fields)-1]
			pending.set(exp.Directive, observed)

			if exp.IsString && exp.Value == observed {
				for _, e := range pending.Entries {
					report.set(e.Directive, e.Value)
				}
				continue
			}

			report.Status = StatusCompliant
			report.Mismatches = append(report.Mismatches, Mismatch{
				Directive: exp.Directive,
				Expected:  exp.Value,
				Observed:  observed,
			})
			if emit != nil {
				if err := emit(report); err != nil {
					return report, err
				}
			}
		}
	}

	return report, nil
}

// Package hostinfo gathers the host and automation-tool metadata that
// accompanies every health report.
package hostinfo

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/system"
)

// Unknown is reported for any value that cannot be determined.
const Unknown = "unknown"

// userEnvVars are consulted in order for the automation user.
var userEnvVars = []string{"ANSIBLE_USER", "USER", "USERNAME"}

// Probe resolves host metadata. Its fields default to the real OS and
// can be replaced in tests.
type Probe struct {
	Exec        system.CommandExecutor
	Getenv      func(string) string
	Hostname    func() (string, error)
	CurrentUser func() (*user.User, error)
}

// NewProbe returns a Probe backed by the operating system.
func NewProbe(exec system.CommandExecutor) *Probe {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &Probe{
		Exec:        exec,
		Getenv:      os.Getenv,
		Hostname:    os.Hostname,
		CurrentUser: user.Current,
	}
}

// Metadata is the host identity section of a report.
type Metadata struct {
	Host           string
	AnsibleVersion string
	AnsibleUser    string
}

// Collect resolves all metadata. hostOverride, when non-empty, replaces
// the local host name.
func (p *Probe) Collect(ctx context.Context, hostOverride string) Metadata {
	return Metadata{
		Host:           p.Host(hostOverride),
		AnsibleVersion: p.AnsibleVersion(ctx),
		AnsibleUser:    p.AnsibleUser(),
	}
}

// Host returns override if set, else the local host name.
func (p *Probe) Host(override string) string {
	if override != "" {
		return override
	}
	name, err := p.Hostname()
	if err != nil || name == "" {
		logging.Debug("hostname lookup failed", "error", err)
		return Unknown
	}
	return name
}

// AnsibleVersion runs `ansible --version` when ansible is on PATH and
// returns the first version-looking token of its first line. It falls
// back to $ANSIBLE_VERSION, then Unknown.
func (p *Probe) AnsibleVersion(ctx context.Context) string {
	if bin, err := p.Exec.LookPath("ansible"); err == nil {
		result, err := p.Exec.Run(ctx, bin, "--version")
		if err == nil && result.Success() && result.Stdout != "" {
			if v := VersionFromBanner(result.Stdout); v != "" {
				return v
			}
		} else {
			logging.Debug("ansible --version failed", "code", result.ExitCode, "error", err)
		}
	}

	if v := p.Getenv("ANSIBLE_VERSION"); v != "" {
		return v
	}
	return Unknown
}

// VersionFromBanner extracts the version from the first line of
// `ansible --version`, e.g. "ansible [core 2.15.0]" or "ansible 2.9.27".
// The first token beginning with a digit wins. Returns "" if none does.
func VersionFromBanner(output string) string {
	firstLine, _, _ := strings.Cut(output, "\n")
	firstLine = strings.NewReplacer("[", " ", "]", " ").Replace(firstLine)

	for _, token := range strings.Fields(firstLine) {
		if unicode.IsDigit(rune(token[0])) {
			return token
		}
	}
	return ""
}

// AnsibleUser returns the first non-empty of $ANSIBLE_USER, $USER and
// $USERNAME, then the OS account name, then Unknown.
func (p *Probe) AnsibleUser() string {
	for _, key := range userEnvVars {
		if v := p.Getenv(key); v != "" {
			return v
		}
	}

	if p.CurrentUser != nil {
		if u, err := p.CurrentUser(); err == nil && u.Username != "" {
			return u.Username
		}
	}
	return Unknown
}

// SatisfiesMinimum reports whether version meets the semver constraint
// ">= minimum". An unparsable version never satisfies it.
func SatisfiesMinimum(version, minimum string) (bool, error) {
	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, fmt.Errorf("invalid minimum version %q: %w", minimum, err)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false, nil
	}
	return constraint.Check(v), nil
}

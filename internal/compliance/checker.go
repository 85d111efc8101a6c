package compliance

import (
	"fmt"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/spf13/afero"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
)

// Options controls a Checker run.
type Options struct {
	// Legacy selects ScanLegacy instead of Scan.
	Legacy bool

	// OutputDir receives ReportFileName. Empty means the working directory.
	OutputDir string
}

// Checker scans an sshd_config file and writes the JSON report.
type Checker struct {
	fs   afero.Fs
	opts Options
}

// NewChecker creates a Checker on fs.
func NewChecker(fs afero.Fs, opts Options) *Checker {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Checker{fs: fs, opts: opts}
}

// ReportPath returns where the report will be written. The file name is
// resolved inside OutputDir so a planted symlink cannot redirect it.
func (c *Checker) ReportPath() (string, error) {
	dir := c.opts.OutputDir
	if dir == "" {
		dir = "."
	}
	path, err := securejoin.SecureJoin(dir, ReportFileName)
	if err != nil {
		return "", fmt.Errorf("resolve report path: %w", err)
	}
	return filepath.Clean(path), nil
}

// Run scans configPath against defaultsPath and writes the report.
func (c *Checker) Run(configPath, defaultsPath string) (*Result, error) {
	content, err := afero.ReadFile(c.fs, configPath)
	if err != nil {
		return nil, errors.ReportError("read", fmt.Errorf("failed to read sshd config: %w", err))
	}

	defaults, err := LoadDefaults(c.fs, defaultsPath)
	if err != nil {
		return nil, errors.ReportError("read", err)
	}

	outPath, err := c.ReportPath()
	if err != nil {
		return nil, errors.ReportError("write", err)
	}

	lines := strings.Split(string(content), "\n")
	logging.Debug("scanning sshd config", "path", configPath, "lines", len(lines),
		"directives", len(defaults), "legacy", c.opts.Legacy)

	var result *Result
	if c.opts.Legacy {
		result, err = ScanLegacy(lines, defaults, func(r *Result) error {
			return c.write(outPath, r)
		})
		if err != nil {
			return result, errors.ReportError("write", err)
		}
	} else {
		result = Scan(lines, defaults)
	}

	if err := c.write(outPath, result); err != nil {
		return result, errors.ReportError("write", err)
	}

	logging.Debug("compliance report written", "path", outPath, "status", result.Status,
		"mismatches", len(result.Mismatches))
	return result, nil
}

func (c *Checker) write(path string, r *Result) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := c.fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return afero.WriteFile(c.fs, path, data, 0644)
}

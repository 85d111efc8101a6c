package runtime

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/system"
)

// listFormat asks the engine for one JSON object per line.
const listFormat = "{{json .}}"

// CLIEngine implements Engine by shelling out to docker or podman.
type CLIEngine struct {
	// Command is the container command to use (docker or podman)
	Command string

	exec system.CommandExecutor
}

// NewCLIEngine creates an engine that runs command through exec.
func NewCLIEngine(command string, exec system.CommandExecutor) *CLIEngine {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &CLIEngine{
		Command: command,
		exec:    exec,
	}
}

// Name returns the runtime identifier
func (r *CLIEngine) Name() string {
	return r.Command
}

// List returns all containers known to the engine
func (r *CLIEngine) List(ctx context.Context) ([]Summary, error) {
	args := []string{"ps", "-a", "--format", listFormat}

	result, err := r.exec.Run(ctx, r.Command, args...)
	if err != nil {
		return nil, errors.ListFailed(r.Command, strings.TrimSpace(result.Stderr), err)
	}
	if !result.Success() {
		return nil, errors.ListFailed(r.Command, strings.TrimSpace(result.Stderr), nil)
	}

	return ParseList(result.Stdout), nil
}

// ParseList decodes newline-delimited JSON objects. Blank lines and
// lines that are not JSON objects (engine banners, warnings) are skipped.
func ParseList(output string) []Summary {
	var summaries []Summary
	for i, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var s Summary
		if err := json.Unmarshal([]byte(line), &s); err != nil || s == nil {
			logging.Debug("skipping unparsable list line", "line", i+1, "error", err)
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// Inspect returns the first inspect record for id, or an empty Detail
func (r *CLIEngine) Inspect(ctx context.Context, id string) Detail {
	result, err := r.exec.Run(ctx, r.Command, "inspect", id)
	if err != nil {
		logging.Debug("inspect failed to run", "id", id, "error", err)
		return Detail{}
	}
	if !result.Success() {
		logging.Warn("inspect exited non-zero", "id", id, "code", result.ExitCode,
			"stderr", strings.TrimSpace(result.Stderr))
		return Detail{}
	}

	return ParseInspect(result.Stdout)
}

// ParseInspect decodes inspect output, a JSON array of objects, and
// returns the first object. Anything else yields an empty Detail.
func ParseInspect(output string) Detail {
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		logging.Debug("inspect output is not a JSON array", "error", err)
		return Detail{}
	}
	if len(records) == 0 {
		return Detail{}
	}

	var d Detail
	if err := json.Unmarshal(records[0], &d); err != nil || d == nil {
		return Detail{}
	}
	return d
}

// Ensure CLIEngine implements Engine
var _ Engine = (*CLIEngine)(nil)

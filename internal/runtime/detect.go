package runtime

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/system"
)

// RuntimeType identifies which container engine to use
type RuntimeType string

const (
	RuntimeDocker RuntimeType = "docker"
	RuntimePodman RuntimeType = "podman"
	RuntimeAuto   RuntimeType = "auto"
)

// preference is the auto-detection order.
var preference = []RuntimeType{RuntimeDocker, RuntimePodman}

// ValidTypes lists the accepted values of the --runtime flag.
func ValidTypes() []string {
	return []string{string(RuntimeAuto), string(RuntimeDocker), string(RuntimePodman)}
}

// ParseType validates a runtime name.
func ParseType(s string) (RuntimeType, error) {
	for _, valid := range ValidTypes() {
		if s == valid {
			return RuntimeType(s), nil
		}
	}
	return "", fmt.Errorf("invalid runtime %q (choose from %s)", s, strings.Join(ValidTypes(), ", "))
}

// Select resolves the engine executable for mode. In auto mode docker is
// preferred over podman and finding neither is an ExitNoRuntime error.
// An explicit mode is returned without checking PATH; a missing binary
// surfaces when the engine is first invoked.
func Select(mode RuntimeType, exec system.CommandExecutor) (RuntimeType, error) {
	if mode != RuntimeAuto {
		logging.Debug("using requested runtime", "runtime", mode)
		return mode, nil
	}

	found := Available(exec)
	if len(found) == 0 {
		tried := make([]string, 0, len(preference))
		for _, c := range preference {
			tried = append(tried, string(c))
		}
		return "", errors.NoRuntime(tried)
	}

	logging.Debug("detected runtime", "runtime", found[0], "available", found)
	return found[0], nil
}

// Available returns the engines found on PATH, in preference order.
func Available(exec system.CommandExecutor) []RuntimeType {
	var available []RuntimeType
	for _, candidate := range preference {
		if _, err := exec.LookPath(string(candidate)); err == nil {
			available = append(available, candidate)
		}
	}
	return available
}

// New selects an engine for mode and returns a CLI-backed Engine for it.
func New(mode RuntimeType, exec system.CommandExecutor) (Engine, error) {
	if exec == nil {
		exec = system.DefaultExecutor()
	}

	selected, err := Select(mode, exec)
	if err != nil {
		return nil, err
	}
	return NewCLIEngine(string(selected), exec), nil
}

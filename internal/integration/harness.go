package integration

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/monitor"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/runtime"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/system"
)

// TestImage is run for every job container. It must exit immediately.
const TestImage = "docker.io/library/busybox:latest"

// TestHarness provides utilities for integration testing with real containers.
type TestHarness struct {
	t      *testing.T
	exec   system.CommandExecutor
	engine runtime.Engine
	prefix string
}

// NewHarness creates a new test harness.
// It will skip the test if EDAWATCH_INTEGRATION_TESTS is not set or no
// engine is usable. EDAWATCH_RUNTIME picks the engine (default auto).
func NewHarness(t *testing.T) *TestHarness {
	t.Helper()

	if os.Getenv("EDAWATCH_INTEGRATION_TESTS") != "1" {
		t.Skip("integration tests disabled (set EDAWATCH_INTEGRATION_TESTS=1 to enable)")
	}

	mode := runtime.RuntimeAuto
	if v := os.Getenv("EDAWATCH_RUNTIME"); v != "" {
		parsed, err := runtime.ParseType(v)
		if err != nil {
			t.Fatalf("EDAWATCH_RUNTIME: %v", err)
		}
		mode = parsed
	}

	exec := system.DefaultExecutor()
	engine, err := runtime.New(mode, exec)
	if err != nil {
		t.Skipf("no container runtime available: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := engine.List(ctx); err != nil {
		t.Skipf("%s not responsive: %v", engine.Name(), err)
	}

	return &TestHarness{
		t:      t,
		exec:   exec,
		engine: engine,
		prefix: "edawatch-it-" + randomSuffix(t) + "-",
	}
}

// Engine returns the engine under test.
func (h *TestHarness) Engine() runtime.Engine {
	return h.engine
}

// Prefix is unique to this harness, so monitors only see its containers.
func (h *TestHarness) Prefix() string {
	return h.prefix
}

// RunJob runs a short-lived container named Prefix()+name to completion
// and removes it when the test ends.
func (h *TestHarness) RunJob(name string) string {
	h.t.Helper()

	full := h.prefix + name
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := h.exec.Run(ctx, h.engine.Name(), "run", "--name", full, TestImage, "true")
	if err != nil || !result.Success() {
		h.t.Fatalf("failed to run %s: %v %s", full, err, strings.TrimSpace(result.Stderr))
	}

	h.t.Cleanup(func() {
		_, _ = h.exec.Run(context.Background(), h.engine.Name(), "rm", "-f", full)
	})
	return full
}

// Check runs one monitor pass over this harness's containers.
func (h *TestHarness) Check(window time.Duration, opts ...monitor.Option) *monitor.Result {
	h.t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := monitor.New(h.engine, h.prefix, window, opts...).RunOnce(ctx)
	if err != nil {
		h.t.Fatalf("RunOnce() error: %v", err)
	}
	return result
}

func randomSuffix(t *testing.T) string {
	t.Helper()
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("random suffix: %v", err)
	}
	return hex.EncodeToString(b)
}

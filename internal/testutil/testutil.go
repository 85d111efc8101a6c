package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/hostinfo"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/system"
)

// TestHostname is what the probe reports as the local host name.
const TestHostname = "eda-host-01"

// TestEnv holds the test environment
type TestEnv struct {
	T      *testing.T
	Exec   *system.MockExecutor
	FS     afero.Fs
	Env    map[string]string
	Stdout *bytes.Buffer
	Stderr *bytes.Buffer
	App    *app.App
}

// NewTestEnv installs an app.Default backed by a mock executor, an
// in-memory filesystem, a fixed clock at FixtureNow and an environment
// with ANSIBLE_VERSION and ANSIBLE_USER set. The previous default is
// restored when the test ends.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	env := &TestEnv{
		T:    t,
		Exec: system.NewMockExecutor(),
		FS:   afero.NewMemMapFs(),
		Env: map[string]string{
			"ANSIBLE_VERSION": "2.15.3",
			"ANSIBLE_USER":    "deploy",
		},
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}

	getenv := func(k string) string { return env.Env[k] }
	probe := hostinfo.NewProbe(env.Exec)
	probe.Getenv = getenv
	probe.Hostname = func() (string, error) { return TestHostname, nil }

	env.App = app.New(
		app.WithExecutor(env.Exec),
		app.WithFS(env.FS),
		app.WithOutput(env.Stdout, env.Stderr),
		app.WithEnv(getenv),
		app.WithClock(func() time.Time { return FixtureNow }),
		app.WithProbe(probe),
	)

	originalDefault := app.Default
	app.SetDefault(env.App)
	t.Cleanup(func() {
		app.SetDefault(originalDefault)
		logging.Setup(false, false, os.Stderr)
	})

	return env
}

// AddInspect registers the `docker inspect <id>` output.
func (e *TestEnv) AddInspect(id, inspect string) {
	e.Exec.AddResponse("docker inspect "+id, inspect)
}

// WriteFile writes content into the in-memory filesystem.
func (e *TestEnv) WriteFile(path, content string) {
	e.T.Helper()

	if err := afero.WriteFile(e.FS, path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", path, err)
	}
}

// CopyFixture copies a fixture into the in-memory filesystem at path.
func (e *TestEnv) CopyFixture(name, path string) {
	e.T.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	e.WriteFile(path, string(data))
}

// DecodeStdout parses everything written to stdout as one JSON object.
func (e *TestEnv) DecodeStdout() map[string]any {
	e.T.Helper()

	var out map[string]any
	if err := json.Unmarshal(e.Stdout.Bytes(), &out); err != nil {
		e.T.Fatalf("stdout is not JSON: %v\n%s", err, e.Stdout.String())
	}
	return out
}

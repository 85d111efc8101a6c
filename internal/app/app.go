// Package app provides the application context for edawatch.
// It allows dependency injection for testing.
package app

import (
	"io"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/hostinfo"
	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/system"
)

// App holds the application dependencies
type App struct {
	// Exec runs the container engine and ansible
	Exec system.CommandExecutor

	// FS is where compliance inputs are read and reports written
	FS afero.Fs

	// Stdout receives machine-readable output only
	Stdout io.Writer

	// Stderr receives summaries and diagnostics
	Stderr io.Writer

	// Getenv looks up environment variables
	Getenv func(string) string

	// Now is the clock used for classification
	Now func() time.Time

	// Probe resolves host metadata; nil means one backed by Exec and Getenv
	Probe *hostinfo.Probe
}

// Option is a function that configures the App
type Option func(*App)

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Exec = exec
	}
}

// WithFS sets a custom filesystem
func WithFS(fs afero.Fs) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithOutput sets the stdout and stderr writers
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.Stdout = stdout
		a.Stderr = stderr
	}
}

// WithEnv sets a custom environment lookup
func WithEnv(getenv func(string) string) Option {
	return func(a *App) {
		a.Getenv = getenv
	}
}

// WithClock sets a custom time source
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.Now = now
	}
}

// WithProbe sets a custom host metadata probe
func WithProbe(p *hostinfo.Probe) Option {
	return func(a *App) {
		a.Probe = p
	}
}

// New creates a new App backed by the operating system, with opts applied.
func New(opts ...Option) *App {
	app := &App{
		Exec:   system.DefaultExecutor(),
		FS:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Now:    time.Now,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// HostProbe returns the configured probe, or one wired to the app's
// executor and environment.
func (a *App) HostProbe() *hostinfo.Probe {
	if a.Probe != nil {
		return a.Probe
	}
	p := hostinfo.NewProbe(a.Exec)
	p.Getenv = a.Getenv
	return p
}

// Default is the application context used by the CLI commands
var Default = New()

// SetDefault replaces the default App (used in tests)
func SetDefault(a *App) {
	Default = a
}

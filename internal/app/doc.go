// Package app provides the application context for edawatch.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Exec   system.CommandExecutor // docker, podman, ansible
//	    FS     afero.Fs               // compliance inputs and reports
//	    Stdout io.Writer              // JSON payloads
//	    Stderr io.Writer              // summaries
//	    Getenv func(string) string
//	    Now    func() time.Time
//	    Probe  *hostinfo.Probe
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithExecutor(system.NewMockExecutor()),
//	    app.WithFS(afero.NewMemMapFs()),
//	    app.WithOutput(&stdout, &stderr),
//	)
//
// The CLI commands read app.Default; tests swap it with SetDefault.
package app

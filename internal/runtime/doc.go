// Package runtime wraps the container engines edawatch polls.
//
// Supported engines:
//   - docker
//   - podman
//
// Both are driven through their command-line tools via
// system.CommandExecutor; the daemon API is never contacted directly.
//
// # Selection
//
// Select resolves the --runtime flag. "auto" probes PATH for docker, then
// podman; an explicit name is trusted as given.
//
// # Listing and Inspecting
//
// Engine.List runs `ps -a --format '{{json .}}'` and decodes each line on
// its own, skipping anything that is not a JSON object. A non-zero exit
// is fatal (exit code 3). Engine.Inspect runs `inspect <id>` and returns
// the first array element; every failure degrades to an empty Detail.
//
// Summary and Detail are raw JSON mappings because docker and podman
// disagree on field names (ID/Id, Names/Name) and shapes (string or list).
//
// # Mock Engine
//
// For testing, use NewMockEngine() or a CLIEngine backed by
// system.NewMockExecutor().
package runtime

// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Captured engine output and sshd inputs are embedded using go:embed:
//
//	fixtures/docker_ps.jsonl          docker ps -a --format '{{json .}}'
//	fixtures/inspect_<id>.json        docker inspect <id>
//	fixtures/sshd_config              a stock Ubuntu sshd_config
//	fixtures/sshd_defaults.{json,yaml,toml}
//
// LoadDockerFixtures wires the engine fixtures into a MockExecutor.
// They were captured at FixtureNow.
//
// # Test Environment
//
// NewTestEnv swaps app.Default for one backed by mocks so commands can
// be run end to end:
//
//	env := testutil.NewTestEnv(t)
//	testutil.LoadDockerFixtures(env.Exec)
//	// run the command, then inspect env.Stdout / env.FS
package testutil

// Package integration provides a test harness for integration tests
// that require a real container engine.
//
// Integration tests are skipped unless EDAWATCH_INTEGRATION_TESTS=1:
//
//	EDAWATCH_INTEGRATION_TESTS=1 EDAWATCH_RUNTIME=podman go test ./internal/integration/...
//
// # Test Harness
//
// TestHarness runs throwaway job containers under a unique name prefix:
//
//	func TestMyIntegration(t *testing.T) {
//	    h := integration.NewHarness(t) // Skips if disabled
//
//	    h.RunJob("backup")
//	    result := h.Check(time.Hour)
//
//	    // Containers are removed via t.Cleanup
//	}
package integration

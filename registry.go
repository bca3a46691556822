package golem

import "github.com/toejough/golem/internal/core"

// SuiteFor returns the Suite for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Suite.
// The Suite verifies itself and leaves the registry when the test completes.
func SuiteFor(t TestReporter) *Suite {
	return core.SuiteFor(t)
}

// VerifyAll asserts saturation of every stub registered through SuiteFor(t).
// If no Suite has been created for t yet, VerifyAll returns immediately.
func VerifyAll(t TestReporter) {
	t.Helper()
	core.VerifyAll(t)
}

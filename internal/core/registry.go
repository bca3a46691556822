package core

import "sync"

// SuiteFor returns the Suite for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Suite, so helpers
// spread across a test's files can register on one aggregate.
//
// If the TestReporter supports Cleanup (like *testing.T), the Suite is
// removed from the registry when the test completes.
func SuiteFor(t TestReporter) *Suite {
	registryMu.Lock()
	defer registryMu.Unlock()

	if suite, ok := registry[t]; ok {
		return suite
	}

	suite := NewSuite(t)
	registry[t] = suite

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}

	return suite
}

// VerifyAll asserts saturation of the Suite registered under t.
// If no Suite has been created for t yet, VerifyAll returns immediately.
func VerifyAll(t TestReporter) {
	registryMu.Lock()

	suite, ok := registry[t]

	registryMu.Unlock()

	if !ok {
		return
	}

	t.Helper()
	suite.AssertSaturated()
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for per-test suites
	registry = make(map[TestReporter]*Suite)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

package core

// TestReporter is the minimal interface golem needs from test frameworks.
// *testing.T and *testing.B satisfy it.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

// logReporter is satisfied by reporters that can record non-fatal messages.
type logReporter interface {
	Helper()
	Logf(format string, args ...any)
}

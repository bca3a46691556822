package core

import "slices"

// Mock is the stub-defining object: it owns the Methods stubbed on it and the
// reporter their failures go to. Embed a *Mock in a hand-written or generated
// stub and route each method through Method(sig).
//
// A Mock belongs to one test. It is not safe for concurrent use.
type Mock struct {
	t        TestReporter
	name     string
	methods  []*Method
	bySig    map[*Signature]*Method
	warnings []string
}

// AssertSaturated fails the test on the first method with an expectation still
// waiting for calls.
func (m *Mock) AssertSaturated() {
	err := m.CheckSaturated()
	if err != nil {
		m.fail(err)
	}
}

// CheckSaturated returns the first undersaturation across the Mock's methods,
// in the order the methods were first used.
func (m *Mock) CheckSaturated() error {
	for _, method := range m.methods {
		err := method.CheckSaturated()
		if err != nil {
			return err
		}
	}

	return nil
}

// Method returns the stubbed method for sig, creating its registry on first use.
func (m *Mock) Method(sig *Signature) *Method {
	if method, ok := m.bySig[sig]; ok {
		return method
	}

	method := &Method{mock: m, sig: sig}
	m.bySig[sig] = method
	m.methods = append(m.methods, method)

	return method
}

// Name returns the name used to qualify method names in messages.
func (m *Mock) Name() string {
	return m.name
}

// Warnings returns the non-fatal messages recorded so far, such as calls to
// methods that had no expectations.
func (m *Mock) Warnings() []string {
	return slices.Clone(m.warnings)
}

// NewMock creates a Mock reporting to t. name prefixes method names in
// messages, as in "Interface.foo(1, 2)". A nil t makes failures panic.
func NewMock(t TestReporter, name string) *Mock {
	return &Mock{
		t:     t,
		name:  name,
		bySig: make(map[*Signature]*Method),
	}
}

func (m *Mock) fail(err error) {
	if m.t == nil {
		panic(err)
	}

	m.t.Helper()
	m.t.Fatalf("%v", err)
}

func (m *Mock) warn(message string) {
	m.warnings = append(m.warnings, message)

	if logger, ok := m.t.(logReporter); ok {
		logger.Helper()
		logger.Logf("%s", message)
	}
}

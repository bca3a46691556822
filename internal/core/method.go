// Package core provides the internal implementation of golem's call
// expectations: signatures, saturation counting, expectations, and the
// per-method dispatcher that matches real calls against registered patterns.
package core

import "fmt"

// Method is one stubbed method of one Mock. It owns the registered
// (pattern, Expectation) entries for that method and dispatches real calls to
// them. Entries keep registration order, and lookup is a linear scan.
type Method struct {
	mock    *Mock
	sig     *Signature
	entries []*entry
	calls   []Call
}

// AssertSaturated fails the test if any expectation on this method is still
// waiting for calls.
func (m *Method) AssertSaturated() {
	err := m.CheckSaturated()
	if err != nil {
		m.mock.fail(err)
	}
}

// Call dispatches a real call and returns the response of the matched
// expectation. Failures are reported through the Mock's TestReporter. A trailing
// Kwargs argument supplies keyword arguments.
func (m *Method) Call(args ...any) any {
	result, err := m.Invoke(args...)
	if err != nil {
		m.mock.fail(err)
	}

	return result
}

// Calls returns every call dispatched to this method so far.
func (m *Method) Calls() []Call {
	return append([]Call(nil), m.calls...)
}

// CheckSaturated returns a *MockUndersaturatedError for the first registered
// expectation still waiting for calls, or nil.
func (m *Method) CheckSaturated() error {
	for _, ent := range m.entries {
		if ent.expectation.IsUndersaturated() {
			return &MockUndersaturatedError{newSaturationError(ent.pattern, ent.expectation)}
		}
	}

	return nil
}

// ExpectCall registers an expectation for calls matching args and returns it
// for configuration. Failures are reported through the Mock's TestReporter,
// and a detached Expectation is returned so chained configuration stays safe.
func (m *Method) ExpectCall(args ...any) *Expectation {
	expectation, err := m.TryExpectCall(args...)
	if err != nil {
		m.mock.fail(err)

		return NewExpectation()
	}

	return expectation
}

// Invoke dispatches a real call. It binds the arguments against the Signature,
// finds the matching expectation, and consumes it. With nothing registered on
// the method the call only logs a warning. A call that over-saturates its
// expectation still runs the expectation's action, then fails.
func (m *Method) Invoke(args ...any) (any, error) {
	call := m.newCall(args)

	normalized, err := call.Normalized()
	if err != nil {
		return nil, err
	}

	m.calls = append(m.calls, call)

	if len(m.entries) == 0 {
		m.mock.warn(fmt.Sprintf("Uninterested mock function called: %s", call))

		return nil, nil
	}

	ent := m.lookup(call, normalized)
	if ent == nil {
		return nil, &UnexpectedMockCallError{Call: call}
	}

	result, actionErr := ent.expectation.Consume(call)

	if ent.expectation.IsOversaturated() {
		return result, &MockOversaturatedError{newSaturationError(call, ent.expectation)}
	}

	return result, actionErr
}

// Mock returns the owner of this method.
func (m *Method) Mock() *Mock {
	return m.mock
}

// Name returns the owner-qualified name, e.g. "Interface.foo".
func (m *Method) Name() string {
	if m.mock.name == "" {
		return m.sig.name
	}

	return m.mock.name + "." + m.sig.name
}

// Signature returns the parameter descriptor the method was stubbed with.
func (m *Method) Signature() *Signature {
	return m.sig
}

// TryExpectCall is ExpectCall returning its failure instead of reporting it.
// Registering a pattern Equal to one already registered, wildcards included,
// replaces that entry's expectation once it is saturated, and fails with
// *ExpectationNotConsumedError while it is not.
func (m *Method) TryExpectCall(args ...any) (*Expectation, error) {
	pattern := m.newCall(args)

	_, err := pattern.Normalized()
	if err != nil {
		return nil, err
	}

	for _, ent := range m.entries {
		if !ent.pattern.Equal(pattern) {
			continue
		}

		if !ent.expectation.IsSaturated() {
			return nil, &ExpectationNotConsumedError{Call: pattern}
		}

		ent.expectation = NewExpectation()

		return ent.expectation, nil
	}

	ent := &entry{pattern: pattern, expectation: NewExpectation()}
	m.entries = append(m.entries, ent)

	return ent.expectation, nil
}

// lookup finds the entry for a call: the first pattern matching the raw
// arguments, else the first whose bound arguments match the call's bound
// arguments, so Foo(1, Kwargs{"b": 2}) and Foo(1, 2) meet.
func (m *Method) lookup(call Call, normalized NormalizedArgs) *entry {
	for _, ent := range m.entries {
		if ent.pattern.Matches(call) {
			return ent
		}
	}

	for _, ent := range m.entries {
		expected, err := ent.pattern.Normalized()
		if err != nil {
			continue
		}

		if normalizedMatch(expected, normalized) {
			return ent
		}
	}

	return nil
}

func (m *Method) newCall(args []any) Call {
	positional, kwargs := splitArgs(args)

	return Call{Method: m, Args: positional, Kwargs: kwargs}
}

type entry struct {
	pattern     Call
	expectation *Expectation
}

func normalizedMatch(pattern, actual NormalizedArgs) bool {
	if len(pattern) != len(actual) {
		return false
	}

	for name, value := range pattern {
		actualValue, ok := actual[name]
		if !ok || !MatchValue(value, actualValue) {
			return false
		}
	}

	return true
}

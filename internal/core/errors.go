package core

import (
	"errors"
	"fmt"
)

// ArityOrNameError reports a call that cannot be bound to a Signature.
type ArityOrNameError struct {
	Func    string // qualified function name
	Problem string // e.g. "takes at most 3 arguments (4 given)"
}

func (e *ArityOrNameError) Error() string {
	return e.Func + "() " + e.Problem
}

// ExpectationNotConsumedError reports an attempt to re-register a pattern whose
// expectation is still pending.
type ExpectationNotConsumedError struct {
	Call Call
}

func (e *ExpectationNotConsumedError) Error() string {
	return "Trying to overwrite pending expectation for " + e.Call.String()
}

// MockOversaturatedError reports a call beyond what its expectation permits.
type MockOversaturatedError struct {
	SaturationError
}

func (e *MockOversaturatedError) Error() string {
	return e.describe("Oversaturated")
}

// MockUndersaturatedError reports an expectation that did not get the calls it requires.
type MockUndersaturatedError struct {
	SaturationError
}

func (e *MockUndersaturatedError) Error() string {
	return e.describe("Undersaturated")
}

// SaturationError is the detail shared by saturation failures: the call, its
// expectation, and the counts as they stood when the failure was detected.
type SaturationError struct {
	Call          Call
	Expectation   *Expectation
	ActualCalls   int
	ExpectedCalls Cardinality
}

func (e SaturationError) describe(kind string) string {
	return fmt.Sprintf(
		"%s mock function %s:\nActual: %s\nExpected: %s",
		kind, e.Call, actualCallsPhrase(e.ActualCalls), e.ExpectedCalls,
	)
}

// UnexpectedMockCallError reports a call that no registered pattern matches.
type UnexpectedMockCallError struct {
	Call Call
}

func (e *UnexpectedMockCallError) Error() string {
	return "Unexpected mock function called: " + e.Call.String()
}

// ErrNotMockMethod is returned when a Suite is asked to expect a call on
// something that is not a stubbed method.
var ErrNotMockMethod = errors.New("'expectCall' used with non-mock method")

// unexported variables.
var (
	errCapture        = errors.New("capture args")
	errInvokeMismatch = errors.New("invoke: callback does not fit the call")
	errNoMethod       = errors.New("call is not bound to a stubbed method")
)

func newSaturationError(call Call, expectation *Expectation) SaturationError {
	return SaturationError{
		Call:          call,
		Expectation:   expectation,
		ActualCalls:   expectation.ActualCalls(),
		ExpectedCalls: expectation.Expected(),
	}
}

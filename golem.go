// Package golem provides call expectations for test doubles.
// A test registers expected calls on a stubbed method, the code under test
// calls it, and golem matches each call, plays back the configured response,
// and verifies at the end that every expectation got exactly the calls it asked for.
//
// This is the public API entry point. Implementation lives in internal/core.
package golem

import (
	"github.com/toejough/golem/internal/core"
)

// Action produces a stub's response to a matched call.
type Action = core.Action

// ArityOrNameError reports a call that cannot be bound to a Signature.
type ArityOrNameError = core.ArityOrNameError

// Call is one invocation of a stubbed method, or one registered pattern.
type Call = core.Call

// Cardinality is a policy for how many times an expectation must be consumed.
type Cardinality = core.Cardinality

// Counter tracks consumptions against a Cardinality.
type Counter = core.Counter

// Expectation binds a call pattern to its responses and required call count.
type Expectation = core.Expectation

// ExpectationNotConsumedError reports re-registration of a pending pattern.
type ExpectationNotConsumedError = core.ExpectationNotConsumedError

// Expecter is anything a Suite can register expectations on and verify.
type Expecter = core.Expecter

// Kwargs holds the keyword arguments of a call.
type Kwargs = core.Kwargs

// Method is one stubbed method of one Mock.
type Method = core.Method

// Mock is the stub-defining object that owns stubbed Methods.
type Mock = core.Mock

// MockOversaturatedError reports a call beyond what its expectation permits.
type MockOversaturatedError = core.MockOversaturatedError

// MockUndersaturatedError reports an expectation that did not get its calls.
type MockUndersaturatedError = core.MockUndersaturatedError

// NormalizedArgs maps every parameter name to its bound value.
type NormalizedArgs = core.NormalizedArgs

// Parameter declares one parameter of a Signature.
type Parameter = core.Parameter

// SaturationError is the detail shared by saturation failures.
type SaturationError = core.SaturationError

// Signature is the precomputed parameter descriptor of a stubbed method.
type Signature = core.Signature

// Suite aggregates stubbed methods for bulk verification.
type Suite = core.Suite

// TestReporter is the minimal interface golem needs from test frameworks.
type TestReporter = core.TestReporter

// UnexpectedMockCallError reports a call no registered pattern matches.
type UnexpectedMockCallError = core.UnexpectedMockCallError

// Values carries the results of a method with more than one return value.
type Values = core.Values

// Wildcard is the pattern-only value that matches any single argument.
type Wildcard = core.Wildcard

// Any matches any single argument in an expected call.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var Any = core.Wildcard{}

// ErrNotMockMethod is returned when a Suite is asked to expect a call on
// something that is not a stubbed method.
var ErrNotMockMethod = core.ErrNotMockMethod

// AtLeast requires n or more calls.
func AtLeast(n int) Cardinality {
	return core.AtLeast(n)
}

// AtMost permits up to n calls.
func AtMost(n int) Cardinality {
	return core.AtMost(n)
}

// CaptureArgs copies the call's normalized arguments onto target.
func CaptureArgs(target any) Action {
	return core.CaptureArgs(target)
}

// Default declares a parameter with a default value.
func Default(name string, value any) Parameter {
	return core.Default(name, value)
}

// Exactly requires precisely n calls.
func Exactly(n int) Cardinality {
	return core.Exactly(n)
}

// FormatTimes renders a call count as "never", "once", "twice", or "N times".
func FormatTimes(n int) string {
	return core.FormatTimes(n)
}

// Invoke calls fn with the call's arguments and yields its results.
func Invoke(fn any) Action {
	return core.Invoke(fn)
}

// MatchValue reports whether actual satisfies pattern.
func MatchValue(pattern, actual any) bool {
	return core.MatchValue(pattern, actual)
}

// NewMock creates a Mock reporting to t, naming its methods "<name>.<method>".
func NewMock(t TestReporter, name string) *Mock {
	return core.NewMock(t, name)
}

// NewSignature builds the parameter descriptor for a function.
func NewSignature(name string, params ...Parameter) *Signature {
	return core.NewSignature(name, params...)
}

// NewSuite creates a Suite reporting to t.
func NewSuite(t TestReporter) *Suite {
	return core.NewSuite(t)
}

// Panic makes the stub panic with value.
func Panic(value any) Action {
	return core.Panic(value)
}

// Param declares a required parameter.
func Param(name string) Parameter {
	return core.Param(name)
}

// Result extracts the index'th result of a stub response for a method with
// typed results. A Values response is indexed; any other response is the
// single result at index 0. A nil response, or a missing result, yields the
// zero value. Numbers convert to T's numeric kind; any other mismatch panics.
func Result[T any](response any, index int) T {
	return core.Result[T](response, index)
}

// Return always yields value.
func Return(value any) Action {
	return core.Return(value)
}

// ReturnValues yields values as the results of a multi-result method.
func ReturnValues(values ...any) Action {
	return core.ReturnValues(values...)
}

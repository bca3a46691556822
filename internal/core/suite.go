package core

// Expecter is anything a Suite can register expectations on and verify.
// *Method implements it. Implementations must be comparable, since a Suite
// remembers each one once.
type Expecter interface {
	TryExpectCall(args ...any) (*Expectation, error)
	CheckSaturated() error
}

// Suite aggregates the stubbed methods a test sets expectations on, so they can
// all be verified at once. When its reporter supports Cleanup (as *testing.T
// does), the Suite verifies itself when the test ends.
type Suite struct {
	t       TestReporter
	targets []Expecter
}

// AssertSaturated fails the test on the first recorded method with an
// expectation still waiting for calls.
func (s *Suite) AssertSaturated() {
	err := s.CheckSaturated()
	if err != nil {
		s.fail(err)
	}
}

// CheckSaturated verifies every recorded method, in the order they were first
// used, and returns the first failure.
func (s *Suite) CheckSaturated() error {
	for _, target := range s.targets {
		err := target.CheckSaturated()
		if err != nil {
			return err
		}
	}

	return nil
}

// ExpectCall records target and registers an expectation on it. target must be
// a stubbed method; anything else fails with ErrNotMockMethod.
func (s *Suite) ExpectCall(target any, args ...any) *Expectation {
	expectation, err := s.TryExpectCall(target, args...)
	if err != nil {
		s.fail(err)

		return NewExpectation()
	}

	return expectation
}

// TryExpectCall is ExpectCall returning its failure instead of reporting it.
func (s *Suite) TryExpectCall(target any, args ...any) (*Expectation, error) {
	expecter, ok := target.(Expecter)
	if !ok {
		return nil, ErrNotMockMethod
	}

	s.remember(expecter)

	return expecter.TryExpectCall(args...)
}

// NewSuite creates a Suite reporting to t. A nil t makes failures panic.
func NewSuite(t TestReporter) *Suite {
	suite := &Suite{t: t}

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(suite.AssertSaturated)
	}

	return suite
}

func (s *Suite) fail(err error) {
	if s.t == nil {
		panic(err)
	}

	s.t.Helper()
	s.t.Fatalf("%v", err)
}

func (s *Suite) remember(target Expecter) {
	for _, known := range s.targets {
		if known == target {
			return
		}
	}

	s.targets = append(s.targets, target)
}

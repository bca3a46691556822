package core

import "fmt"

// Cardinality is a policy for how many times an expectation must be consumed.
// Build one with Exactly, AtLeast, or AtMost.
type Cardinality interface {
	fmt.Stringer

	// Count is the N of the policy.
	Count() int

	oversaturated(actual int) bool
	undersaturated(actual int) bool
}

// Counter tracks how many times an expectation has been consumed against its
// Cardinality. The count only ever grows; over-saturation is something the
// Counter reports, never something it prevents.
type Counter struct {
	actual int
	policy Cardinality
}

// Actual returns the number of recorded consumptions.
func (c *Counter) Actual() int {
	return c.actual
}

// IsOversaturated reports whether more consumptions happened than the policy allows.
func (c *Counter) IsOversaturated() bool {
	return c.policy.oversaturated(c.actual)
}

// IsSaturated reports whether the count satisfies the policy.
func (c *Counter) IsSaturated() bool {
	return !c.IsUndersaturated() && !c.IsOversaturated()
}

// IsUndersaturated reports whether the policy still requires more consumptions.
func (c *Counter) IsUndersaturated() bool {
	return c.policy.undersaturated(c.actual)
}

// Policy returns the current cardinality policy.
func (c *Counter) Policy() Cardinality {
	return c.policy
}

// Record counts one consumption.
func (c *Counter) Record() {
	c.actual++
}

// AtLeast requires n or more calls and never over-saturates.
func AtLeast(n int) Cardinality {
	return atLeast{n: checkedCount(n)}
}

// AtMost permits up to n calls and never under-saturates.
func AtMost(n int) Cardinality {
	return atMost{n: checkedCount(n)}
}

// Exactly requires precisely n calls.
func Exactly(n int) Cardinality {
	return exactly{n: checkedCount(n)}
}

// NewCounter starts a zero count under policy.
func NewCounter(policy Cardinality) *Counter {
	return &Counter{policy: policy}
}

type atLeast struct{ n int }

func (p atLeast) Count() int { return p.n }

func (p atLeast) String() string {
	return "to be called at least " + FormatTimes(p.n)
}

func (atLeast) oversaturated(int) bool { return false }

func (p atLeast) undersaturated(actual int) bool { return actual < p.n }

type atMost struct{ n int }

func (p atMost) Count() int { return p.n }

func (p atMost) String() string {
	return "to be called at most " + FormatTimes(p.n)
}

func (p atMost) oversaturated(actual int) bool { return actual > p.n }

func (atMost) undersaturated(int) bool { return false }

type exactly struct{ n int }

func (p exactly) Count() int { return p.n }

func (p exactly) String() string {
	if p.n == 0 {
		return "to be never called"
	}

	return "to be called " + FormatTimes(p.n)
}

func (p exactly) oversaturated(actual int) bool { return actual > p.n }

func (p exactly) undersaturated(actual int) bool { return actual < p.n }

func checkedCount(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("golem: call count must not be negative, got %d", n))
	}

	return n
}

package core

// Expectation binds a call pattern to its responses and its required call count.
//
// Responses come from a FIFO queue of one-shot actions and then from an
// optional repeating action. Unless Times overrides it, the required count
// follows the responses registered so far (see reconfigure).
type Expectation struct {
	counter    *Counter
	once       []Action
	repeatedly Action
}

// ActualCalls returns how many calls have consumed this expectation.
func (e *Expectation) ActualCalls() int {
	return e.counter.Actual()
}

// Consume records one call and plays the next response for it: the head of the
// one-shot queue, else the repeating action, else nothing. Consume never
// refuses a call; callers check IsOversaturated afterwards.
func (e *Expectation) Consume(call Call) (any, error) {
	e.counter.Record()

	action := e.nextAction()
	if action == nil {
		return nil, nil
	}

	return action(call)
}

// Expected returns the current cardinality policy.
func (e *Expectation) Expected() Cardinality {
	return e.counter.Policy()
}

// IsOversaturated reports whether more calls arrived than the policy allows.
func (e *Expectation) IsOversaturated() bool {
	return e.counter.IsOversaturated()
}

// IsSaturated reports whether the expectation is neither under- nor over-saturated.
func (e *Expectation) IsSaturated() bool {
	return e.counter.IsSaturated()
}

// IsUndersaturated reports whether the expectation still needs calls.
func (e *Expectation) IsUndersaturated() bool {
	return e.counter.IsUndersaturated()
}

// Times requires exactly n calls.
func (e *Expectation) Times(n int) *Expectation {
	return e.reconfigure(setTimes, Exactly(n), nil)
}

// TimesPolicy sets an explicit cardinality such as AtLeast(2) or AtMost(1).
func (e *Expectation) TimesPolicy(policy Cardinality) *Expectation {
	return e.reconfigure(setTimes, policy, nil)
}

// WillOnce queues a one-shot response and requires one more call.
func (e *Expectation) WillOnce(action Action) *Expectation {
	return e.reconfigure(addOnce, nil, action)
}

// WillRepeatedly sets the response for every call after the one-shot queue is
// drained, and relaxes the required count to at least the queue length.
func (e *Expectation) WillRepeatedly(action Action) *Expectation {
	return e.reconfigure(setRepeatedly, nil, action)
}

func (e *Expectation) nextAction() Action {
	if len(e.once) > 0 {
		action := e.once[0]
		e.once = e.once[1:]

		return action
	}

	return e.repeatedly
}

// reconfigure is the single place an Expectation's cardinality changes.
//
//   - setTimes installs the given policy as is.
//   - addOnce appends the action and re-derives Exactly(len(queue)).
//   - setRepeatedly installs the action and re-derives AtLeast(len(queue)).
//
// The last step wins, so WillOnce after Times discards the explicit count and
// Times after WillRepeatedly discards the relaxed one.
func (e *Expectation) reconfigure(step configStep, policy Cardinality, action Action) *Expectation {
	switch step {
	case setTimes:
		e.counter.policy = policy
	case addOnce:
		e.once = append(e.once, action)
		e.counter.policy = Exactly(len(e.once))
	case setRepeatedly:
		e.repeatedly = action
		e.counter.policy = AtLeast(len(e.once))
	}

	return e
}

// NewExpectation returns an expectation requiring exactly one call and
// producing no response.
func NewExpectation() *Expectation {
	return &Expectation{counter: NewCounter(Exactly(1))}
}

type configStep int

const (
	setTimes configStep = iota
	addOnce
	setRepeatedly
)

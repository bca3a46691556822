package core

import (
	"fmt"
	"slices"
)

// NormalizedArgs maps every declared parameter name of a Signature to the
// value bound to it for one call.
type NormalizedArgs map[string]any

// Parameter declares one parameter of a Signature. Build it with Param or Default.
type Parameter struct {
	Name       string
	Value      any
	HasDefault bool
}

// Signature is the precomputed parameter descriptor of a stubbed method: its
// ordered parameter names, which of them have defaults, and the default values.
// Required parameters always precede defaulted ones. A Signature never changes
// after NewSignature returns.
type Signature struct {
	name     string
	params   []string
	index    map[string]int
	defaults map[string]any
	required int
}

// Bind normalizes a call and returns the bound values in declaration order.
func (s *Signature) Bind(args []any, kwargs Kwargs) ([]any, error) {
	normalized, err := s.Normalize(args, kwargs)
	if err != nil {
		return nil, err
	}

	bound := make([]any, len(s.params))
	for i, name := range s.params {
		bound[i] = normalized[name]
	}

	return bound, nil
}

// DefaultValue returns the declared default of the named parameter.
func (s *Signature) DefaultValue(name string) (any, bool) {
	value, ok := s.defaults[name]

	return value, ok
}

// HasDefaults reports whether any parameter declares a default.
func (s *Signature) HasDefaults() bool {
	return len(s.defaults) > 0
}

// Name returns the function name the Signature was declared with.
func (s *Signature) Name() string {
	return s.name
}

// Normalize resolves a positional/keyword call into a value for every declared
// parameter: positional args bind left to right, keyword args bind by name, and
// anything still unbound takes its default. Malformed calls fail with an
// *ArityOrNameError.
func (s *Signature) Normalize(args []any, kwargs Kwargs) (NormalizedArgs, error) {
	return s.normalizeAs(s.name, args, kwargs)
}

// Params returns the parameter names in declaration order.
func (s *Signature) Params() []string {
	return slices.Clone(s.params)
}

// Required returns how many leading parameters have no default.
func (s *Signature) Required() int {
	return s.required
}

// Default declares a parameter that takes value when a call leaves it unbound.
func Default(name string, value any) Parameter {
	return Parameter{Name: name, Value: value, HasDefault: true}
}

// NewSignature builds the descriptor for a function called name. It panics on
// duplicate names or on a required parameter following a defaulted one, since
// either is a mistake in the stub declaration rather than in a test.
func NewSignature(name string, params ...Parameter) *Signature {
	sig := &Signature{
		name:     name,
		params:   make([]string, 0, len(params)),
		index:    make(map[string]int, len(params)),
		defaults: make(map[string]any),
	}

	for _, param := range params {
		if _, dup := sig.index[param.Name]; dup {
			panic(fmt.Sprintf("golem: %s() declares parameter %q twice", name, param.Name))
		}

		if param.HasDefault {
			sig.defaults[param.Name] = param.Value
		} else {
			if len(sig.defaults) > 0 {
				panic(fmt.Sprintf(
					"golem: %s() declares required parameter %q after a defaulted one", name, param.Name,
				))
			}

			sig.required++
		}

		sig.index[param.Name] = len(sig.params)
		sig.params = append(sig.params, param.Name)
	}

	return sig
}

// Param declares a required parameter.
func Param(name string) Parameter {
	return Parameter{Name: name}
}

// arityError builds the "takes <qualifier> N argument(s) (M given)" failure.
func (s *Signature) arityError(funcName, qualifier string, bound, given int) *ArityOrNameError {
	noun := "arguments"
	if bound == 1 {
		noun = "argument"
	}

	return &ArityOrNameError{
		Func:    funcName,
		Problem: fmt.Sprintf("takes %s %d %s (%d given)", qualifier, bound, noun, given),
	}
}

// normalizeAs is Normalize with the function name used in failure messages
// overridden, so dispatch errors carry the owner-qualified name.
//
//nolint:cyclop // the checks are ordered and each one is a distinct failure
func (s *Signature) normalizeAs(funcName string, args []any, kwargs Kwargs) (NormalizedArgs, error) {
	keys := kwargs.sortedKeys()

	for _, key := range keys {
		if _, ok := s.index[key]; !ok {
			return nil, &ArityOrNameError{
				Func:    funcName,
				Problem: fmt.Sprintf("got an unexpected keyword argument '%s'", key),
			}
		}
	}

	given := len(args) + len(kwargs)

	if len(s.params) == 0 && len(args) > 0 {
		return nil, &ArityOrNameError{
			Func:    funcName,
			Problem: fmt.Sprintf("takes no arguments (%d given)", len(args)),
		}
	}

	if given > len(s.params) {
		return nil, s.arityError(funcName, s.upperQualifier(), len(s.params), given)
	}

	for _, key := range keys {
		if s.index[key] < len(args) {
			return nil, &ArityOrNameError{
				Func:    funcName,
				Problem: fmt.Sprintf("got multiple values for argument '%s'", key),
			}
		}
	}

	normalized := make(NormalizedArgs, len(s.params))

	for i, value := range args {
		normalized[s.params[i]] = value
	}

	for key, value := range kwargs {
		normalized[key] = value
	}

	for _, name := range s.params[:s.required] {
		if _, ok := normalized[name]; !ok {
			return nil, s.arityError(funcName, s.lowerQualifier(), s.required, given)
		}
	}

	for name, value := range s.defaults {
		if _, ok := normalized[name]; !ok {
			normalized[name] = value
		}
	}

	return normalized, nil
}

func (s *Signature) lowerQualifier() string {
	if s.HasDefaults() {
		return "at least"
	}

	return "exactly"
}

func (s *Signature) upperQualifier() string {
	if s.HasDefaults() {
		return "at most"
	}

	return "exactly"
}

package core

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Call is one invocation of a stubbed method, or one registered pattern for
// such invocations: the method it targets plus the raw positional and keyword
// arguments, exactly as the caller supplied them.
type Call struct {
	Method *Method
	Args   []any
	Kwargs Kwargs
}

// Equal reports whether two calls are the same call: same method and equal
// argument values. A Wildcard on either side equals any value, so Foo(_, 2)
// and Foo(1, 2) are one registration.
func (c Call) Equal(other Call) bool {
	return c.Method == other.Method && c.compare(other, registeredEqual)
}

// Matches reports whether the actual call satisfies c as a pattern. A Wildcard
// in c matches any single value at its position or keyword.
func (c Call) Matches(actual Call) bool {
	return c.Method == actual.Method && c.compare(actual, MatchValue)
}

// Normalized binds the call's arguments against its method's Signature.
func (c Call) Normalized() (NormalizedArgs, error) {
	if c.Method == nil {
		return nil, errNoMethod
	}

	return c.Method.sig.normalizeAs(c.Method.Name(), c.Args, c.Kwargs)
}

// String renders the call as Owner.method(1, 2, c=3), keyword args sorted by name.
func (c Call) String() string {
	parts := make([]string, 0, len(c.Args)+len(c.Kwargs))

	for _, arg := range c.Args {
		parts = append(parts, renderValue(arg))
	}

	for _, key := range c.Kwargs.sortedKeys() {
		parts = append(parts, key+"="+renderValue(c.Kwargs[key]))
	}

	name := "<unbound>"
	if c.Method != nil {
		name = c.Method.Name()
	}

	return name + "(" + strings.Join(parts, ", ") + ")"
}

func (c Call) compare(other Call, same func(pattern, actual any) bool) bool {
	if len(c.Args) != len(other.Args) || len(c.Kwargs) != len(other.Kwargs) {
		return false
	}

	for i, arg := range c.Args {
		if !same(arg, other.Args[i]) {
			return false
		}
	}

	for key, value := range c.Kwargs {
		otherValue, ok := other.Kwargs[key]
		if !ok || !same(value, otherValue) {
			return false
		}
	}

	return true
}

// Kwargs holds the keyword arguments of a call. As the last element of a
// variadic argument list it is split off from the positional arguments.
type Kwargs map[string]any

func (k Kwargs) sortedKeys() []string {
	keys := make([]string, 0, len(k))
	for key := range k {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Wildcard is the pattern-only value that matches any single argument.
type Wildcard struct{}

// String renders the wildcard the way call descriptions show it.
func (Wildcard) String() string {
	return "_"
}

// MatchValue reports whether actual satisfies pattern: a Wildcard matches
// anything, and any other pattern must equal actual.
func MatchValue(pattern, actual any) bool {
	if _, ok := pattern.(Wildcard); ok {
		return true
	}

	return valuesEqual(pattern, actual)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // reflect type used for numeric comparisons
	float64Type = reflect.TypeFor[float64]()
)

// numericEqual compares two numbers of possibly different kinds, so that an
// untyped constant in a pattern equals the typed value a stub received.
func numericEqual(left, right reflect.Value) bool {
	switch {
	case isInt(left) && isInt(right):
		return left.Int() == right.Int()
	case isUint(left) && isUint(right):
		return left.Uint() == right.Uint()
	case isInt(left) && isUint(right):
		return left.Int() >= 0 && uint64(left.Int()) == right.Uint()
	case isUint(left) && isInt(right):
		return right.Int() >= 0 && left.Uint() == uint64(right.Int())
	case isNumber(left) && isNumber(right):
		return left.Convert(float64Type).Float() == right.Convert(float64Type).Float()
	default:
		return false
	}
}

func isInt(v reflect.Value) bool {
	switch v.Kind() { //nolint:exhaustive // only signed integers matter here
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// isNilValue reports whether value is a typed nil, such as []int(nil).
func isNilValue(value any) bool {
	v := reflect.ValueOf(value)

	switch v.Kind() { //nolint:exhaustive // only nil-able kinds matter here
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func isUint(v reflect.Value) bool {
	switch v.Kind() { //nolint:exhaustive // only unsigned integers matter here
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func registeredEqual(left, right any) bool {
	if _, ok := right.(Wildcard); ok {
		return true
	}

	return MatchValue(left, right)
}

// renderValue formats one argument for call descriptions.
func renderValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return "nil"
	case Wildcard:
		return typed.String()
	case string:
		quoted := strconv.Quote(typed)
		inner := strings.ReplaceAll(quoted[1:len(quoted)-1], `\"`, `"`)

		return "'" + strings.ReplaceAll(inner, "'", `\'`) + "'"
	default:
		return fmt.Sprintf("%#v", value)
	}
}

// splitArgs separates a trailing Kwargs from the positional arguments.
func splitArgs(args []any) ([]any, Kwargs) {
	if len(args) > 0 {
		if kwargs, ok := args[len(args)-1].(Kwargs); ok {
			return slices.Clone(args[:len(args)-1]), maps.Clone(kwargs)
		}
	}

	return slices.Clone(args), nil
}

// valuesEqual checks if two values are equal using reflect.DeepEqual, with
// numbers of different kinds compared by value and an untyped nil equal to
// any typed nil.
func valuesEqual(left, right any) bool {
	if reflect.DeepEqual(left, right) {
		return true
	}

	if left == nil {
		return isNilValue(right)
	}

	if right == nil {
		return isNilValue(left)
	}

	return numericEqual(reflect.ValueOf(left), reflect.ValueOf(right))
}

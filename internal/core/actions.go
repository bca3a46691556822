package core

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Action produces a stub's response to a matched call.
type Action func(call Call) (any, error)

// Values carries the results of a method with more than one return value.
type Values []any

// CaptureArgs copies the call's normalized arguments onto target, which must be
// a pointer to a struct or to a map. Struct fields match parameter names
// case-insensitively, or by a `golem:"name"` tag. The call yields no value.
func CaptureArgs(target any) Action {
	return func(call Call) (any, error) {
		normalized, err := call.Normalized()
		if err != nil {
			return nil, err
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  target,
			TagName: "golem",
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errCapture, err)
		}

		err = decoder.Decode(map[string]any(normalized))
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %w", errCapture, call, err)
		}

		return nil, nil
	}
}

// Invoke calls fn with the call's arguments and yields its results. fn may be
// any function. It receives the positional arguments as given; when keyword
// arguments were used, the remaining parameters follow in declaration order
// (keyword values or defaults), up to fn's arity. A nil argument becomes the
// zero value of its parameter. No results yield nil, one yields that value, and
// several yield Values.
func Invoke(fn any) Action {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Sprintf("golem: Invoke needs a function, got %T", fn))
	}

	return func(call Call) (any, error) {
		args, err := invokeArgs(call, fnValue.Type())
		if err != nil {
			return nil, err
		}

		return collectResults(fnValue.Call(args)), nil
	}
}

// Panic makes the stub panic with value.
func Panic(value any) Action {
	return func(Call) (any, error) {
		panic(value)
	}
}

// Return always yields value.
func Return(value any) Action {
	return func(Call) (any, error) {
		return value, nil
	}
}

// ReturnValues yields values as the results of a multi-result method.
func ReturnValues(values ...any) Action {
	return func(Call) (any, error) {
		return Values(values), nil
	}
}

func collectResults(out []reflect.Value) any {
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		results := make(Values, len(out))
		for i, value := range out {
			results[i] = value.Interface()
		}

		return results
	}
}

// convertArg turns one call argument into a value fn accepts at index.
func convertArg(arg any, paramType reflect.Type, index int) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(paramType), nil
	}

	value := reflect.ValueOf(arg)

	if value.Type().AssignableTo(paramType) {
		return value, nil
	}

	if isNumber(value) && isNumber(reflect.Zero(paramType)) {
		return value.Convert(paramType), nil
	}

	return reflect.Value{}, fmt.Errorf(
		"%w: argument %d is %T, callback wants %s", errInvokeMismatch, index, arg, paramType,
	)
}

// invokeArgs lays out the call's arguments for fnType.
func invokeArgs(call Call, fnType reflect.Type) ([]reflect.Value, error) {
	values := call.Args

	if len(call.Kwargs) > 0 {
		bound, err := call.Method.sig.Bind(call.Args, call.Kwargs)
		if err != nil {
			return nil, err
		}

		if !fnType.IsVariadic() && len(bound) > fnType.NumIn() {
			bound = bound[:fnType.NumIn()]
		}

		values = bound
	}

	fixed := fnType.NumIn()
	if fnType.IsVariadic() {
		fixed--
	}

	if len(values) < fixed || (!fnType.IsVariadic() && len(values) > fixed) {
		return nil, fmt.Errorf(
			"%w: callback takes %d arguments, call has %d", errInvokeMismatch, fnType.NumIn(), len(values),
		)
	}

	args := make([]reflect.Value, len(values))

	for i, arg := range values {
		paramType := fnType.In(min(i, fnType.NumIn()-1))
		if fnType.IsVariadic() && i >= fixed {
			paramType = paramType.Elem()
		}

		converted, err := convertArg(arg, paramType, i)
		if err != nil {
			return nil, err
		}

		args[i] = converted
	}

	return args, nil
}

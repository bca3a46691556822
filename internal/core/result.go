package core

import (
	"fmt"
	"reflect"
)

// Result extracts the index'th result of a stub response. Generated stubs use
// it to turn the untyped response of Method.Call into their declared results.
func Result[T any](response any, index int) T {
	var zero T

	value := response
	if values, ok := response.(Values); ok {
		if index >= len(values) {
			return zero
		}

		value = values[index]
	} else if index > 0 {
		return zero
	}

	if value == nil {
		return zero
	}

	if typed, ok := value.(T); ok {
		return typed
	}

	target := reflect.TypeFor[T]()
	converted := reflect.ValueOf(value)

	if isNumber(converted) && isNumber(reflect.Zero(target)) {
		typed, _ := converted.Convert(target).Interface().(T)

		return typed
	}

	panic(fmt.Sprintf("golem: result %d is %T, not %s", index, value, target))
}

// Package match provides the wildcard for golem call patterns.
// This package is designed to be dot-imported alongside gomega matchers:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/golem/match"
//	)
//
//	stub.Methods.Add.ExpectCall(Any, 2).WillOnce(golem.Return(42))
package match

import "github.com/toejough/golem/internal/core"

// Any matches any single argument at its position or keyword in an expected
// call. It only has meaning in patterns; an actual call containing Any is
// compared like any other value.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var Any = core.Wildcard{}

// IsAny reports whether value is the wildcard.
func IsAny(value any) bool {
	_, ok := value.(core.Wildcard)

	return ok
}

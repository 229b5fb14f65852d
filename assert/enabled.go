//go:build !assertions_disabled

// Package assert provides debug-only invariant checks. Every function here
// panics on failure by default; building with the assertions_disabled tag
// replaces every function with a no-op (see disabled.go), so release
// builds pay nothing for checks that only exist to catch a broken caller
// contract during development.
package assert

import "fmt"

// True panics unless value is true. The optional args format a panic
// message: if the first arg is a string it is used as a Printf-style
// format string for the rest; otherwise all args are included verbatim.
func True(value bool, args ...any) {
	if value {
		return
	}

	panicWith(args)
}

// False panics unless value is false.
func False(value bool, args ...any) {
	True(!value, args...)
}

// Nil panics unless value is nil.
func Nil(value any, args ...any) {
	True(value == nil, args...)
}

// NotNil panics unless value is non-nil.
func NotNil(value any, args ...any) {
	True(value != nil, args...)
}

// NonEmptySlice panics unless slice has at least one element.
func NonEmptySlice[T any](slice []T, args ...any) {
	True(len(slice) > 0, args...)
}

func panicWith(args []any) {
	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if format, ok := first.(string); ok {
		panic(fmt.Sprintf(format, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

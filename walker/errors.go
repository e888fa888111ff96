// SPDX-License-Identifier: MIT
// Package: dlcutils/walker
//
// errors.go — sentinel errors for the walker package.
//
// Callers branch with errors.Is; implementations wrap these sentinels with
// a "<Method>: ..." context via %w. No panics at runtime; option
// constructors panic on nil inputs only.

package walker

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a malformed construction argument or a
// focus node identifier that is not a member of the node set.
var ErrInvalidParameter = errors.New("walker: invalid parameter")

// ErrInvalidState indicates a walk operation invoked out of sequence:
// selecting a focus edge before any focus is set, adopting a next focus
// that was never selected, or reinforcing before a focus edge exists.
var ErrInvalidState = errors.New("walker: invalid state")

// walkErrorf wraps sentinel within a "<Method>: <message>" context.
func walkErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

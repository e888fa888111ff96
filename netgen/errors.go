// SPDX-License-Identifier: MIT
// Package: dlcutils/netgen
//
// errors.go — sentinel errors for the netgen package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via %w wrapping with a "<Method>: ..."
//     prefix (see genErrorf).
//   - Generators MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package netgen

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates malformed or mutually exclusive construction
// arguments: non-positive n, k >= n, odd lattice degree, a probability
// outside [0,1], an edge count outside [0, C(n,2)], or supplying both or
// neither of EdgeProbability and EdgeCount to Random.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject the inputs */ }.
var ErrInvalidParameter = errors.New("netgen: invalid parameter")

// ErrInvalidState indicates a construction phase was invoked out of
// sequence: re-running the first attachment on an already grown graph, or
// growing a preferential-attachment graph before its first attachment.
// The graph under construction must be considered not constructed.
// Usage: if errors.Is(err, ErrInvalidState) { /* discard the build */ }.
var ErrInvalidState = errors.New("netgen: invalid state")

// genErrorf wraps sentinel within a "<Method>: <message>" context so that
// errors.Is still matches while the text pinpoints the violation.
// Complexity: O(len(format)), negligible.
func genErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// Package netgen provides validation helpers to enforce parameter
// contracts in the generator implementations.
//
// Each function returns an error wrapping ErrInvalidParameter when its
// precondition is violated; all violations are reported synchronously at
// the point of construction.
package netgen

// validateMin ensures that the provided integer 'got' is >= 'min'.
//
// Parameters:
//   - method: constructor name constant, e.g. MethodRandom.
//   - name:   parameter name for the message ("n", "k", "m").
//   - got:    actual value supplied by the caller.
//   - min:    minimal acceptable value.
//
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return genErrorf(method, ErrInvalidParameter, "%s must be >= %d, got %d", name, min, got)
	}

	return nil
}

// validateProbability enforces p in [MinProbability, MaxProbability].
// Used for the Bernoulli inclusion probability and the rewiring
// probability.
//
// Complexity: O(1).
func validateProbability(method, name string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return genErrorf(method, ErrInvalidParameter,
			"%s must be in [%.1f,%.1f], got %v", name, MinProbability, MaxProbability, p)
	}

	return nil
}

// validateEvenDegree enforces that a ring-lattice degree is even.
//
// Complexity: O(1).
func validateEvenDegree(method string, k int) error {
	if k%2 != 0 {
		return genErrorf(method, ErrInvalidParameter, "lattice degree k must be even, got %d", k)
	}

	return nil
}

// validateBelowOrder enforces value < n, used for k < n constraints where
// a node cannot connect to more distinct neighbors than exist besides it.
//
// Complexity: O(1).
func validateBelowOrder(method, name string, got, n int) error {
	if got >= n {
		return genErrorf(method, ErrInvalidParameter, "%s must be < n, got %s=%d with n=%d", name, name, got, n)
	}

	return nil
}

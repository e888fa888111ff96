// White-box tests for the preferential-attachment phase machine: the
// public constructor always runs the phases in order, so the out-of-order
// guards are only reachable from inside the package.
package netgen

import (
	"errors"
	"testing"
)

// TestPABuilder_FirstAttachTwice verifies that re-running the seed
// attachment past the seed state is rejected.
func TestPABuilder_FirstAttachTwice(t *testing.T) {
	t.Parallel()

	b := newPABuilder(6, 2, newGenConfig())
	if err := b.firstAttach(); err != nil {
		t.Fatalf("firstAttach: %v", err)
	}
	if err := b.firstAttach(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second firstAttach error = %v; want ErrInvalidState", err)
	}
}

// TestPABuilder_GrowBeforeFirstAttach verifies that ordinary growth is
// illegal while the graph is still in its seed state.
func TestPABuilder_GrowBeforeFirstAttach(t *testing.T) {
	t.Parallel()

	b := newPABuilder(6, 2, newGenConfig())
	if err := b.grow(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("grow before firstAttach error = %v; want ErrInvalidState", err)
	}
}

// TestPABuilder_PhaseOrderStillBuilds sanity-checks that the legal phase
// sequence reaches the target order.
func TestPABuilder_PhaseOrderStillBuilds(t *testing.T) {
	t.Parallel()

	b := newPABuilder(6, 2, newGenConfig())
	if err := b.firstAttach(); err != nil {
		t.Fatalf("firstAttach: %v", err)
	}
	for b.order < b.n {
		if err := b.grow(); err != nil {
			t.Fatalf("grow at order %d: %v", b.order, err)
		}
	}
	if b.g.Size() != b.k*(b.n-b.k) {
		t.Errorf("size = %d; want %d", b.g.Size(), b.k*(b.n-b.k))
	}
}

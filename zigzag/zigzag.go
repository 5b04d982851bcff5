package zigzag

import (
	"fmt"

	"github.com/katalvlaran/zigzag/matrix"
)

// Traverse walks m in the configured order and returns the signed sum and
// the visit order.
//
// Algorithm:
//  1. Apply options; surface ErrOptionViolation if any was invalid.
//  2. Plan the visit schedule for m.Size() and the chosen Mode.
//  3. For each planned cell: read the value, negate it if the classifier
//     reports prime, accumulate, then call OnVisit.
//
// Errors:
//   - ErrNilMatrix       — m is nil.
//   - ErrOptionViolation — invalid option.
//   - any error returned by OnVisit, wrapped with the failing step.
//
// Panics if a planned cell lies outside m; schedules are derived from
// m.Size(), so this only happens if the planner itself is wrong.
//
// Complexity: O(n²) visits for Classic, O(n²/2) for Legacy.
func Traverse(m *matrix.Square, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if m == nil {
		return nil, ErrNilMatrix
	}

	steps := plan(m.Size(), o.Mode)
	res := &Result{Order: make([]Coord, 0, len(steps))}
	for i, s := range steps {
		v, err := m.At(s.Row, s.Col)
		if err != nil {
			panic(fmt.Errorf("zigzag: %s walk left the %dx%d grid at step %d: %w",
				o.Mode, m.Size(), m.Size(), i, err))
		}

		prime := o.Classifier(v)
		contrib := v
		if prime {
			contrib = -v
		}
		res.Sum += contrib
		res.Order = append(res.Order, s.Coord)

		if err = o.OnVisit(Visit{
			Coord:        s.Coord,
			Step:         i,
			Diagonal:     s.diag,
			Value:        v,
			Prime:        prime,
			Contribution: contrib,
		}); err != nil {
			return nil, fmt.Errorf("zigzag: OnVisit at step %d (%d,%d): %w", i, s.Row, s.Col, err)
		}
	}

	return res, nil
}

// Sum is Traverse reduced to the signed total.
func Sum(m *matrix.Square, opts ...Option) (int, error) {
	res, err := Traverse(m, opts...)
	if err != nil {
		return 0, err
	}

	return res.Sum, nil
}

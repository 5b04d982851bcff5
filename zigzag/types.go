// Package zigzag defines options, modes and results for the diagonal walk.
package zigzag

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zigzag/primes"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilMatrix is returned if a nil grid pointer is passed.
	ErrNilMatrix = errors.New("zigzag: matrix is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("zigzag: invalid option supplied")
)

// Mode selects which visiting order the walk follows.
type Mode int

const (
	// Classic visits every cell once, alternating direction per anti-diagonal.
	Classic Mode = iota

	// Legacy replays the historical defective walk: even diagonals contribute
	// nothing, and each odd diagonal d reads cell (start+1, d-start-1) once per
	// cell on that diagonal.
	Legacy
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Classic:
		return "classic"
	case Legacy:
		return "legacy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "classic"/"legacy" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "classic", "":
		return Classic, nil
	case "legacy":
		return Legacy, nil
	default:
		return Classic, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Coord addresses one grid cell.
type Coord struct {
	Row int
	Col int
}

// Visit describes one step of the walk, as passed to OnVisit.
type Visit struct {
	Coord
	Step         int  // 0-based position in the walk
	Diagonal     int  // anti-diagonal index (Row+Col)
	Value        int  // raw cell value
	Prime        bool // classifier verdict for Value
	Contribution int  // -Value when Prime, else Value
}

// Option configures the walk via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Traverse is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one traversal.
type Options struct {
	// Mode picks the visiting order.
	Mode Mode

	// Classifier decides which values are negated.
	Classifier primes.Classifier

	// OnVisit is called after each cell is accumulated. If it returns an
	// error, the walk aborts and propagates that error.
	OnVisit func(v Visit) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Classic mode
//   - primes.IsPrime as classifier
//   - no-op OnVisit
func DefaultOptions() Options {
	return Options{
		Mode:       Classic,
		Classifier: primes.IsPrime,
		OnVisit:    func(Visit) error { return nil },
	}
}

// WithMode selects Classic or Legacy order.
// Any other value is recorded as ErrOptionViolation.
func WithMode(mode Mode) Option {
	return func(o *Options) {
		switch mode {
		case Classic, Legacy:
			o.Mode = mode
		default:
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(mode))
		}
	}
}

// WithClassifier replaces the primality predicate.
// A nil classifier is recorded as ErrOptionViolation.
func WithClassifier(fn primes.Classifier) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: classifier cannot be nil", ErrOptionViolation)

			return
		}
		o.Classifier = fn
	}
}

// WithOnVisit registers a per-cell callback; returning an error from it
// stops the walk.
func WithOnVisit(fn func(v Visit) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Sum:   signed accumulation over the visited cells.
//   - Order: cells in visit sequence (repeats possible in Legacy mode).
type Result struct {
	Sum   int
	Order []Coord
}

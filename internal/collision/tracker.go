package collision

import (
	"fmt"

	"github.com/arloliu/cesar/errs"
)

// Tracker records code-to-symbol assignments and detects codes that are
// claimed by more than one symbol.
type Tracker struct {
	symbols    map[uint32]rune // code → first symbol that claimed it
	collisions []uint32        // codes claimed more than once, in detection order
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		symbols: make(map[uint32]rune),
	}
}

// Track records that symbol is encoded as code.
//
// Tracking the same (symbol, code) pair twice is not an error. A code already
// owned by a different symbol returns an error wrapping errs.ErrDuplicateCode.
func (t *Tracker) Track(symbol rune, code uint32) error {
	owner, exists := t.symbols[code]
	if !exists {
		t.symbols[code] = symbol
		return nil
	}

	if owner == symbol {
		return nil
	}

	t.collisions = append(t.collisions, code)

	return fmt.Errorf("%w: code %d used by %q and %q", errs.ErrDuplicateCode, code, owner, symbol)
}

// HasCollision reports whether any code was claimed by two symbols.
func (t *Tracker) HasCollision() bool {
	return len(t.collisions) > 0
}

// Collisions returns the colliding codes in detection order.
func (t *Tracker) Collisions() []uint32 {
	return t.collisions
}

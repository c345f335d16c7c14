package alphabet

import (
	"fmt"
	"maps"
	"slices"

	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/internal/collision"
	"github.com/arloliu/cesar/internal/hash"
)

// LatinStart is the code of 'A' in the default alphabet.
const LatinStart = 65

// LatinSize is the number of symbols in the default alphabet.
const LatinSize = 26

// Table is an immutable bidirectional mapping between symbols and numeric codes.
type Table struct {
	encrypt map[rune]uint32
	decrypt map[uint32]rune
}

// Latin builds a fresh A–Z alphabet coded with ASCII values.
//
// Returns:
//   - map[uint32]rune: decrypt mapping (code → symbol)
//   - map[rune]uint32: encrypt mapping (symbol → code)
func Latin() (map[uint32]rune, map[rune]uint32) {
	decrypt := make(map[uint32]rune, LatinSize)
	encrypt := make(map[rune]uint32, LatinSize)

	for code := uint32(LatinStart); code < LatinStart+LatinSize; code++ {
		decrypt[code] = rune(code)
		encrypt[rune(code)] = code
	}

	return decrypt, encrypt
}

// LatinTable returns Latin wrapped in a Table.
func LatinTable() *Table {
	decrypt, encrypt := Latin()
	return &Table{encrypt: encrypt, decrypt: decrypt}
}

// NewTable creates a Table from copies of encrypt and decrypt. Either map may be nil.
func NewTable(encrypt map[rune]uint32, decrypt map[uint32]rune) *Table {
	return &Table{
		encrypt: maps.Clone(encrypt),
		decrypt: maps.Clone(decrypt),
	}
}

// FromSymbols assigns consecutive codes, starting at start, to the runes of symbols.
//
// The decrypt mapping is derived as the exact inverse. A rune appearing twice
// in symbols is rejected with errs.ErrConfigInvalid.
func FromSymbols(symbols string, start uint32) (*Table, error) {
	encrypt := make(map[rune]uint32, len(symbols))
	decrypt := make(map[uint32]rune, len(symbols))

	code := start
	for _, r := range symbols {
		if _, exists := encrypt[r]; exists {
			return nil, fmt.Errorf("%w: symbol %q repeated in alphabet", errs.ErrConfigInvalid, r)
		}
		encrypt[r] = code
		decrypt[code] = r
		code++
	}

	return &Table{encrypt: encrypt, decrypt: decrypt}, nil
}

// Code returns the numeric code of symbol.
func (t *Table) Code(symbol rune) (uint32, bool) {
	code, ok := t.encrypt[symbol]
	return code, ok
}

// Symbol returns the symbol encoded as code.
func (t *Table) Symbol(code uint32) (rune, bool) {
	r, ok := t.decrypt[code]
	return r, ok
}

// Len returns the number of symbols in the encrypt mapping.
func (t *Table) Len() int {
	return len(t.encrypt)
}

// EncryptMap returns a copy of the symbol → code mapping.
func (t *Table) EncryptMap() map[rune]uint32 {
	return maps.Clone(t.encrypt)
}

// DecryptMap returns a copy of the code → symbol mapping.
func (t *Table) DecryptMap() map[uint32]rune {
	return maps.Clone(t.decrypt)
}

// Symbols returns the encrypt symbols ordered by code, ties broken by symbol.
func (t *Table) Symbols() []rune {
	symbols := slices.Collect(maps.Keys(t.encrypt))
	slices.SortFunc(symbols, func(a, b rune) int {
		ca, cb := t.encrypt[a], t.encrypt[b]
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}

		return int(a - b)
	})

	return symbols
}

// MinCode returns the smallest code of the encrypt mapping, or false for an empty table.
func (t *Table) MinCode() (uint32, bool) {
	if len(t.encrypt) == 0 {
		return 0, false
	}

	return slices.Min(slices.Collect(maps.Values(t.encrypt))), true
}

// Validate checks that no two symbols share a code.
func (t *Table) Validate() error {
	return ValidateEncrypt(t.encrypt)
}

// ValidateEncrypt checks that encrypt is injective.
//
// Symbols are visited in sorted order so the reported collision is stable.
// The error names the first colliding pair and lists every shared code.
func ValidateEncrypt(encrypt map[rune]uint32) error {
	tracker := collision.NewTracker()

	var first error
	for _, r := range slices.Sorted(maps.Keys(encrypt)) {
		if err := tracker.Track(r, encrypt[r]); err != nil && first == nil {
			first = err
		}
	}

	if !tracker.HasCollision() {
		return nil
	}

	return fmt.Errorf("%w (shared codes %v)", first, tracker.Collisions())
}

// Fingerprint returns the xxHash64 of the encrypt mapping.
//
// The hash covers (symbol, code) pairs in symbol order, so two tables with the
// same encrypt mapping always share a fingerprint regardless of how they were built.
func (t *Table) Fingerprint() uint64 {
	return Fingerprint(t.encrypt)
}

// Fingerprint returns the xxHash64 of an encrypt mapping. See Table.Fingerprint.
func Fingerprint(encrypt map[rune]uint32) uint64 {
	d := hash.NewDigest()
	for _, r := range slices.Sorted(maps.Keys(encrypt)) {
		d.WriteUint32(uint32(r)) //nolint:gosec
		d.WriteUint32(encrypt[r])
	}

	return d.Sum64()
}

package cipher

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/cesar/errs"
)

// EncodeSymbols maps each rune of word to its code in encrypt, preserving order.
//
// The first rune without an entry stops the scan and returns an error wrapping
// errs.ErrAlphabetMiss; no partial result is returned. An empty word yields an
// empty slice.
func EncodeSymbols(word string, encrypt map[rune]uint32) ([]uint32, error) {
	codes := make([]uint32, 0, utf8.RuneCountInString(word))

	pos := 0
	for _, r := range word {
		code, ok := encrypt[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", errs.ErrAlphabetMiss, r, pos)
		}
		codes = append(codes, code)
		pos++
	}

	return codes, nil
}

// Normalize subtracts start from every code, producing zero-based offsets.
//
// The subtraction is done in int64. A code below start is rejected with an
// error matching both errs.ErrAlphabetMiss and errs.ErrCodeUnderflow.
func Normalize(codes []uint32, start uint32) ([]uint64, error) {
	offsets := make([]uint64, len(codes))

	for i, code := range codes {
		offset := int64(code) - int64(start)
		if offset < 0 {
			return nil, fmt.Errorf("%w: %w: code %d at position %d is below start index %d",
				errs.ErrAlphabetMiss, errs.ErrCodeUnderflow, code, i, start)
		}
		offsets[i] = uint64(offset)
	}

	return offsets, nil
}

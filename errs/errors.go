// Package errs defines the sentinel errors returned by cesar packages.
//
// Errors are wrapped with context via fmt.Errorf("...: %w", ...), so callers
// should match them with errors.Is rather than comparing directly.
package errs

import "errors"

// Configuration errors.
var (
	// ErrConfigNotSet is returned when one or more required configuration fields are absent.
	ErrConfigNotSet = errors.New("cipher config is not fully set")
	// ErrConfigInvalid is returned when a configuration field holds a value outside its valid range.
	ErrConfigInvalid = errors.New("invalid cipher config")
	// ErrDuplicateCode is returned when two symbols of an alphabet share one numeric code.
	ErrDuplicateCode = errors.New("alphabet code assigned to more than one symbol")
	// ErrInvalidOption is returned when an encoder or writer option carries an unsupported value.
	ErrInvalidOption = errors.New("invalid option")
)

// Pipeline errors.
var (
	// ErrAlphabetMiss is returned when an input symbol has no entry in the encrypt alphabet.
	ErrAlphabetMiss = errors.New("symbol not in alphabet")
	// ErrCodeUnderflow is returned when a symbol code is smaller than the configured start index.
	ErrCodeUnderflow = errors.New("symbol code below start index")
	// ErrGroupOverflow is returned when a folded group does not fit in 64 bits.
	ErrGroupOverflow = errors.New("folded group overflows uint64")
	// ErrNumericParse is returned when a digit string was required but something else was found.
	ErrNumericParse = errors.New("not a decimal digit string")
)

// Archive errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid archive header size")
	ErrInvalidHeaderFlags = errors.New("invalid archive header flags")
	ErrInvalidCompression = errors.New("invalid archive compression")
	ErrArchiveCorrupted   = errors.New("archive payload corrupted")
	ErrChecksumMismatch   = errors.New("archive checksum mismatch")
	ErrAlphabetMismatch   = errors.New("archive was written with a different alphabet")
	ErrArchiveFinished    = errors.New("archive writer already finished")
	ErrTooManyEntries     = errors.New("archive entry count exceeds maximum")
)

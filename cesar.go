// Package cesar encrypts words into numeric ciphertexts with a keyed,
// grouped Caesar-style shift.
//
// Each symbol of a word is mapped to a numeric code through an alphabet,
// normalized against a start index, packed into base-100 groups, shifted by
// a key modulo a number of possibilities and rendered as text.
//
// # Basic Usage
//
//	out, err := cesar.EncryptWord("ABC")
//	// out == "2-3-4-"
//
// Custom parameters:
//
//	cfg := cesar.DefaultConfig().WithGroupSize(2).WithPossibilities(2526)
//	enc, err := cesar.NewEncoder(cfg)
//	out, err := enc.EncryptWord("HELLO")
//	// out == "706-1113-16-"
//
// Many ciphertexts can be stored in a compressed archive:
//
//	w, _ := cesar.NewArchiveWriter(enc)
//	w.AddAll(ctx, words)
//	data, _ := w.Finish()
//	r, _ := cesar.NewArchiveReader(data)
//
// # Package Structure
//
// This package wraps the cipher, alphabet and archive packages for the common
// cases. Use those packages directly for stage-level access (cipher.Group,
// cipher.Shift, Encoder.Trace) or custom alphabets.
package cesar

import (
	"github.com/arloliu/cesar/alphabet"
	"github.com/arloliu/cesar/archive"
	"github.com/arloliu/cesar/cipher"
	"github.com/arloliu/cesar/format"
)

var defaultEncoderOptions = []cipher.EncoderOption{
	cipher.WithLayout(format.LayoutDelimited),
	cipher.WithDelimiter(cipher.DefaultDelimiter),
	cipher.WithTrailingDelimiter(true),
}

// DefaultConfig returns the default cipher parameters over the upper-case
// Latin alphabet: key 2, group size 1, 26 possibilities, 2 index digits,
// start index 65.
func DefaultConfig() cipher.Config {
	return cipher.DefaultConfig()
}

// NewEncoder creates an encoder for cfg.
//
// Available options:
//   - cipher.WithLayout(format.LayoutDelimited|LayoutFixedWidth)
//   - cipher.WithDelimiter(string)
//   - cipher.WithTrailingDelimiter(bool)
//
// Parameters:
//   - cfg: cipher parameters, checked on every encryption
//   - opts: output options
//
// Returns:
//   - *cipher.Encoder: the created encoder
//   - error: errs.ErrInvalidOption if an option is rejected
func NewEncoder(cfg cipher.Config, opts ...cipher.EncoderOption) (*cipher.Encoder, error) {
	return cipher.NewEncoder(cfg, opts...)
}

// NewDefaultEncoder creates a delimited encoder with DefaultConfig.
func NewDefaultEncoder() (*cipher.Encoder, error) {
	return cipher.NewEncoder(DefaultConfig(), defaultEncoderOptions...)
}

// EncryptWord encrypts word with DefaultConfig.
func EncryptWord(word string) (string, error) {
	return DefaultConfig().EncryptWord(word)
}

// NewArchiveWriter creates an archive writer that encrypts with enc.
func NewArchiveWriter(enc *cipher.Encoder, opts ...archive.WriterOption) (*archive.Writer, error) {
	return archive.NewWriter(enc, opts...)
}

// NewArchiveReader parses and verifies an archive.
func NewArchiveReader(data []byte) (*archive.Reader, error) {
	return archive.NewReader(data)
}

// AlphabetFingerprint returns the fingerprint archives record for table.
//
// Example:
//
//	if r.Fingerprint() != cesar.AlphabetFingerprint(alphabet.LatinTable()) {
//	    // archive was written with another alphabet
//	}
func AlphabetFingerprint(table *alphabet.Table) uint64 {
	return table.Fingerprint()
}

// Package cipher implements the numeric substitution cipher: a generalized
// Caesar shift applied to groups of alphabet codes packed into compound
// decimal values.
//
// # Pipeline
//
// Encrypting a word runs five stages, each of which is also exported as a
// standalone transform:
//
//  1. EncodeSymbols maps every symbol to its numeric code through the
//     configured encrypt alphabet.
//  2. Normalize subtracts the start index so codes become zero-based offsets.
//  3. Group folds consecutive windows of group-size offsets into one value
//     using base-100 packing ([0 1] → 1, [3 14 15] → 31415). A window that
//     does not fit in a uint64 fails with errs.ErrGroupOverflow.
//  4. Shift adds the signed key to every grouped value modulo the configured
//     number of possibilities.
//  5. FormatGroups renders the shifted values as decimals joined by "-",
//     trailing delimiter included.
//
// With DefaultConfig (A–Z, key 2, group size 1, 26 possibilities):
//
//	out, err := cipher.DefaultConfig().EncryptWord("ABC")
//	// out == "2-3-4-"
//
// # Configuration
//
// Config is an immutable value populated through chained With* setters, each
// returning an updated copy:
//
//	cfg := cipher.DefaultConfig().
//	    WithGroupSize(2).
//	    WithPossibilities(2526).
//	    WithKeyValue(-7)
//
// A Config built with NewConfig has no fields set; encrypting with it fails
// with errs.ErrConfigNotSet until every field is given a value. A set Config
// is further checked by Validate, which rejects a zero key, a group size
// below 1, a zero digit width, a zero possibility count and
// an encrypt alphabet that assigns one code to two symbols.
//
// # Layouts
//
// The Encoder supports two output layouts selected with WithLayout:
//
//   - format.LayoutDelimited (default): the pipeline above.
//   - format.LayoutFixedWidth: raw codes are written as zero-padded
//     digit strings of IndexDigits width, padded with trailing zeros to a
//     multiple of GroupSize*IndexDigits, re-split into fixed-width groups,
//     shifted, and emitted zero-padded to the width of the largest residue
//     with no delimiter.
//
// # Limitations
//
// Base-100 packing assumes every normalized offset is below 100. Larger
// offsets overlap neighbouring digits and the packed value no longer
// identifies its window; this is a property of the format and is not
// corrected.
//
// # Thread Safety
//
// Config, Encoder and every exported transform are safe for concurrent use.
// EncryptAll fans independent EncryptWord calls over a bounded worker group.
package cipher

package cipher

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/internal/pool"
)

// DefaultDelimiter separates groups in the delimited layout.
const DefaultDelimiter = "-"

// FormatGroups renders values as decimal strings joined by delimiter.
//
// With trailing set, the delimiter is also appended after the last group,
// so [2 3 4] becomes "2-3-4-". No values yields "".
func FormatGroups(values []uint64, delimiter string, trailing bool) string {
	if len(values) == 0 {
		return ""
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	buf.Grow(len(values) * (4 + len(delimiter)))
	for i, v := range values {
		if i > 0 {
			buf.MustWriteString(delimiter)
		}
		buf.B = strconv.AppendUint(buf.B, v, 10)
	}
	if trailing {
		buf.MustWriteString(delimiter)
	}

	return buf.String()
}

// FormatFixedWidth renders values as decimals zero-padded to width and
// concatenated without a delimiter.
func FormatFixedWidth(values []uint64, width int) string {
	if len(values) == 0 {
		return ""
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	buf.Grow(len(values) * width)
	for _, v := range values {
		buf.B = appendPadded(buf.B, v, width)
	}

	return buf.String()
}

// PadDigits appends '0' to s until its length is a multiple of groupSize*digits.
//
// An already aligned string, including the empty string, is returned unchanged.
// A non-positive target width leaves s untouched.
func PadDigits(s string, groupSize int, digits uint8) string {
	width := groupSize * int(digits)
	if width <= 0 {
		return s
	}

	rem := len(s) % width
	if rem == 0 {
		return s
	}

	return s + strings.Repeat("0", width-rem)
}

// SplitDigits cuts s into chunks of groupSize*digits runes.
// The last chunk is shorter when s is not aligned.
func SplitDigits(s string, groupSize int, digits uint8) ([]string, error) {
	width := groupSize * int(digits)
	if width <= 0 {
		return nil, fmt.Errorf("%w: chunk width must be greater than 0 (group size %d, digits %d)",
			errs.ErrConfigInvalid, groupSize, digits)
	}

	chunks := make([]string, 0, (utf8.RuneCountInString(s)+width-1)/width)
	for s != "" {
		end, n := 0, 0
		for end < len(s) && n < width {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			n++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}

	return chunks, nil
}

// ParseDigitGroups parses every chunk as an unsigned decimal.
//
// A chunk that is empty, holds anything other than '0'–'9', or overflows
// uint64 returns an error wrapping errs.ErrNumericParse.
func ParseDigitGroups(chunks []string) ([]uint64, error) {
	values := make([]uint64, len(chunks))

	for i, chunk := range chunks {
		v, err := strconv.ParseUint(chunk, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: group %d %q", errs.ErrNumericParse, i, chunk)
		}
		values[i] = v
	}

	return values, nil
}

// DecimalWidth returns the number of decimal digits of v.
func DecimalWidth(v uint64) int {
	width := 1
	for v >= 10 {
		v /= 10
		width++
	}

	return width
}

func appendPadded(dst []byte, v uint64, width int) []byte {
	for pad := width - DecimalWidth(v); pad > 0; pad-- {
		dst = append(dst, '0')
	}

	return strconv.AppendUint(dst, v, 10)
}

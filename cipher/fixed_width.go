package cipher

import (
	"fmt"

	"github.com/arloliu/cesar/errs"
)

// codeDigits writes every code zero-padded to digits characters.
func codeDigits(codes []uint32, digits uint8) (string, error) {
	width := int(digits)
	buf := make([]byte, 0, len(codes)*width)

	for i, code := range codes {
		if DecimalWidth(uint64(code)) > width {
			return "", fmt.Errorf("%w: code %d at position %d does not fit in %d digits",
				errs.ErrConfigInvalid, code, i, width)
		}
		buf = appendPadded(buf, uint64(code), width)
	}

	return string(buf), nil
}

// fixedWidthGroups turns raw codes into the padded digit string and its
// parsed fixed-width groups.
func fixedWidthGroups(codes []uint32, groupSize int, digits uint8) (string, []uint64, error) {
	raw, err := codeDigits(codes, digits)
	if err != nil {
		return "", nil, err
	}

	padded := PadDigits(raw, groupSize, digits)

	chunks, err := SplitDigits(padded, groupSize, digits)
	if err != nil {
		return "", nil, err
	}

	groups, err := ParseDigitGroups(chunks)
	if err != nil {
		return "", nil, err
	}

	return padded, groups, nil
}

package cipher

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/arloliu/cesar/errs"
)

// GroupBase is the positional weight applied per element when folding a window.
const GroupBase = 100

// Group partitions values into consecutive windows of size elements and folds
// each window with FoldWindow.
//
// Window i covers values[i*size : (i+1)*size]; when len(values) is not a
// multiple of size the last window is shorter and is folded as is. An empty
// input yields an empty result, and a single value (or size <= 1) is returned
// unchanged.
//
// Returns an error wrapping errs.ErrGroupOverflow when a window does not fit
// in a uint64.
func Group(values []uint64, size int) ([]uint64, error) {
	if len(values) <= 1 || size <= 1 {
		return slices.Clone(values), nil
	}

	grouped := make([]uint64, 0, (len(values)+size-1)/size)
	for start := 0; start < len(values); start += size {
		end := min(start+size, len(values))
		v, err := FoldWindow(values[start:end])
		if err != nil {
			return nil, fmt.Errorf("window at %d: %w", start, err)
		}
		grouped = append(grouped, v)
	}

	return grouped, nil
}

// FoldWindow packs window into one value: the first element, then
// result = result*GroupBase + v for each following element.
//
// An empty window folds to 0. Nine two-digit values always fit; longer
// windows fit as long as the packed value stays below 2^64.
func FoldWindow(window []uint64) (uint64, error) {
	if len(window) == 0 {
		return 0, nil
	}

	result := window[0]
	for _, v := range window[1:] {
		hi, lo := bits.Mul64(result, GroupBase)
		sum, carry := bits.Add64(lo, v, 0)
		if hi != 0 || carry != 0 {
			return 0, fmt.Errorf("%w: window of %d values", errs.ErrGroupOverflow, len(window))
		}
		result = sum
	}

	return result, nil
}

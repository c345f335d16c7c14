package cipher

// Shift returns (v + key) mod modulus for every value, as the canonical
// residue in [0, modulus).
//
// The result equals the mathematical modulo of the signed sum for every
// uint64 value and int64 key, negative keys included; the arithmetic is done
// on residues so the sum never overflows. modulus must be greater than 0.
func Shift(values []uint64, key int64, modulus uint64) []uint64 {
	k := keyResidue(key, modulus)

	shifted := make([]uint64, len(values))
	for i, v := range values {
		shifted[i] = addMod(v%modulus, k, modulus)
	}

	return shifted
}

// ShiftValue shifts a single value. See Shift.
func ShiftValue(value uint64, key int64, modulus uint64) uint64 {
	return addMod(value%modulus, keyResidue(key, modulus), modulus)
}

// keyResidue returns key mod m in [0, m).
func keyResidue(key int64, m uint64) uint64 {
	if key >= 0 {
		return uint64(key) % m
	}

	// |key| mod m, computed from -(key+1) so that math.MinInt64 does not overflow
	r := (uint64(-(key+1))%m + 1) % m
	if r == 0 {
		return 0
	}

	return m - r
}

// addMod returns (a + b) mod m for a, b < m.
func addMod(a, b, m uint64) uint64 {
	if a >= m-b {
		return a - (m - b)
	}

	return a + b
}

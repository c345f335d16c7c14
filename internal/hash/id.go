// Package hash provides the xxHash64 digest used to fingerprint alphabets.
package hash

import "github.com/cespare/xxhash/v2"

// Digest accumulates an xxHash64 over several writes.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteUint32 adds v to the digest as four little-endian bytes.
func (d *Digest) WriteUint32(v uint32) {
	var b [4]byte
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	_, _ = d.d.Write(b[:])
}

// Sum64 returns the current hash.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

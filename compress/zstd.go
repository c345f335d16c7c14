package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// The Compress and Decompress methods live in zstd_pure.go (default) and
// zstd_cgo.go (gozstd build tag).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

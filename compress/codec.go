package compress

import (
	"fmt"

	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/format"
)

// Compressor compresses an archive payload.
//
// The returned slice is owned by the caller unless documented otherwise, and
// the input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Corrupted input or input produced by a different algorithm returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns the Codec for compressionType.
//
// Parameters:
//   - compressionType: None, Zstd, S2 or LZ4
//   - target: description of what is compressed, used in error messages
//
// Returns:
//   - Codec: codec for the given type
//   - error: errs.ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

// Package compress provides the payload codecs of ciphertext archives.
//
// Ciphertexts are short runs of decimal digits and delimiters, so an archive
// holding many of them compresses well. The archive writer encodes its
// length-prefixed ciphertext payload first and then hands it to one of the
// codecs in this package:
//
//   - None (format.CompressionNone): payload stored as is
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec returns the Codec for a format.CompressionType.
//
// # Zstd Implementations
//
// Zstd uses the pure Go github.com/klauspost/compress/zstd by default. Building
// with the gozstd tag on a cgo-enabled toolchain switches to the cgo bindings of
// github.com/valyala/gozstd. Both produce standard zstd frames, so archives
// written by one build are readable by the other.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Encoders and
// decoders that benefit from reuse are pooled internally.
package compress

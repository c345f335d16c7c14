package archive

import (
	"fmt"
	"hash/crc32"
	"iter"
	"slices"

	"github.com/arloliu/cesar/alphabet"
	"github.com/arloliu/cesar/compress"
	"github.com/arloliu/cesar/encoding"
	"github.com/arloliu/cesar/endian"
	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/format"
	"github.com/arloliu/cesar/section"
)

// Reader gives indexed access to the ciphertexts of an archive.
type Reader struct {
	header      section.Header
	ciphertexts []string
}

// NewReader parses and verifies an archive.
//
// The payload is decompressed, its size and CRC32 are checked against the
// header, and every entry is decoded up front.
//
// Returns:
//   - *Reader: reader over the decoded ciphertexts
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidHeaderFlags,
//     errs.ErrArchiveCorrupted or errs.ErrChecksumMismatch
func NewReader(data []byte) (*Reader, error) {
	if len(data) < section.HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	var header section.Header
	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}

	offset := int(header.PayloadOffset)
	if offset < section.HeaderSize || offset > len(data) {
		return nil, fmt.Errorf("%w: payload offset %d outside archive of %d bytes",
			errs.ErrArchiveCorrupted, offset, len(data))
	}

	stored := data[offset:]
	if len(stored) != int(header.CompressedSize) {
		return nil, fmt.Errorf("%w: stored payload is %d bytes, header says %d",
			errs.ErrArchiveCorrupted, len(stored), header.CompressedSize)
	}

	payload, err := decompress(header.Flag.GetCompression(), stored)
	if err != nil {
		return nil, err
	}

	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: decompressed payload is %d bytes, header says %d",
			errs.ErrArchiveCorrupted, len(payload), header.PayloadSize)
	}

	if sum := crc32.ChecksumIEEE(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got %08x, want %08x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	ciphertexts, err := encoding.DecodeAll(payload, int(header.Count))
	if err != nil {
		return nil, err
	}

	return &Reader{header: header, ciphertexts: ciphertexts}, nil
}

func decompress(compression format.CompressionType, stored []byte) ([]byte, error) {
	if len(stored) == 0 {
		return nil, nil
	}

	codec, err := compress.CreateCodec(compression, "payload")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrArchiveCorrupted, err)
	}

	return payload, nil
}

// Len returns the number of ciphertexts.
func (r *Reader) Len() int {
	return len(r.ciphertexts)
}

// At returns the ciphertext at index i.
func (r *Reader) At(i int) (string, bool) {
	if i < 0 || i >= len(r.ciphertexts) {
		return "", false
	}

	return r.ciphertexts[i], true
}

// All yields every (index, ciphertext) pair in write order.
func (r *Reader) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, c := range r.ciphertexts {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Ciphertexts returns a copy of all ciphertexts.
func (r *Reader) Ciphertexts() []string {
	return slices.Clone(r.ciphertexts)
}

// Header returns a copy of the parsed header.
func (r *Reader) Header() section.Header {
	return r.header
}

// Fingerprint returns the alphabet fingerprint recorded by the writer.
func (r *Reader) Fingerprint() uint64 {
	return r.header.Fingerprint
}

// Layout returns the layout the ciphertexts were produced with.
func (r *Reader) Layout() format.Layout {
	return r.header.Flag.GetLayout()
}

// ByteOrder returns the byte order of the header fields.
func (r *Reader) ByteOrder() endian.EndianEngine {
	return r.header.GetEndianEngine()
}

// Compression returns the payload compression.
func (r *Reader) Compression() format.CompressionType {
	return r.header.Flag.GetCompression()
}

// VerifyAlphabet checks that the archive was written with table's encrypt mapping.
//
// Returns errs.ErrAlphabetMismatch when the fingerprints differ.
func (r *Reader) VerifyAlphabet(table *alphabet.Table) error {
	if got := table.Fingerprint(); got != r.header.Fingerprint {
		return fmt.Errorf("%w: archive %016x, alphabet %016x", errs.ErrAlphabetMismatch, r.header.Fingerprint, got)
	}

	return nil
}

package section

import (
	"github.com/arloliu/cesar/endian"
	"github.com/arloliu/cesar/errs"
)

// Header is the fixed-size 32-byte archive header. See the package
// documentation for the byte layout.
type Header struct {
	Flag ArchiveFlag // 4 bytes, offset 0-3

	// Fingerprint identifies the alphabet the ciphertexts were written with.
	Fingerprint uint64 // 8 bytes, offset 4-11
	// Count is the number of ciphertexts in the payload.
	Count uint32 // 4 bytes, offset 12-15
	// PayloadOffset is the byte offset of the payload.
	PayloadOffset uint32 // 4 bytes, offset 16-19
	// PayloadSize is the uncompressed payload size in bytes.
	PayloadSize uint32 // 4 bytes, offset 20-23
	// Checksum is the CRC32-IEEE of the uncompressed payload.
	Checksum uint32 // 4 bytes, offset 24-27
	// CompressedSize is the stored payload size in bytes.
	CompressedSize uint32 // 4 bytes, offset 28-31
}

// NewHeader creates a header with a default flag for an alphabet fingerprint.
func NewHeader(fingerprint uint64) *Header {
	return &Header{
		Flag:          NewArchiveFlag(),
		Fingerprint:   fingerprint,
		PayloadOffset: PayloadOffsetOffset,
	}
}

// Parse parses the header from a byte slice.
//
// It returns errs.ErrInvalidHeaderSize unless data is exactly HeaderSize bytes,
// and errs.ErrInvalidHeaderFlags when the flag does not validate.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian so the endianness bit can be read first
	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Layout = data[2]
	h.Flag.Compression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.Fingerprint = engine.Uint64(data[4:12])
	h.Count = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	h.PayloadSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint32(data[24:28])
	h.CompressedSize = engine.Uint32(data[28:32])

	return nil
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Layout
	b[3] = h.Flag.Compression

	engine := h.GetEndianEngine()
	engine.PutUint64(b[4:12], h.Fingerprint)
	engine.PutUint32(b[12:16], h.Count)
	engine.PutUint32(b[16:20], h.PayloadOffset)
	engine.PutUint32(b[20:24], h.PayloadSize)
	engine.PutUint32(b[24:28], h.Checksum)
	engine.PutUint32(b[28:32], h.CompressedSize)

	return b
}

// GetEndianEngine returns the endian engine selected by the flag.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

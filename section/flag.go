package section

import (
	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/format"
)

// ArchiveFlag is the packed option field at the start of an archive header.
type ArchiveFlag struct {
	// Options packs the endianness bit, reserved bits and the magic number.
	Options uint16

	// Layout is the format.Layout the ciphertexts were produced with.
	Layout uint8

	// Compression is the format.CompressionType of the payload.
	Compression uint8
}

// NewArchiveFlag creates a little-endian flag for delimited, uncompressed archives.
func NewArchiveFlag() ArchiveFlag {
	return ArchiveFlag{
		Options:     MagicArchiveV1Opt,
		Layout:      uint8(format.LayoutDelimited),
		Compression: uint8(format.CompressionNone),
	}
}

// IsValidMagicNumber reports whether the magic number matches the archive format.
func (f ArchiveFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicArchiveV1Opt
}

// GetMagicNumber returns the magic number bits.
func (f ArchiveFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsLittleEndian reports whether the header fields are little-endian.
func (f ArchiveFlag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// IsBigEndian reports whether the header fields are big-endian.
func (f ArchiveFlag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian selects little-endian header fields.
func (f *ArchiveFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian selects big-endian header fields.
func (f *ArchiveFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetLayout records the ciphertext layout.
func (f *ArchiveFlag) SetLayout(layout format.Layout) {
	f.Layout = uint8(layout)
}

// GetLayout returns the ciphertext layout.
func (f ArchiveFlag) GetLayout() format.Layout {
	return format.Layout(f.Layout)
}

// SetCompression records the payload compression.
func (f *ArchiveFlag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression.
func (f ArchiveFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, reserved bits, layout and compression.
func (f ArchiveFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	switch f.GetLayout() {
	case format.LayoutDelimited, format.LayoutFixedWidth:
	default:
		return errs.ErrInvalidHeaderFlags
	}

	switch f.GetCompression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

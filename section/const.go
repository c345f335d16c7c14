package section

import "math"

const (
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicArchiveV1Opt = 0xEC10 // MagicArchiveV1Opt is the version 1 magic number of the archive format.
)

const (
	HeaderSize          = 32         // fixed header size in bytes
	PayloadOffsetOffset = HeaderSize // byte offset where the payload starts
	MaxCount            = math.MaxUint32
	MaxPayloadSize      = math.MaxUint32
)

// Package section defines the fixed-size binary header of ciphertext archives.
//
// # Archive Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (CompressedSize bytes)                          │
//	│  - uvarint length + ciphertext bytes, Count times       │
//	│  - compressed with the codec named in the flag          │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Layout
//
//	offset  size  field
//	0       2     Flag.Options (always little-endian)
//	                bit 0     endianness, 0=little 1=big
//	                bits 1-3  reserved, must be 0
//	                bits 4-15 magic number 0xEC1
//	2       1     Flag.Layout (format.Layout)
//	3       1     Flag.Compression (format.CompressionType)
//	4       8     Fingerprint (alphabet xxHash64)
//	12      4     Count
//	16      4     PayloadOffset
//	20      4     PayloadSize (uncompressed)
//	24      4     Checksum (CRC32-IEEE of the uncompressed payload)
//	28      4     CompressedSize
//
// Every multi-byte field after Options uses the byte order selected by the
// endianness bit.
package section

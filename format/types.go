// Package format defines the enumerations shared by the cipher and archive packages.
package format

type (
	Layout          uint8
	CompressionType uint8
)

const (
	LayoutDelimited  Layout = 0x1 // LayoutDelimited renders base-100 packed groups as "-"-delimited decimals.
	LayoutFixedWidth Layout = 0x2 // LayoutFixedWidth renders zero-padded raw codes re-split into fixed-width groups.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (l Layout) String() string {
	switch l {
	case LayoutDelimited:
		return "Delimited"
	case LayoutFixedWidth:
		return "FixedWidth"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseLayout maps a user-facing layout name to a Layout.
//
// Accepted names are "delimited" and "fixed" (or "fixed-width"). The second
// return value is false for unknown names.
func ParseLayout(name string) (Layout, bool) {
	switch name {
	case "delimited", "Delimited":
		return LayoutDelimited, true
	case "fixed", "fixed-width", "FixedWidth":
		return LayoutFixedWidth, true
	default:
		return 0, false
	}
}

// ParseCompression maps a user-facing compression name to a CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none", "None", "":
		return CompressionNone, true
	case "zstd", "Zstd":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// Package endian selects the byte order used for archive header fields.
//
// Archives default to little-endian. Big-endian archives are supported for
// readers on big-endian hosts:
//
//	engine := endian.GetBigEndianEngine()
//	engine.PutUint32(buf[12:16], count)
//
// The returned engines are the stateless encoding/binary byte orders and are
// safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Name returns "little" or "big" for an engine.
func Name(engine EndianEngine) string {
	if engine == binary.BigEndian {
		return "big"
	}

	return "little"
}

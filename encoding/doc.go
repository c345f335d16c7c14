// Package encoding provides the length-prefixed string codec used for archive payloads.
//
// Each string is written as an unsigned varint byte length followed by the
// raw bytes:
//
//	┌──────────────┬────────────────┐
//	│ uvarint len  │ len bytes      │
//	└──────────────┴────────────────┘
//
// Example:
//
//	enc := encoding.NewVarStringEncoder()
//	defer enc.Finish()
//	enc.Write("2-3-4-")
//	payload := enc.Bytes()
//
//	dec := encoding.NewVarStringDecoder(payload)
//	for dec.Next() {
//		fmt.Println(dec.Text())
//	}
//	if err := dec.Err(); err != nil { ... }
package encoding

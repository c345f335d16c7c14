package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/cesar/errs"
	"github.com/arloliu/cesar/internal/pool"
)

// MaxTextLength is the maximum byte length of a single encoded string.
const MaxTextLength = 1 << 20

// VarStringEncoder encodes strings with an unsigned varint length prefix.
type VarStringEncoder struct {
	buf     *pool.ByteBuffer
	scratch [binary.MaxVarintLen64]byte
	count   int
}

// NewVarStringEncoder creates an encoder backed by a pooled archive buffer.
//
// Returns:
//   - *VarStringEncoder: encoder ready for Write calls; call Finish to release the buffer
func NewVarStringEncoder() *VarStringEncoder {
	return &VarStringEncoder{buf: pool.GetArchiveBuffer()}
}

// Write appends one length-prefixed string.
//
// Parameters:
//   - text: string to encode, at most MaxTextLength bytes
//
// Returns:
//   - error: errs.ErrArchiveCorrupted wrapped with the length when text is too long
func (e *VarStringEncoder) Write(text string) error {
	if len(text) > MaxTextLength {
		return fmt.Errorf("%w: text length %d exceeds maximum %d", errs.ErrArchiveCorrupted, len(text), MaxTextLength)
	}

	n := binary.PutUvarint(e.scratch[:], uint64(len(text)))
	e.buf.Grow(n + len(text))
	e.buf.MustWrite(e.scratch[:n])
	e.buf.MustWriteString(text)
	e.count++

	return nil
}

// WriteSlice appends every string of texts, validating all lengths first.
func (e *VarStringEncoder) WriteSlice(texts []string) error {
	total := 0
	for _, text := range texts {
		if len(text) > MaxTextLength {
			return fmt.Errorf("%w: text length %d exceeds maximum %d", errs.ErrArchiveCorrupted, len(text), MaxTextLength)
		}
		total += binary.MaxVarintLen32 + len(text)
	}

	e.buf.Grow(total)
	for _, text := range texts {
		_ = e.Write(text)
	}

	return nil
}

// Bytes returns the encoded data.
//
// The returned slice shares the underlying buffer and is only valid until Finish.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of strings written.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
func (e *VarStringEncoder) Size() int {
	return e.buf.Len()
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *VarStringEncoder) Finish() {
	if e.buf != nil {
		pool.PutArchiveBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// VarStringDecoder iterates over length-prefixed strings.
type VarStringDecoder struct {
	data   []byte
	offset int
	index  int
	text   string
	err    error
}

// NewVarStringDecoder creates a decoder over data. data is not copied.
func NewVarStringDecoder(data []byte) *VarStringDecoder {
	return &VarStringDecoder{data: data}
}

// Next advances to the next string, returning false at the end of the data
// or on the first malformed entry.
func (d *VarStringDecoder) Next() bool {
	if d.err != nil || d.offset >= len(d.data) {
		return false
	}

	length, n := binary.Uvarint(d.data[d.offset:])
	if n <= 0 {
		d.err = fmt.Errorf("%w: bad length prefix at entry %d", errs.ErrArchiveCorrupted, d.index)
		return false
	}

	start := d.offset + n
	if length > MaxTextLength || uint64(len(d.data)-start) < length {
		d.err = fmt.Errorf("%w: entry %d length %d exceeds remaining %d bytes",
			errs.ErrArchiveCorrupted, d.index, length, len(d.data)-start)

		return false
	}

	end := start + int(length) //nolint:gosec
	d.text = string(d.data[start:end])
	d.offset = end
	d.index++

	return true
}

// Text returns the string decoded by the last successful Next.
func (d *VarStringDecoder) Text() string {
	return d.text
}

// Count returns the number of strings decoded so far.
func (d *VarStringDecoder) Count() int {
	return d.index
}

// Err returns the first decoding error.
func (d *VarStringDecoder) Err() error {
	return d.err
}

// DecodeAll decodes exactly count strings from data.
//
// Returns:
//   - []string: decoded strings
//   - error: errs.ErrArchiveCorrupted when data is malformed, holds fewer or
//     more than count strings
func DecodeAll(data []byte, count int) ([]string, error) {
	// every entry takes at least one length byte
	if count < 0 || count > len(data) {
		return nil, fmt.Errorf("%w: %d entries cannot fit in %d bytes", errs.ErrArchiveCorrupted, count, len(data))
	}

	texts := make([]string, 0, count)

	dec := NewVarStringDecoder(data)
	for dec.Next() {
		if len(texts) == count {
			return nil, fmt.Errorf("%w: more than %d entries", errs.ErrArchiveCorrupted, count)
		}
		texts = append(texts, dec.Text())
	}

	if err := dec.Err(); err != nil {
		return nil, err
	}

	if len(texts) != count {
		return nil, fmt.Errorf("%w: decoded %d entries, want %d", errs.ErrArchiveCorrupted, len(texts), count)
	}

	return texts, nil
}

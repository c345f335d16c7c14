package pool

import (
	"io"
	"sync"
)

const (
	TextBufferDefaultSize     = 64               // 64B, one ciphertext
	TextBufferMaxThreshold    = 1024 * 4         // 4KiB
	ArchiveBufferDefaultSize  = 1024 * 16        // 16KiB
	ArchiveBufferMaxThreshold = 1024 * 1024 * 2 // 2MiB
)

// ByteBuffer is an append-only byte slice wrapper that can be recycled through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// String returns a copy of the buffer contents as a string.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// Reset empties the buffer but keeps the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteString appends s to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWriteString(s string) {
	bb.B = append(bb.B, s...)
}

// MustWriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) MustWriteByte(c byte) {
	bb.B = append(bb.B, c)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by at least TextBufferDefaultSize; buffers larger than
// ArchiveBufferDefaultSize grow by 25% of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := TextBufferDefaultSize
	if cap(bb.B) > ArchiveBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put instead of
// being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	textDefaultPool    = NewByteBufferPool(TextBufferDefaultSize, TextBufferMaxThreshold)
	archiveDefaultPool = NewByteBufferPool(ArchiveBufferDefaultSize, ArchiveBufferMaxThreshold)
)

// GetTextBuffer retrieves a ByteBuffer sized for a single ciphertext.
func GetTextBuffer() *ByteBuffer {
	return textDefaultPool.Get()
}

// PutTextBuffer returns a ByteBuffer to the ciphertext pool.
func PutTextBuffer(bb *ByteBuffer) {
	textDefaultPool.Put(bb)
}

// GetArchiveBuffer retrieves a ByteBuffer sized for an archive payload.
func GetArchiveBuffer() *ByteBuffer {
	return archiveDefaultPool.Get()
}

// PutArchiveBuffer returns a ByteBuffer to the archive pool.
func PutArchiveBuffer(bb *ByteBuffer) {
	archiveDefaultPool.Put(bb)
}

// Package buffer implements a grow-on-append mutable byte sequence,
// the substrate used by the WBXML encoder for its header, body and
// nested-document output.
package buffer

import "bytes"

// defaultGrowth is the minimum amount a small buffer grows by when it
// runs out of capacity, chosen to avoid repeated reallocation for the
// short inline strings and attribute values typical of WBXML bodies.
const defaultGrowth = 256

// Buffer is a byte sequence that may contain embedded NUL bytes.
// Length is tracked explicitly; nothing in this package assumes
// NUL-terminated content. The zero value is an empty, usable Buffer.
type Buffer struct {
	b []byte
}

// New returns an empty Buffer with capacity hint reserved up front.
// The hint is advisory; a zero or negative hint allocates nothing.
func New(hint int) *Buffer {
	if hint < 0 {
		hint = 0
	}
	return &Buffer{b: make([]byte, 0, hint)}
}

// NewFrom returns a Buffer holding a copy of src.
func NewFrom(src []byte) *Buffer {
	buf := &Buffer{b: make([]byte, len(src))}
	copy(buf.b, src)
	return buf
}

// Len returns the number of bytes currently held.
func (buf *Buffer) Len() int {
	return len(buf.b)
}

// Cap reserves capacity for at least n more bytes without reallocating,
// growing the backing array if necessary. It never shrinks the buffer.
func (buf *Buffer) Cap(n int) {
	buf.grow(n)
}

// AppendByte appends a single byte.
func (buf *Buffer) AppendByte(b byte) {
	buf.grow(1)
	buf.b = append(buf.b, b)
}

// AppendBytes appends p in full.
func (buf *Buffer) AppendBytes(p []byte) {
	buf.grow(len(p))
	buf.b = append(buf.b, p...)
}

// AppendMBUint32 appends enc, a value already encoded as a WBXML
// multi-byte unsigned integer (by wbxml.EncodeMBUint32); it does no
// encoding of its own.
func (buf *Buffer) AppendMBUint32(enc []byte) {
	buf.AppendBytes(enc)
}

// PrependBytes inserts p at the front of the buffer, shifting existing
// content to the right.
func (buf *Buffer) PrependBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	grown := make([]byte, 0, len(p)+len(buf.b))
	grown = append(grown, p...)
	grown = append(grown, buf.b...)
	buf.b = grown
}

// Index returns the offset of the first occurrence of sub in the
// buffer, or -1 if sub is not present. sub may contain embedded NULs.
func (buf *Buffer) Index(sub []byte) int {
	return bytes.Index(buf.b, sub)
}

// Bytes borrows the current contents; the returned slice is only
// valid until the next mutating call on buf.
func (buf *Buffer) Bytes() []byte {
	return buf.b
}

// Take transfers ownership of the underlying storage to the caller and
// resets buf to empty.
func (buf *Buffer) Take() []byte {
	out := buf.b
	buf.b = nil
	return out
}

// Reset empties the buffer but keeps its backing array for reuse.
func (buf *Buffer) Reset() {
	buf.b = buf.b[:0]
}

// Equal reports whether buf and other hold identical raw bytes.
func (buf *Buffer) Equal(other *Buffer) bool {
	return bytes.Equal(buf.b, other.b)
}

func (buf *Buffer) grow(n int) {
	if cap(buf.b)-len(buf.b) >= n {
		return
	}
	growBy := defaultGrowth
	if cap(buf.b) > 4*defaultGrowth {
		growBy = cap(buf.b) / 4
	}
	if growBy < n {
		growBy = n
	}
	next := make([]byte, len(buf.b), len(buf.b)+growBy)
	copy(next, buf.b)
	buf.b = next
}

// Copyright (C) 2026 LoTwT. All Rights Reserved.

package estree

import (
	"fmt"
	"unicode/utf8"

	"github.com/LoTwT/oxc/internal/escape"

	"go4.org/mem"
)

// A CodeBuffer is an append-only buffer of UTF-8 text. The zero value is
// ready for use.
//
// The Print methods do not validate their input. Each method documents what
// the caller must guarantee so that the contents remain valid UTF-8.
type CodeBuffer struct {
	buf []byte
}

// NewCodeBuffer constructs an empty buffer with the given initial capacity.
func NewCodeBuffer(capacity int) *CodeBuffer {
	return &CodeBuffer{buf: make([]byte, 0, capacity)}
}

// PrintASCIIByte appends a single ASCII byte. It panics if c is not ASCII.
func (b *CodeBuffer) PrintASCIIByte(c byte) {
	if c >= utf8.RuneSelf {
		panic(fmt.Sprintf("estree: non-ASCII byte %#x", c))
	}
	b.buf = append(b.buf, c)
}

// PrintStr appends s, which must be valid UTF-8.
func (b *CodeBuffer) PrintStr(s string) { b.buf = append(b.buf, s...) }

// PrintBytesUnchecked appends the contents of m without validation. The
// caller must ensure m is valid UTF-8, that is, m begins and ends on
// character boundaries of valid text.
func (b *CodeBuffer) PrintBytesUnchecked(m mem.RO) { b.buf = mem.Append(b.buf, m) }

// printEscaped appends s as a JSON string literal escaped according to t.
//
// The appended bytes are not validated. They are valid UTF-8 because
// escape.Append only splits s before an ASCII byte or around a marker it
// has verified in full, and everything it inserts is ASCII except the
// complete encoding of U+FFFD.
func (b *CodeBuffer) printEscaped(s string, t *escape.Table) {
	b.buf = escape.Append(b.buf, mem.S(s), t)
}

// Grow ensures there is room for at least n more bytes without reallocating.
func (b *CodeBuffer) Grow(n int) {
	if cap(b.buf)-len(b.buf) < n {
		nb := make([]byte, len(b.buf), 2*cap(b.buf)+n)
		copy(nb, b.buf)
		b.buf = nb
	}
}

// Len reports the number of bytes written to b.
func (b *CodeBuffer) Len() int { return len(b.buf) }

// Bytes returns a view of the contents of b. The view is only valid until
// the next write to b.
func (b *CodeBuffer) Bytes() []byte { return b.buf }

// String returns a copy of the contents of b as a string.
func (b *CodeBuffer) String() string { return string(b.buf) }

// Reset discards the contents of b, retaining its storage.
func (b *CodeBuffer) Reset() { b.buf = b.buf[:0] }

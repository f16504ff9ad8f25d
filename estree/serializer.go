// Copyright (C) 2026 LoTwT. All Rights Reserved.

package estree

import (
	"math"
	"strconv"

	"go4.org/mem"
)

// ESTree is the interface implemented by values that can write themselves
// as ESTree JSON.
type ESTree interface {
	SerializeESTree(s *Serializer)
}

// Options are settings for a Serializer. A nil *Options provides defaults.
type Options struct {
	// Pretty, if true, causes Bytes to write each member of an object or
	// array on its own line, indented by two spaces per level. By default
	// the output is compact.
	Pretty bool

	// Ranges, if true, causes SpanFields to write a "range" field in
	// addition to "start" and "end".
	Ranges bool
}

func (o *Options) pretty() bool { return o != nil && o.Pretty }
func (o *Options) ranges() bool { return o != nil && o.Ranges }

// A Serializer accumulates the JSON encoding of ESTree values.
type Serializer struct {
	buf  CodeBuffer
	opts *Options
}

// NewSerializer constructs a new empty Serializer with the given options.
func NewSerializer(opts *Options) *Serializer { return &Serializer{opts: opts} }

// Buffer returns the buffer to which s writes its output.
func (s *Serializer) Buffer() *CodeBuffer { return &s.buf }

// Serialize writes v to the output. A nil v is written as null.
func (s *Serializer) Serialize(v ESTree) {
	if v == nil {
		s.buf.PrintStr("null")
		return
	}
	v.SerializeESTree(s)
}

// Bytes returns the serialized output. If the Pretty option is set, the
// output is formatted, and Bytes reports an error if the output is not a
// valid JSON value.
func (s *Serializer) Bytes() ([]byte, error) {
	out := append([]byte(nil), s.buf.Bytes()...)
	if !s.opts.pretty() {
		return out, nil
	}
	return indent(out)
}

// String returns the serialized output as a string. If formatting fails,
// String returns the unformatted output.
func (s *Serializer) String() string {
	out, err := s.Bytes()
	if err != nil {
		return s.buf.String()
	}
	return string(out)
}

// Reset discards the output of s, retaining its options.
func (s *Serializer) Reset() { s.buf.Reset() }

// Struct begins an object. The caller must call End on the result when all
// the fields have been written.
func (s *Serializer) Struct() *StructSerializer {
	s.buf.PrintASCIIByte('{')
	return &StructSerializer{s: s}
}

// Sequence begins an array. The caller must call End on the result when all
// the elements have been written.
func (s *Serializer) Sequence() *SequenceSerializer {
	s.buf.PrintASCIIByte('[')
	return &SequenceSerializer{s: s}
}

// A StructSerializer writes the fields of an object.
type StructSerializer struct {
	s *Serializer
	n int
}

// Field writes a field with the given key and value. The key is written
// without escaping, and must not contain characters that JSON requires to be
// escaped.
func (st *StructSerializer) Field(key string, v ESTree) {
	if st.n > 0 {
		st.s.buf.PrintASCIIByte(',')
	}
	st.n++
	WriteSafeString(&st.s.buf, key)
	st.s.buf.PrintASCIIByte(':')
	st.s.Serialize(v)
}

// SpanFields writes the "start" and "end" fields for sp, and a "range" field
// if the Ranges option is set.
func (st *StructSerializer) SpanFields(sp Span) {
	st.Field("start", Number(sp.Start))
	st.Field("end", Number(sp.End))
	if st.s.opts.ranges() {
		st.Field("range", sp.Range())
	}
}

// End closes the object.
func (st *StructSerializer) End() { st.s.buf.PrintASCIIByte('}') }

// A SequenceSerializer writes the elements of an array.
type SequenceSerializer struct {
	s *Serializer
	n int
}

// Element writes v as the next element of the array.
func (sq *SequenceSerializer) Element(v ESTree) {
	if sq.n > 0 {
		sq.s.buf.PrintASCIIByte(',')
	}
	sq.n++
	sq.s.Serialize(v)
}

// End closes the array.
func (sq *SequenceSerializer) End() { sq.s.buf.PrintASCIIByte(']') }

// A Slice is a sequence of values written as a JSON array.
type Slice[T ESTree] []T

// SerializeESTree implements the ESTree interface.
func (a Slice[T]) SerializeESTree(s *Serializer) {
	sq := s.Sequence()
	for _, v := range a {
		sq.Element(v)
	}
	sq.End()
}

// Bool is a Boolean value.
type Bool bool

// SerializeESTree implements the ESTree interface.
func (b Bool) SerializeESTree(s *Serializer) {
	if b {
		s.buf.PrintStr("true")
	} else {
		s.buf.PrintStr("false")
	}
}

// Null is the null value.
type Null struct{}

// SerializeESTree implements the ESTree interface.
func (Null) SerializeESTree(s *Serializer) { s.buf.PrintStr("null") }

// A Number is a numeric value, written the way JavaScript converts a number
// to a string. NaN and infinities are written as null.
type Number float64

// SerializeESTree implements the ESTree interface.
func (n Number) SerializeESTree(s *Serializer) {
	f := float64(n)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		s.buf.PrintStr("null")
	case f == 0:
		s.buf.PrintASCIIByte('0') // including -0
	default:
		var tmp [32]byte
		s.buf.PrintBytesUnchecked(mem.B(appendNumber(tmp[:0], f)))
	}
}

// appendNumber appends the shortest decimal form of f, using an exponent
// only when |f| < 1e-6 or |f| >= 1e21. A one-digit exponent is not padded.
func appendNumber(dst []byte, f float64) []byte {
	fmt := byte('f')
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		fmt = 'e'
	}
	dst = strconv.AppendFloat(dst, f, fmt, -1, 64)
	if fmt == 'e' {
		// Convert e-09 to e-9.
		if n := len(dst); n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

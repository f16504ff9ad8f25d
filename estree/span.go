// Copyright (C) 2026 LoTwT. All Rights Reserved.

package estree

// A Span describes a contiguous span of a source input.
type Span struct {
	Start uint32 // the start offset, 0-based
	End   uint32 // the end offset, 0-based (noninclusive)
}

// Len reports the length of s in bytes.
func (s Span) Len() int { return int(s.End - s.Start) }

// IsEmpty reports whether s covers no input.
func (s Span) IsEmpty() bool { return s.Start == s.End }

// Range is the ESTree "range" representation of s, a two-element array.
func (s Span) Range() Slice[Number] {
	return Slice[Number]{Number(s.Start), Number(s.End)}
}

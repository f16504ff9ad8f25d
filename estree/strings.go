// Copyright (C) 2026 LoTwT. All Rights Reserved.

package estree

import "github.com/LoTwT/oxc/internal/escape"

// WriteSafeString writes s to buf as a JSON string without escaping. The
// caller asserts that s contains no character that JSON requires to be
// escaped; if it does, the output is not valid JSON.
func WriteSafeString(buf *CodeBuffer, s string) {
	buf.PrintASCIIByte('"')
	buf.PrintStr(s)
	buf.PrintASCIIByte('"')
}

// WriteString writes s to buf as an escaped JSON string.
func WriteString(buf *CodeBuffer, s string) {
	buf.printEscaped(s, &escape.Standard)
}

// WriteLoneSurrogatesString writes s to buf as an escaped JSON string, in
// which lone surrogate markers are written as \uXXXX escapes. It panics if s
// contains a U+FFFD that is not followed by four hex digits.
func WriteLoneSurrogatesString(buf *CodeBuffer, s string) {
	buf.printEscaped(s, &escape.LoneSurrogates)
}

// A JSONSafeString is a string that needs no escaping in JSON.
// It is written with WriteSafeString.
type JSONSafeString string

// SerializeESTree implements the ESTree interface.
func (j JSONSafeString) SerializeESTree(s *Serializer) { WriteSafeString(&s.buf, string(j)) }

// A LoneSurrogatesString is a string that may contain lone surrogate
// markers. It is written with WriteLoneSurrogatesString.
type LoneSurrogatesString string

// SerializeESTree implements the ESTree interface.
func (l LoneSurrogatesString) SerializeESTree(s *Serializer) {
	WriteLoneSurrogatesString(&s.buf, string(l))
}

// A String is an ordinary string. It is written with WriteString.
type String string

// SerializeESTree implements the ESTree interface.
func (t String) SerializeESTree(s *Serializer) { WriteString(&s.buf, string(t)) }

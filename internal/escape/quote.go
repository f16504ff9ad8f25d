// Copyright (C) 2026 LoTwT. All Rights Reserved.

package escape

import (
	"fmt"

	"go4.org/mem"
)

// replacementChar is the UTF-8 encoding of U+FFFD.
const replacementChar = "\ufffd"

// markerLen is the length in bytes of a lone surrogate marker: the
// replacement character followed by four hex digits.
const markerLen = len(replacementChar) + 4

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON string literal, including the enclosing double
// quotation marks, using the Standard table.
func Quote(src mem.RO) []byte {
	return Append(make([]byte, 0, src.Len()+2), src, &Standard)
}

// QuoteLoneSurrogates is as Quote, but uses the LoneSurrogates table.
func QuoteLoneSurrogates(src mem.RO) []byte {
	return Append(make([]byte, 0, src.Len()+2), src, &LoneSurrogates)
}

// Append appends src to dst as a JSON string literal, escaped according to
// t, and returns the extended slice. The contents of src must be valid UTF-8.
//
// When t classifies 0xEF as LoneSurrogate, any occurrence of U+FFFD in src
// must be followed by four ASCII hex digits. The digits "fffd" denote the
// replacement character itself; any other digits denote a lone surrogate,
// which is written as a \uXXXX escape with the digits copied unchanged.
// Append panics if a marker is not followed by four hex digits.
func Append(dst []byte, src mem.RO, t *Table) []byte {
	dst = append(dst, '"')

	// Runs of unescaped bytes are copied in bulk without validation. Every
	// byte that stops a run is ASCII, except the lead byte of a marker whose
	// seven bytes have all been checked, so each run is valid UTF-8.
	start, n := 0, src.Len()
	for i := 0; i < n; i++ {
		b := src.At(i)
		e := t.Lookup(b)
		if e == None {
			continue
		}

		if e == LoneSurrogate {
			if !hasReplacementAt(src, i) {
				// Some other character with the same lead byte. Skip its two
				// continuation bytes, which are never escaped.
				i += 2
				continue
			}
			hex := markerDigits(src, i)
			dst = mem.Append(dst, src.Slice(start, i))
			if hex.EqualString("fffd") {
				dst = append(dst, replacementChar...)
			} else {
				dst = append(dst, '\\', 'u')
				dst = mem.Append(dst, hex)
			}
			i += markerLen - 1
			start = i + 1
			continue
		}

		if start < i {
			dst = mem.Append(dst, src.Slice(start, i))
		}
		dst = appendEscape(dst, e, b)
		start = i + 1
	}
	if start < n {
		dst = mem.Append(dst, src.SliceFrom(start))
	}
	return append(dst, '"')
}

// hasReplacementAt reports whether the encoding of U+FFFD begins at offset i
// of src.
func hasReplacementAt(src mem.RO, i int) bool {
	return i+len(replacementChar) <= src.Len() &&
		src.Slice(i, i+len(replacementChar)).EqualString(replacementChar)
}

// markerDigits returns the four hex digits following the replacement
// character at offset i of src. It panics if they are missing or malformed,
// since that means the text was not produced by the lone surrogate encoding.
func markerDigits(src mem.RO, i int) mem.RO {
	lo := i + len(replacementChar)
	if i+markerLen > src.Len() {
		panic(fmt.Sprintf("escape: truncated lone surrogate marker at offset %d", i))
	}
	hex := src.Slice(lo, i+markerLen)
	for j := 0; j < hex.Len(); j++ {
		if !isHexDigit(hex.At(j)) {
			panic(fmt.Sprintf("escape: invalid lone surrogate marker %q at offset %d",
				hex.StringCopy(), i))
		}
	}
	return hex
}

// appendEscape appends the escape sequence for byte b, classified as e.
func appendEscape(dst []byte, e Escape, b byte) []byte {
	if e.IsNamed() {
		return append(dst, '\\', byte(e))
	}
	return append(dst, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

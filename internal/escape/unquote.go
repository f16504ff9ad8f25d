// Copyright (C) 2026 LoTwT. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings for ESTree
// output, including the lone surrogate marker convention.
//
// Text produced from UTF-16 sources may contain lone surrogates, which have
// no UTF-8 encoding. Such text represents each lone surrogate as U+FFFD
// followed by the four lowercase hex digits of the code unit, for example
// "\ufffdd834". A genuine U+FFFD is represented as "\ufffdfffd".
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes, including unpaired surrogate escapes, are replaced by the Unicode
// replacement rune. Unquote reports an error for an incomplete escape
// sequence.
func Unquote(src mem.RO) ([]byte, error) { return unquote(src, false) }

// UnquoteLoneSurrogates is as Unquote, except that unpaired surrogate escapes
// are decoded to lone surrogate markers, and each U+FFFD in the result is
// written as a marker with digits "fffd". The result is the text that Append
// with the LoneSurrogates table encodes back to src.
func UnquoteLoneSurrogates(src mem.RO) ([]byte, error) { return unquote(src, true) }

func unquote(src mem.RO, lone bool) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	putRun := func(run mem.RO) {
		if !lone {
			dec = mem.Append(dec, run)
			return
		}
		for {
			i := mem.Index(run, mem.S(replacementChar))
			if i < 0 {
				dec = mem.Append(dec, run)
				return
			}
			dec = mem.Append(dec, run.SliceTo(i))
			dec = appendMarker(dec, utf8.RuneError)
			run = run.SliceFrom(i + len(replacementChar))
		}
	}
	putRune := func(r rune) {
		if lone && (r == utf8.RuneError || utf16.IsSurrogate(r)) {
			dec = appendMarker(dec, uint16(r))
		} else {
			dec = utf8.AppendRune(dec, r)
		}
	}

	i := mem.IndexByte(src, '\\')
	if i < 0 {
		putRun(src)
		return dec, nil
	}
	for src.Len() != 0 {
		putRun(src.SliceTo(i))

		// Decode the next rune after the escape to figure out what to
		// substitute. There should not be errors here, but if there are, insert
		// replacement runes (utf8.RuneError == '\ufffd').
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			src = src.SliceFrom(4)
			if err != nil {
				putRune(utf8.RuneError)
				break
			}
			r := rune(v)
			if utf16.IsSurrogate(r) {
				if lo, ok := lowSurrogate(r, src); ok {
					r = utf16.DecodeRune(r, lo)
					src = src.SliceFrom(6)
				} else if !lone {
					r = utf8.RuneError
				}
			}
			putRune(r)
		default:
			putRune(utf8.RuneError)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			putRun(src)
			break
		}
	}
	return dec, nil
}

// lowSurrogate reports whether hi is a high surrogate and src begins with an
// escaped low surrogate that completes the pair.
func lowSurrogate(hi rune, src mem.RO) (rune, bool) {
	if hi >= 0xdc00 || src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, false
	}
	v, err := parseHex(src.Slice(2, 6))
	if err != nil || v < 0xdc00 || v > 0xdfff {
		return 0, false
	}
	return rune(v), true
}

// EncodeLoneSurrogates converts a sequence of UTF-16 code units to UTF-8,
// writing lone surrogates and U+FFFD as markers. Valid surrogate pairs are
// combined into a single code point.
func EncodeLoneSurrogates(units []uint16) []byte {
	out := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		switch {
		case r == utf8.RuneError:
			out = appendMarker(out, units[i])
		case utf16.IsSurrogate(r):
			if r < 0xdc00 && i+1 < len(units) {
				if c := utf16.DecodeRune(r, rune(units[i+1])); c != utf8.RuneError {
					out = utf8.AppendRune(out, c)
					i++
					continue
				}
			}
			out = appendMarker(out, units[i])
		default:
			out = utf8.AppendRune(out, r)
		}
	}
	return out
}

// appendMarker appends the lone surrogate marker for code unit v.
func appendMarker(dst []byte, v uint16) []byte {
	dst = append(dst, replacementChar...)
	return append(dst, hexDigit[v>>12], hexDigit[v>>8&15], hexDigit[v>>4&15], hexDigit[v&15])
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

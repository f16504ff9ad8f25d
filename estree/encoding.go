// Copyright (C) 2026 LoTwT. All Rights Reserved.

package estree

import (
	"errors"
	"strings"

	"github.com/LoTwT/oxc/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// QuoteLoneSurrogates is as Quote, but lone surrogate markers in src are
// written as \uXXXX escapes.
func QuoteLoneSurrogates(src string) string {
	return string(escape.QuoteLoneSurrogates(mem.S(src)))
}

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) ([]byte, error) {
	body, err := trimQuotes(src)
	if err != nil {
		return nil, err
	}
	return escape.Unquote(mem.S(body))
}

// UnquoteLoneSurrogates is as Unquote, but unpaired surrogate escapes are
// decoded to lone surrogate markers. The result is suitable for
// WriteLoneSurrogatesString, which restores the original escapes.
func UnquoteLoneSurrogates(src string) ([]byte, error) {
	body, err := trimQuotes(src)
	if err != nil {
		return nil, err
	}
	return escape.UnquoteLoneSurrogates(mem.S(body))
}

// FromUTF16 converts a sequence of UTF-16 code units to a string in which
// lone surrogates are represented by markers.
func FromUTF16(units []uint16) string { return string(escape.EncodeLoneSurrogates(units)) }

func trimQuotes(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	return src[1 : len(src)-1], nil
}

// Copyright (C) 2026 LoTwT. All Rights Reserved.

package escape

// An Escape classifies how a single byte of string content is written to a
// JSON string literal. For the named escapes, the value of the Escape is the
// letter written after the backslash.
type Escape byte

// Constants defining the valid Escape values.
const (
	None          Escape = 0    // copied verbatim
	Backspace     Escape = 'b'  // \x08
	Tab           Escape = 't'  // \x09
	Newline       Escape = 'n'  // \x0A
	FormFeed      Escape = 'f'  // \x0C
	Return        Escape = 'r'  // \x0D
	DoubleQuote   Escape = '"'  // \x22
	Backslash     Escape = '\\' // \x5C
	Unicode       Escape = 'u'  // \x00...\x1F except the ones above, as \u00XX
	LoneSurrogate Escape = 0xEF // first byte of a possible lone surrogate marker
)

// IsNamed reports whether e is written as a backslash and a single letter.
func (e Escape) IsNamed() bool { return e != None && e != Unicode && e != LoneSurrogate }

// A Table maps each byte value to its Escape classification.
type Table [256]Escape

// Lookup returns the classification of b.
func (t *Table) Lookup(b byte) Escape { return t[b] }

var (
	// Standard is the table for text that does not carry lone surrogate
	// markers: identifiers, comments, and most literal content.
	Standard = makeTable(None)

	// LoneSurrogates is the same as Standard, except that the lead byte of
	// U+FFFD (0xEF) is classified as LoneSurrogate.
	LoneSurrogates = makeTable(LoneSurrogate)
)

func makeTable(lo Escape) Table {
	var t Table
	for i := 0; i < ' '; i++ {
		t[i] = Unicode
	}
	t['\b'] = Backspace
	t['\t'] = Tab
	t['\n'] = Newline
	t['\f'] = FormFeed
	t['\r'] = Return
	t['"'] = DoubleQuote
	t['\\'] = Backslash
	t[replacementChar[0]] = lo
	return t
}

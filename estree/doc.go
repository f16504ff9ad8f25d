// Copyright (C) 2026 LoTwT. All Rights Reserved.

// Package estree writes ESTree-style syntax trees as JSON.
//
// # Strings
//
// String values are written to a CodeBuffer in one of three modes, chosen by
// the caller according to where the text came from:
//
//	Function                   | Wrapper              | Use for
//	-------------------------- | -------------------- | ------------------------------
//	WriteSafeString            | JSONSafeString       | text known to need no escaping
//	WriteString                | String               | identifiers, comments, literals
//	WriteLoneSurrogatesString  | LoneSurrogatesString | raw literal content from source
//
// WriteSafeString does not inspect its input. If the text does contain a
// character that requires escaping, the output is not valid JSON.
//
// WriteLoneSurrogatesString understands the lone surrogate convention used by
// the parser: a lone surrogate is stored as U+FFFD followed by four hex
// digits, and a genuine U+FFFD is stored as U+FFFD followed by "fffd". Lone
// surrogates are written as \uXXXX escapes:
//
//	buf := new(estree.CodeBuffer)
//	estree.WriteLoneSurrogatesString(buf, "x\ufffdd834y")
//	fmt.Println(buf.String()) // "x\ud834y"
//
// Text that was not produced under this convention must not be written with
// WriteLoneSurrogatesString: a U+FFFD not followed by four hex digits causes
// a panic.
//
// # Serializing
//
// Types that implement the ESTree interface write themselves to a Serializer.
// Objects and arrays are written with the StructSerializer and
// SequenceSerializer helpers:
//
//	func (n *Identifier) SerializeESTree(s *estree.Serializer) {
//	   st := s.Struct()
//	   st.Field("type", estree.JSONSafeString("Identifier"))
//	   st.SpanFields(n.Span)
//	   st.Field("name", estree.String(n.Name))
//	   st.End()
//	}
//
// The functions and types in this package keep no state between calls and
// are safe for concurrent use, provided concurrent calls do not share a
// CodeBuffer or Serializer.
package estree

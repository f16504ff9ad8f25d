// Copyright (C) 2026 LoTwT. All Rights Reserved.

package estree

import (
	"fmt"
	"strings"

	"github.com/tailscale/hujson"
)

const indentUnit = "  "

// indent reformats the JSON value in src with one member or element per
// line. String literals are kept byte for byte, so escapes for lone
// surrogates survive formatting.
func indent(src []byte) ([]byte, error) {
	v, err := hujson.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("format output: %w", err)
	}
	v.BeforeExtra, v.AfterExtra = nil, nil
	indentValue(&v, 0)
	return v.Pack(), nil
}

func indentValue(v *hujson.Value, depth int) {
	switch t := v.Value.(type) {
	case *hujson.Object:
		if len(t.Members) == 0 {
			t.AfterExtra = nil
			return
		}
		for i := range t.Members {
			m := &t.Members[i]
			m.Name.BeforeExtra = newline(depth + 1)
			m.Name.AfterExtra = nil
			m.Value.BeforeExtra = hujson.Extra(" ")
			m.Value.AfterExtra = nil // no trailing comma
			indentValue(&m.Value, depth+1)
		}
		t.AfterExtra = newline(depth)

	case *hujson.Array:
		if len(t.Elements) == 0 {
			t.AfterExtra = nil
			return
		}
		for i := range t.Elements {
			e := &t.Elements[i]
			e.BeforeExtra = newline(depth + 1)
			e.AfterExtra = nil
			indentValue(e, depth+1)
		}
		t.AfterExtra = newline(depth)
	}
}

func newline(depth int) hujson.Extra {
	return hujson.Extra("\n" + strings.Repeat(indentUnit, depth))
}

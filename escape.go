package antlr

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// EscapeType tags what an escape sequence denoted.
type EscapeType uint8

const (
	EscapeCodePoint EscapeType = iota
	EscapeProperty
	EscapePropertyInverted
)

// EscapeResult is one parsed escape sequence. CodeUnitLength is the number
// of input bytes the escape consumed, so callers can resume scanning at
// startOff+CodeUnitLength. CodePoint is -1 for property escapes.
type EscapeResult struct {
	Type           EscapeType
	CodePoint      int
	PropertyName   string
	CodeUnitLength int
}

var escapedCharValues = map[rune]int{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'b':  '\b',
	'f':  '\f',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// ParseEscape parses one escape sequence at startOff: a single-character
// escape like \n, \uXXXX, \u{...}, or a Unicode property \p{Name} or
// \P{Name}. Returns nil when s[startOff:] is not a valid escape.
func ParseEscape(s string, startOff int) *EscapeResult {
	offset := startOff
	if offset+2 > len(s) || s[offset] != '\\' {
		return nil
	}
	offset++
	escaped := rune(s[offset])
	offset++

	switch escaped {
	case 'u':
		// \u{1} is the shortest braced form.
		if offset+3 > len(s) {
			return nil
		}
		var hexStart, hexEnd int
		if s[offset] == '{' {
			hexStart = offset + 1
			rel := strings.IndexByte(s[hexStart:], '}')
			if rel <= 0 {
				return nil
			}
			hexEnd = hexStart + rel
			offset = hexEnd + 1
		} else {
			if offset+4 > len(s) {
				return nil
			}
			hexStart = offset
			hexEnd = offset + 4
			offset = hexEnd
		}
		cp := parseHexValue(s[hexStart:hexEnd])
		if cp < 0 || cp > MaxChar {
			return nil
		}
		return &EscapeResult{
			Type:           EscapeCodePoint,
			CodePoint:      cp,
			CodeUnitLength: offset - startOff,
		}

	case 'p', 'P':
		// \p{L} is the shortest property form.
		if offset+3 > len(s) || s[offset] != '{' {
			return nil
		}
		rel := strings.IndexByte(s[offset:], '}')
		if rel <= 1 {
			return nil
		}
		name := s[offset+1 : offset+rel]
		offset += rel + 1
		t := EscapeProperty
		if escaped == 'P' {
			t = EscapePropertyInverted
		}
		return &EscapeResult{
			Type:           t,
			CodePoint:      -1,
			PropertyName:   name,
			CodeUnitLength: offset - startOff,
		}

	default:
		cp, ok := escapedCharValues[escaped]
		if !ok {
			return nil
		}
		return &EscapeResult{
			Type:           EscapeCodePoint,
			CodePoint:      cp,
			CodeUnitLength: offset - startOff,
		}
	}
}

func parseHexValue(s string) int {
	if s == "" {
		return -1
	}
	v := 0
	for _, c := range s {
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'f':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			return -1
		}
		v = v<<4 | d
		if v > MaxChar {
			return -1
		}
	}
	return v
}

// CodePoints resolves the escape to the set of code points it denotes:
// a singleton for code-point escapes, the property's members for \p, and
// the complement over the full vocabulary for \P.
func (r *EscapeResult) CodePoints() (*IntervalSet, error) {
	switch r.Type {
	case EscapeCodePoint:
		return NewIntervalSetOf(r.CodePoint, r.CodePoint), nil
	case EscapeProperty:
		return UnicodePropertySet(r.PropertyName)
	case EscapePropertyInverted:
		set, err := UnicodePropertySet(r.PropertyName)
		if err != nil {
			return nil, err
		}
		return set.ComplementRange(MinChar, MaxChar), nil
	}
	return nil, fmt.Errorf("escape: invalid escape type %d", r.Type)
}

var compositeProperties = map[string]func() *unicode.RangeTable{
	"Alphabetic": func() *unicode.RangeTable {
		return rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_Alphabetic)
	},
	"Assigned": func() *unicode.RangeTable {
		tables := make([]*unicode.RangeTable, 0, len(unicode.Categories))
		for _, t := range unicode.Categories {
			tables = append(tables, t)
		}
		return rangetable.Merge(tables...)
	},
}

// UnicodePropertySet resolves a \p{...} property name to its code points:
// general categories ("Lu", "L"), scripts ("Greek"), binary properties
// ("White_Space"), and a few composite classes. Unknown names error.
func UnicodePropertySet(name string) (*IntervalSet, error) {
	if name == "Any" {
		return NewIntervalSetOf(MinChar, MaxChar), nil
	}
	if t, ok := unicode.Categories[name]; ok {
		return rangeTableSet(t), nil
	}
	if t, ok := unicode.Scripts[name]; ok {
		return rangeTableSet(t), nil
	}
	if t, ok := unicode.Properties[name]; ok {
		return rangeTableSet(t), nil
	}
	if build, ok := compositeProperties[name]; ok {
		return rangeTableSet(build()), nil
	}
	return nil, fmt.Errorf("escape: unknown Unicode property %q", name)
}

func rangeTableSet(t *unicode.RangeTable) *IntervalSet {
	set := NewIntervalSet()
	for _, r := range t.R16 {
		addStridedRange(set, int(r.Lo), int(r.Hi), int(r.Stride))
	}
	for _, r := range t.R32 {
		addStridedRange(set, int(r.Lo), int(r.Hi), int(r.Stride))
	}
	return set
}

func addStridedRange(set *IntervalSet, lo, hi, stride int) {
	if stride == 1 {
		set.AddRange(lo, hi)
		return
	}
	for v := lo; v <= hi; v += stride {
		set.AddOne(v)
	}
}

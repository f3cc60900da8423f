package dictionary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Variant grammar, one rule per function:
//
//	variant = word { marker | field }
//	word    = word-rune { word-rune | " " | "-" | "'" }
//	marker  = "{" text "}"
//	field   = "[" text "]"
//
// Spaces, hyphens and apostrophes only count as part of a word when they
// are followed by more word text.

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// scanWord reads the leading word text of s.
func scanWord(s string) (word string, rest string, ok bool) {
	end := 0
	afterWordRune := false
scan:
	for i, r := range s {
		switch {
		case isWordRune(r):
			end = i + utf8.RuneLen(r)
			afterWordRune = true
		case isBlank(r):
			afterWordRune = false
		case (r == '-' || r == '\'') && afterWordRune && startsWithLetter(s[i+1:]):
			afterWordRune = false
		default:
			break scan
		}
	}
	word = strings.TrimSpace(s[:end])
	return word, s[end:], word != ""
}

func startsWithLetter(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsLetter(r)
}

// scanMarker reads a "{...}" group at the start of s, ignoring leading blanks.
func scanMarker(s string) (marker string, rest string, ok bool) {
	return scanDelimited(s, '{', '}')
}

// scanField reads a "[...]" group at the start of s, ignoring leading blanks.
func scanField(s string) (field string, rest string, ok bool) {
	return scanDelimited(s, '[', ']')
}

func scanDelimited(s string, open, closing byte) (string, string, bool) {
	trimmed := strings.TrimLeft(s, " \t")
	if trimmed == "" || trimmed[0] != open {
		return "", s, false
	}
	end := strings.IndexByte(trimmed, closing)
	if end < 0 {
		return "", s, false
	}
	return strings.TrimSpace(trimmed[1:end]), trimmed[end+1:], true
}

// scanVariant reads one variant candidate. The first marker and the first
// field win; later ones are consumed and ignored.
func scanVariant(s string) (Variant, bool) {
	word, rest, ok := scanWord(s)
	if !ok {
		return Variant{}, false
	}
	variant := Variant{Word: word}
	for {
		if marker, next, ok := scanMarker(rest); ok {
			if variant.Marker == "" {
				variant.Marker = marker
			}
			rest = next
			continue
		}
		if field, next, ok := scanField(rest); ok {
			if variant.Field == "" {
				variant.Field = field
			}
			rest = next
			continue
		}
		return variant, true
	}
}

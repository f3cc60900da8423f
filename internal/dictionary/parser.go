package dictionary

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	commentMarker    = "#"
	sideSeparator    = "::"
	groupSeparator   = "|"
	variantSeparator = ";"
	pluralMarker     = "pl"
)

// UntypedPolicy decides how an original word without a class marker is classified.
type UntypedPolicy string

const (
	// UntypedReject fails the line with a NoTypeIndicatorError.
	UntypedReject UntypedPolicy = "reject"
	// UntypedVerb treats the word as a verb with an unspecified class.
	UntypedVerb UntypedPolicy = "verb"
)

var allUntypedPolicies = []UntypedPolicy{UntypedReject, UntypedVerb}

func ParseUntypedPolicy(value string) (UntypedPolicy, error) {
	for _, policy := range allUntypedPolicies {
		if value == string(policy) {
			return policy, nil
		}
	}
	return "", fmt.Errorf("invalid untyped policy: %s. Possible values are %v", value, allUntypedPolicies)
}

// Parser turns Beolingus-style dictionary lines into entry pairs.
// A Parser has no mutable state and can be shared.
type Parser struct {
	untyped UntypedPolicy
}

// NewParser returns a parser. An empty policy means UntypedReject.
func NewParser(untyped UntypedPolicy) *Parser {
	if untyped == "" {
		untyped = UntypedReject
	}
	return &Parser{untyped: untyped}
}

func (p *Parser) UntypedPolicy() UntypedPolicy {
	return p.untyped
}

// ParseLine parses one dictionary line.
// Comment and blank lines return ErrSkipLine.
func (p *Parser) ParseLine(line string) (Pair, error) {
	normalized := strings.TrimSpace(norm.NFC.String(line))
	if normalized == "" || strings.HasPrefix(normalized, commentMarker) {
		return Pair{}, ErrSkipLine
	}

	original, translated, err := SplitSides(normalized)
	if err != nil {
		return Pair{}, &MalformedLineError{Line: line}
	}

	originals := ParseVariants(VariantSegment(original))
	if len(originals) == 0 {
		return Pair{}, &ParseError{Line: line, Reason: "no original word found for line"}
	}
	translations := ParseVariants(VariantSegment(translated))
	if len(translations) == 0 {
		return Pair{}, &ParseError{Line: line, Reason: "no translation found for line"}
	}

	translation := Translation{Word: translations[0].Word}
	entry, err := p.classify(line, originals[0], translation.Word)
	if err != nil {
		return Pair{}, err
	}
	if noun, ok := entry.(Noun); ok {
		if plurals := ExtractPluralForms(original); len(plurals) > 0 {
			noun.Plural = plurals[0]
		}
		entry = noun
	}
	return Pair{Original: entry, Translation: translation}, nil
}

func (p *Parser) classify(line string, variant Variant, translation string) (Entry, error) {
	switch strings.ToLower(variant.Marker) {
	case string(GenderFeminine), string(GenderMasculine), string(GenderNeuter):
		return Noun{
			Word:        variant.Word,
			Gender:      Gender(strings.ToLower(variant.Marker)),
			Translation: translation,
		}, nil
	case string(VerbClassIntransitive), string(VerbClassTransitive):
		return Verb{
			Word:        variant.Word,
			Class:       VerbClass(strings.ToLower(variant.Marker)),
			Translation: translation,
		}, nil
	case "adj":
		return Adjective{Word: variant.Word, Translation: translation}, nil
	case "":
		if p.untyped == UntypedVerb {
			return Verb{Word: variant.Word, Class: VerbClassUnspecified, Translation: translation}, nil
		}
		return nil, &NoTypeIndicatorError{Line: line, Word: variant.Word}
	}
	return nil, &UnknownVariantTypeError{Line: line, Word: variant.Word, Marker: variant.Marker}
}

// SplitSides splits a line on its first "::" into the original and translation sides.
func SplitSides(line string) (original string, translation string, err error) {
	original, translation, found := strings.Cut(line, sideSeparator)
	if !found {
		return "", "", &MalformedLineError{Line: line}
	}
	return strings.TrimSpace(original), strings.TrimSpace(translation), nil
}

// VariantSegment returns the part of a side before its first "|".
func VariantSegment(side string) string {
	segment, _, _ := strings.Cut(side, groupSeparator)
	return strings.TrimSpace(segment)
}

// ParseVariants scans a ";"-delimited segment in order.
// Candidates without a word are dropped.
func ParseVariants(segment string) []Variant {
	var variants []Variant
	for _, candidate := range strings.Split(segment, variantSeparator) {
		variant, ok := scanVariant(strings.TrimSpace(candidate))
		if !ok {
			continue
		}
		variants = append(variants, variant)
	}
	return variants
}

// ExtractPluralForms returns every "word {pl}" variant of a side, across all of its groups.
func ExtractPluralForms(side string) []string {
	var plurals []string
	for _, group := range strings.Split(side, groupSeparator) {
		for _, variant := range ParseVariants(group) {
			if strings.EqualFold(variant.Marker, pluralMarker) {
				plurals = append(plurals, variant.Word)
			}
		}
	}
	return plurals
}

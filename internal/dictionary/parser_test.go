package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const broetchenLine = "Brötchen {n}; Semmel {f}; Wecken {m}; Schrippe {f} [cook.] | Brötchen {pl}; Semmeln {pl}; Wecken {pl}; Schrippen {pl} | (kleines, rundes) Brötchen {n} | kleine(re) Brötchen backen müssen [übtr.] :: roll; bread roll | rolls; bread rolls | biscuit [Am.] | to have to set one's sights lower"

func TestParser_ParseLine(t *testing.T) {
	tests := []struct {
		name    string
		policy  UntypedPolicy
		line    string
		want    Pair
		wantErr error
	}{
		{
			name: "noun with plural group",
			line: "Brötchen {n}; Semmel {f} | Brötchen {pl} :: roll; bread roll",
			want: Pair{
				Original:    Noun{Word: "Brötchen", Gender: GenderNeuter, Plural: "Brötchen", Translation: "roll"},
				Translation: Translation{Word: "roll"},
			},
		},
		{
			name: "full beolingus line",
			line: broetchenLine,
			want: Pair{
				Original:    Noun{Word: "Brötchen", Gender: GenderNeuter, Plural: "Brötchen", Translation: "roll"},
				Translation: Translation{Word: "roll"},
			},
		},
		{
			name: "feminine noun without plural",
			line: "Semmel {f} :: bread roll",
			want: Pair{
				Original:    Noun{Word: "Semmel", Gender: GenderFeminine, Translation: "bread roll"},
				Translation: Translation{Word: "bread roll"},
			},
		},
		{
			name: "masculine noun with field tag",
			line: "Wecken {m} [Süddt.] | Wecken {pl} :: roll",
			want: Pair{
				Original:    Noun{Word: "Wecken", Gender: GenderMasculine, Plural: "Wecken", Translation: "roll"},
				Translation: Translation{Word: "roll"},
			},
		},
		{
			name: "intransitive verb",
			line: "gehen {vi} | gehend :: to go | going",
			want: Pair{
				Original:    Verb{Word: "gehen", Class: VerbClassIntransitive, Translation: "to go"},
				Translation: Translation{Word: "to go"},
			},
		},
		{
			name: "transitive verb never gets a plural",
			line: "kaufen {vt} | Käufe {pl} :: to buy",
			want: Pair{
				Original:    Verb{Word: "kaufen", Class: VerbClassTransitive, Translation: "to buy"},
				Translation: Translation{Word: "to buy"},
			},
		},
		{
			name: "adjective",
			line: "schön {adj} :: beautiful; nice",
			want: Pair{
				Original:    Adjective{Word: "schön", Translation: "beautiful"},
				Translation: Translation{Word: "beautiful"},
			},
		},
		{
			name: "first unparsable variant is dropped",
			line: "(kleines) Brötchen {n}; Semmel {f} :: roll",
			want: Pair{
				Original:    Noun{Word: "Semmel", Gender: GenderFeminine, Translation: "roll"},
				Translation: Translation{Word: "roll"},
			},
		},
		{
			name: "markers on the translation side are ignored",
			line: "schnell {adj} :: fast {adj}",
			want: Pair{
				Original:    Adjective{Word: "schnell", Translation: "fast"},
				Translation: Translation{Word: "fast"},
			},
		},
		{
			name:    "untyped original is rejected by default",
			line:    "aufrufen :: to invoice",
			wantErr: &NoTypeIndicatorError{Line: "aufrufen :: to invoice", Word: "aufrufen"},
		},
		{
			name:   "untyped original becomes a verb when relaxed",
			policy: UntypedVerb,
			line:   "aufrufen :: to invoice",
			want: Pair{
				Original:    Verb{Word: "aufrufen", Class: VerbClassUnspecified, Translation: "to invoice"},
				Translation: Translation{Word: "to invoice"},
			},
		},
		{
			name:    "unknown marker",
			line:    "Leute {pl} :: people",
			wantErr: &UnknownVariantTypeError{Line: "Leute {pl} :: people", Word: "Leute", Marker: "pl"},
		},
		{
			name:    "no separator",
			line:    "Haus {n} house",
			wantErr: &MalformedLineError{Line: "Haus {n} house"},
		},
		{
			name:    "no translation",
			line:    "Haus {n} :: (arch.)",
			wantErr: &ParseError{Line: "Haus {n} :: (arch.)", Reason: "no translation found for line"},
		},
		{
			name:    "no original word",
			line:    "(arch.) :: house",
			wantErr: &ParseError{Line: "(arch.) :: house", Reason: "no original word found for line"},
		},
		{
			name:    "comment",
			line:    "# header",
			wantErr: ErrSkipLine,
		},
		{
			name:    "blank",
			line:    "   ",
			wantErr: ErrSkipLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewParser(tt.policy).ParseLine(tt.line)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
				assert.Equal(t, Pair{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_ParseLine_GenderMatchesMarker(t *testing.T) {
	parser := NewParser(UntypedReject)
	for _, gender := range []Gender{GenderFeminine, GenderMasculine, GenderNeuter} {
		for _, word := range []string{"Tür", "Tisch", "Fenster", "Straßenbahn"} {
			got, err := parser.ParseLine(word + " {" + string(gender) + "} :: " + "translation of " + word)
			require.NoError(t, err)

			noun, ok := got.Original.(Noun)
			require.True(t, ok)
			assert.Equal(t, gender, noun.Gender)
			assert.Equal(t, "translation of "+word, got.Translation.Word)
		}
	}
}

func TestParser_ParseLine_NormalizesToNFC(t *testing.T) {
	decomposed := "Bro\u0308tchen {n} :: roll"
	got, err := NewParser(UntypedReject).ParseLine(decomposed)
	require.NoError(t, err)
	assert.Equal(t, "Brötchen", got.Headword())
}

func TestSplitSides(t *testing.T) {
	original, translation, err := SplitSides(broetchenLine)
	require.NoError(t, err)
	assert.Equal(t, "Brötchen {n}; Semmel {f}; Wecken {m}; Schrippe {f} [cook.] | Brötchen {pl}; Semmeln {pl}; Wecken {pl}; Schrippen {pl} | (kleines, rundes) Brötchen {n} | kleine(re) Brötchen backen müssen [übtr.]", original)
	assert.Equal(t, "roll; bread roll | rolls; bread rolls | biscuit [Am.] | to have to set one's sights lower", translation)

	_, _, err = SplitSides("no separator")
	var malformed *MalformedLineError
	assert.ErrorAs(t, err, &malformed)
}

func TestVariantSegment(t *testing.T) {
	original, translation, err := SplitSides(broetchenLine)
	require.NoError(t, err)

	assert.Equal(t, "Brötchen {n}; Semmel {f}; Wecken {m}; Schrippe {f} [cook.]", VariantSegment(original))
	assert.Equal(t, "roll; bread roll", VariantSegment(translation))
	assert.Equal(t, "gehen {vi}", VariantSegment("gehen {vi}"))
}

func TestParseVariants(t *testing.T) {
	original, translation, err := SplitSides(broetchenLine)
	require.NoError(t, err)

	assert.Equal(t, []Variant{
		{Word: "Brötchen", Marker: "n"},
		{Word: "Semmel", Marker: "f"},
		{Word: "Wecken", Marker: "m"},
		{Word: "Schrippe", Marker: "f", Field: "cook."},
	}, ParseVariants(VariantSegment(original)))

	assert.Equal(t, []Variant{
		{Word: "roll"},
		{Word: "bread roll"},
	}, ParseVariants(VariantSegment(translation)))

	assert.Empty(t, ParseVariants("; ;"))
}

func TestExtractPluralForms(t *testing.T) {
	original, _, err := SplitSides(broetchenLine)
	require.NoError(t, err)

	assert.Equal(t, []string{"Brötchen", "Semmeln", "Wecken", "Schrippen"}, ExtractPluralForms(original))
	assert.Empty(t, ExtractPluralForms("gehen {vi}"))
}

func TestParseUntypedPolicy(t *testing.T) {
	tests := []struct {
		value   string
		want    UntypedPolicy
		wantErr bool
	}{
		{value: "reject", want: UntypedReject},
		{value: "verb", want: UntypedVerb},
		{value: "noun", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseUntypedPolicy(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid untyped policy")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewParser_DefaultsToReject(t *testing.T) {
	assert.Equal(t, UntypedReject, NewParser("").UntypedPolicy())
}

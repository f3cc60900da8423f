package dictionary

import (
	"fmt"
	"time"
)

// Record is the flat, serializable form of a Pair.
type Record struct {
	Word        string    `db:"word" json:"word" yaml:"word"`
	Kind        Kind      `db:"kind" json:"kind" yaml:"kind"`
	Gender      Gender    `db:"gender" json:"gender,omitempty" yaml:"gender,omitempty"`
	VerbClass   VerbClass `db:"verb_class" json:"verb_class,omitempty" yaml:"verb_class,omitempty"`
	Plural      string    `db:"plural" json:"plural,omitempty" yaml:"plural,omitempty"`
	Translation string    `db:"translation" json:"translation" yaml:"translation"`
	CreatedAt   time.Time `db:"created_at" json:"-" yaml:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-" yaml:"-"`
}

// NewRecord flattens a pair.
func NewRecord(pair Pair) Record {
	record := Record{
		Word:        pair.Headword(),
		Translation: pair.Translation.Word,
	}
	switch e := pair.Original.(type) {
	case Noun:
		record.Kind = KindNoun
		record.Gender = e.Gender
		record.Plural = e.Plural
	case Verb:
		record.Kind = KindVerb
		record.VerbClass = e.Class
	case Adjective:
		record.Kind = KindAdjective
	case Translation:
		record.Kind = KindTranslation
	}
	return record
}

// Pair converts the record back into a pair.
// Fields that do not belong to the record's kind are rejected.
func (r Record) Pair() (Pair, error) {
	if r.Word == "" {
		return Pair{}, fmt.Errorf("empty word")
	}
	if r.Kind != KindNoun && (r.Gender != "" || r.Plural != "") {
		return Pair{}, fmt.Errorf("gender or plural on %s %q", r.Kind, r.Word)
	}
	if r.Kind != KindVerb && r.VerbClass != "" {
		return Pair{}, fmt.Errorf("verb class on %s %q", r.Kind, r.Word)
	}

	translation := Translation{Word: r.Translation}
	var original Entry
	switch r.Kind {
	case KindNoun:
		switch r.Gender {
		case GenderFeminine, GenderMasculine, GenderNeuter:
		default:
			return Pair{}, fmt.Errorf("invalid gender %q for %q", r.Gender, r.Word)
		}
		original = Noun{Word: r.Word, Gender: r.Gender, Plural: r.Plural, Translation: r.Translation}
	case KindVerb:
		switch r.VerbClass {
		case VerbClassIntransitive, VerbClassTransitive, VerbClassUnspecified:
		default:
			return Pair{}, fmt.Errorf("invalid verb class %q for %q", r.VerbClass, r.Word)
		}
		original = Verb{Word: r.Word, Class: r.VerbClass, Translation: r.Translation}
	case KindAdjective:
		original = Adjective{Word: r.Word, Translation: r.Translation}
	default:
		return Pair{}, fmt.Errorf("invalid kind %q for %q", r.Kind, r.Word)
	}
	return Pair{Original: original, Translation: translation}, nil
}

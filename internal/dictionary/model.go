package dictionary

import "fmt"

// Kind identifies which variant of Entry a value holds.
type Kind string

const (
	KindNoun        Kind = "noun"
	KindVerb        Kind = "verb"
	KindAdjective   Kind = "adjective"
	KindTranslation Kind = "translation"
)

// Gender is the grammatical gender of a noun as marked in the dictionary.
type Gender string

const (
	GenderFeminine  Gender = "f"
	GenderMasculine Gender = "m"
	GenderNeuter    Gender = "n"
)

// Article returns the German definite article for the gender.
func (g Gender) Article() string {
	switch g {
	case GenderFeminine:
		return "die"
	case GenderMasculine:
		return "der"
	case GenderNeuter:
		return "das"
	}
	return ""
}

// VerbClass is the transitivity marker of a verb.
// VerbClassUnspecified is only produced when untyped originals are parsed as verbs.
type VerbClass string

const (
	VerbClassIntransitive VerbClass = "vi"
	VerbClassTransitive   VerbClass = "vt"
	VerbClassUnspecified  VerbClass = ""
)

// Entry is a parsed word on one side of a dictionary line.
// It is implemented only by Noun, Verb, Adjective and Translation.
type Entry interface {
	Headword() string
	Kind() Kind
	entry()
}

type Noun struct {
	Word        string
	Gender      Gender
	Plural      string
	Translation string
}

type Verb struct {
	Word        string
	Class       VerbClass
	Translation string
}

type Adjective struct {
	Word        string
	Translation string
}

// Translation is a bare word on the target-language side.
type Translation struct {
	Word string
}

func (n Noun) Headword() string        { return n.Word }
func (v Verb) Headword() string        { return v.Word }
func (a Adjective) Headword() string   { return a.Word }
func (t Translation) Headword() string { return t.Word }

func (Noun) Kind() Kind        { return KindNoun }
func (Verb) Kind() Kind        { return KindVerb }
func (Adjective) Kind() Kind   { return KindAdjective }
func (Translation) Kind() Kind { return KindTranslation }

func (Noun) entry()        {}
func (Verb) entry()        {}
func (Adjective) entry()   {}
func (Translation) entry() {}

// Pair is a parsed dictionary line: the original entry and its first translation.
type Pair struct {
	Original    Entry
	Translation Translation
}

// Headword returns the lookup key of the pair.
func (p Pair) Headword() string {
	if p.Original == nil {
		return ""
	}
	return p.Original.Headword()
}

func (p Pair) String() string {
	switch e := p.Original.(type) {
	case Noun:
		if e.Plural != "" {
			return fmt.Sprintf("%s {%s} (pl. %s) :: %s", e.Word, e.Gender, e.Plural, p.Translation.Word)
		}
		return fmt.Sprintf("%s {%s} :: %s", e.Word, e.Gender, p.Translation.Word)
	case Verb:
		if e.Class == VerbClassUnspecified {
			return fmt.Sprintf("%s :: %s", e.Word, p.Translation.Word)
		}
		return fmt.Sprintf("%s {%s} :: %s", e.Word, e.Class, p.Translation.Word)
	case Adjective:
		return fmt.Sprintf("%s {adj} :: %s", e.Word, p.Translation.Word)
	}
	return fmt.Sprintf(":: %s", p.Translation.Word)
}

// Variant is one semicolon-delimited candidate of a dictionary side.
type Variant struct {
	Word   string
	Marker string
	Field  string
}

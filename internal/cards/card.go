// Package cards turns looked-up dictionary words into flash cards.
package cards

import (
	"fmt"

	"github.com/at-ishikawa/flashcardgen/internal/dictionary"
)

// Card is one flash card: the original word on the front, the translation on the back.
type Card struct {
	Front      string
	Annotation string
	Back       string
}

func NewCard(pair dictionary.Pair) Card {
	return Card{
		Front:      pair.Headword(),
		Annotation: annotation(pair.Original),
		Back:       pair.Translation.Word,
	}
}

func annotation(entry dictionary.Entry) string {
	switch e := entry.(type) {
	case dictionary.Noun:
		gender := fmt.Sprintf("%s {%s}", e.Gender.Article(), e.Gender)
		if e.Plural == "" {
			return gender
		}
		return fmt.Sprintf("%s, pl. %s", gender, e.Plural)
	case dictionary.Verb:
		if e.Class == dictionary.VerbClassUnspecified {
			return "verb"
		}
		return fmt.Sprintf("{%s}", e.Class)
	case dictionary.Adjective:
		return "{adj}"
	}
	return ""
}

package cards

import (
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/flashcardgen/internal/dictionary"
)

type Generator struct {
	translator dictionary.Translator
	logger     *slog.Logger
}

func NewGenerator(translator dictionary.Translator, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		translator: translator,
		logger:     logger,
	}
}

// Generate looks every word up in order. Words that are not in the
// dictionary are logged and returned as missing; any other lookup error aborts.
func (g *Generator) Generate(words []string) ([]Card, []string, error) {
	var cards []Card
	var missing []string
	for _, word := range words {
		pair, err := g.translator.Lookup(word)
		if dictionary.IsWordNotFound(err) {
			g.logger.Warn("couldn't find a translation",
				slog.String("word", word),
			)
			missing = append(missing, word)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("translator.Lookup(%s) > %w", word, err)
		}
		cards = append(cards, NewCard(pair))
	}
	return cards, missing, nil
}

package dictionary

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

//go:generate mockgen -source=table.go -destination=../mocks/dictionary/mock_translator.go -package=mock_dictionary

// Translator looks up a head-word.
type Translator interface {
	Lookup(word string) (Pair, error)
}

var _ Translator = (*Table)(nil)

// Table maps exact-case head-words to their parsed pairs.
// A Table is never modified after construction and is safe for concurrent use.
type Table struct {
	entries map[string]Pair
}

// NewTable builds a table from already parsed pairs. The map is copied.
func NewTable(pairs map[string]Pair) *Table {
	entries := make(map[string]Pair, len(pairs))
	for word, pair := range pairs {
		entries[norm.NFC.String(word)] = pair
	}
	return &Table{entries: entries}
}

// NewTableFromRecords rebuilds a table from serialized records.
// The first record of a head-word wins.
func NewTableFromRecords(records []Record) (*Table, error) {
	entries := make(map[string]Pair, len(records))
	for _, record := range records {
		pair, err := record.Pair()
		if err != nil {
			return nil, fmt.Errorf("record.Pair(%s) > %w", record.Word, err)
		}
		word := norm.NFC.String(pair.Headword())
		if _, ok := entries[word]; ok {
			continue
		}
		entries[word] = pair
	}
	return &Table{entries: entries}, nil
}

// Lookup returns the pair of word. On a miss it retries exactly one
// alternate casing: the lowercased word when it starts with an uppercase
// letter, the capitalized word otherwise.
func (t *Table) Lookup(word string) (Pair, error) {
	word = norm.NFC.String(strings.TrimSpace(word))
	if pair, ok := t.entries[word]; ok {
		return pair, nil
	}

	alternate := AlternateCasing(word)
	if alternate != "" && alternate != word {
		if pair, ok := t.entries[alternate]; ok {
			return pair, nil
		}
	}
	return Pair{}, &WordNotFoundError{Word: word, Alternate: alternate}
}

// AlternateCasing returns the single casing retried by Lookup.
func AlternateCasing(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return ""
	}
	if unicode.IsUpper(first) {
		return strings.ToLower(word)
	}
	return string(unicode.ToUpper(first)) + word[size:]
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Words returns the head-words in sorted order.
func (t *Table) Words() []string {
	words := make([]string, 0, len(t.entries))
	for word := range t.entries {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Records returns the table as serializable records sorted by head-word.
func (t *Table) Records() []Record {
	words := t.Words()
	records := make([]Record, len(words))
	for i, word := range words {
		records[i] = NewRecord(t.entries[word])
	}
	return records
}

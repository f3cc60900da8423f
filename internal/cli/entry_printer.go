package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/at-ishikawa/flashcardgen/internal/dictionary"
)

// EntryPrinter renders lookup results on a terminal.
type EntryPrinter struct {
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	genders      map[dictionary.Gender]*color.Color
}

func NewEntryPrinter(stdoutWriter io.Writer) *EntryPrinter {
	return &EntryPrinter{
		stdoutWriter: stdoutWriter,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		genders: map[dictionary.Gender]*color.Color{
			dictionary.GenderFeminine:  color.New(color.FgRed),
			dictionary.GenderMasculine: color.New(color.FgBlue),
			dictionary.GenderNeuter:    color.New(color.FgGreen),
		},
	}
}

// PrintPair writes one line per pair, e.g. "das Brot {n} (pl. Brote) :: bread".
func (p *EntryPrinter) PrintPair(pair dictionary.Pair) error {
	var original string
	switch e := pair.Original.(type) {
	case dictionary.Noun:
		gender := p.genders[e.Gender]
		if gender == nil {
			gender = color.New(color.Reset)
		}
		original = gender.Sprintf("%s %s {%s}", e.Gender.Article(), p.bold.Sprint(e.Word), e.Gender)
		if e.Plural != "" {
			original += fmt.Sprintf(" (pl. %s)", e.Plural)
		}
	case dictionary.Verb:
		original = p.bold.Sprint(e.Word)
		if e.Class != dictionary.VerbClassUnspecified {
			original += fmt.Sprintf(" {%s}", e.Class)
		}
	case dictionary.Adjective:
		original = p.bold.Sprint(e.Word) + " {adj}"
	default:
		original = p.bold.Sprint(pair.Headword())
	}

	if _, err := fmt.Fprintf(p.stdoutWriter, "%s :: %s\n", original, p.italic.Sprint(pair.Translation.Word)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

// PrintNotFound reports a missed lookup without failing.
func (p *EntryPrinter) PrintNotFound(err *dictionary.WordNotFoundError) error {
	if _, werr := color.New(color.FgYellow).Fprintln(p.stdoutWriter, err.Error()); werr != nil {
		return fmt.Errorf("failed to write to stdout: %w", werr)
	}
	return nil
}

// PrintReport writes the statistics of a dictionary build with thousands separators.
func PrintReport(w io.Writer, report dictionary.Report, entries int) error {
	printer := message.NewPrinter(language.English)
	if _, err := printer.Fprintf(w, "lines: %d, skipped: %d, parsed: %d, entries: %d, failures: %d, duplicates: %d\n",
		report.TotalLines,
		report.SkippedLines,
		report.ParsedLines,
		entries,
		len(report.Failures),
		len(report.Duplicates),
	); err != nil {
		return fmt.Errorf("printer.Fprintf() > %w", err)
	}
	return nil
}

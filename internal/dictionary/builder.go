package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const maxLineBytes = 1024 * 1024

// LineFailure is a line that could not be parsed.
type LineFailure struct {
	LineNumber int
	Err        error
}

// Duplicate is a line whose head-word was already imported from an earlier line.
type Duplicate struct {
	LineNumber      int
	FirstLineNumber int
	Word            string
}

// Report holds statistics of a bulk build.
type Report struct {
	TotalLines   int
	SkippedLines int
	ParsedLines  int
	Failures     []LineFailure
	Duplicates   []Duplicate
}

// Builder parses a whole dictionary source into a Table.
type Builder struct {
	parser *Parser
	logger *slog.Logger
}

func NewBuilder(parser *Parser, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		parser: parser,
		logger: logger,
	}
}

// BuildFile builds a table from a dictionary file.
func (b *Builder) BuildFile(path string) (*Table, Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	table, report, err := b.Build(file)
	if err != nil {
		return nil, report, fmt.Errorf("Build(%s) > %w", path, err)
	}
	return table, report, nil
}

// Build reads every line of r. Lines that fail to parse and duplicated
// head-words are recorded in the report and skipped; only read errors abort.
func (b *Builder) Build(r io.Reader) (*Table, Report, error) {
	var report Report
	entries := make(map[string]Pair)
	firstLines := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		report.TotalLines++
		lineNumber := report.TotalLines

		pair, err := b.parser.ParseLine(scanner.Text())
		if errors.Is(err, ErrSkipLine) {
			report.SkippedLines++
			continue
		}
		if err != nil {
			report.Failures = append(report.Failures, LineFailure{LineNumber: lineNumber, Err: err})
			b.logger.Debug("skip an unparsable line",
				slog.Int("line", lineNumber),
				slog.Any("error", err),
			)
			continue
		}

		word := pair.Headword()
		if first, ok := firstLines[word]; ok {
			report.Duplicates = append(report.Duplicates, Duplicate{
				LineNumber:      lineNumber,
				FirstLineNumber: first,
				Word:            word,
			})
			b.logger.Debug("skip a duplicated word",
				slog.String("word", word),
				slog.Int("line", lineNumber),
				slog.Int("firstLine", first),
			)
			continue
		}
		firstLines[word] = lineNumber
		entries[word] = pair
		report.ParsedLines++
	}
	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("scanner.Err() > %w", err)
	}

	b.logger.Info("built a dictionary table",
		slog.Int("totalLines", report.TotalLines),
		slog.Int("entries", len(entries)),
		slog.Int("failures", len(report.Failures)),
		slog.Int("duplicates", len(report.Duplicates)),
	)
	return &Table{entries: entries}, report, nil
}

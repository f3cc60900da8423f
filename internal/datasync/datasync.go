// Package datasync provides import/export orchestration between parsed dictionaries, YAML files and database.
package datasync

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/flashcardgen/internal/dictionary"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	New     int
	Skipped int
	Updated int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer writes a parsed dictionary table to the DB.
type Importer struct {
	entryRepo dictionary.EntryRepository
	writer    io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(entryRepo dictionary.EntryRepository, writer io.Writer) *Importer {
	return &Importer{
		entryRepo: entryRepo,
		writer:    writer,
	}
}

// ImportTable upserts the records of table that are missing in the DB, and
// with UpdateExisting the ones whose stored fields differ.
func (imp *Importer) ImportTable(ctx context.Context, table *dictionary.Table, opts ImportOptions) (*ImportResult, error) {
	existing, err := imp.entryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("entryRepo.FindAll() > %w", err)
	}
	stored := make(map[string]dictionary.Record, len(existing))
	for _, record := range existing {
		stored[record.Word] = record
	}

	var result ImportResult
	var changes []dictionary.Record
	for _, record := range table.Records() {
		current, ok := stored[record.Word]
		if !ok {
			fmt.Fprintf(imp.writer, "  [NEW]  %s\n", record.Word)
			changes = append(changes, record)
			result.New++
			continue
		}
		if !opts.UpdateExisting || sameContents(current, record) {
			result.Skipped++
			continue
		}
		fmt.Fprintf(imp.writer, "  [UPDATE]  %s\n", record.Word)
		changes = append(changes, record)
		result.Updated++
	}

	if opts.DryRun || len(changes) == 0 {
		return &result, nil
	}
	if err := imp.entryRepo.BatchUpsert(ctx, changes); err != nil {
		return nil, fmt.Errorf("entryRepo.BatchUpsert() > %w", err)
	}
	return &result, nil
}

func sameContents(a, b dictionary.Record) bool {
	return a.Kind == b.Kind &&
		a.Gender == b.Gender &&
		a.VerbClass == b.VerbClass &&
		a.Plural == b.Plural &&
		a.Translation == b.Translation
}

// Exporter reads the DB and writes its records.
type Exporter struct {
	entryRepo dictionary.EntryRepository
}

// NewExporter creates a new Exporter.
func NewExporter(entryRepo dictionary.EntryRepository) *Exporter {
	return &Exporter{
		entryRepo: entryRepo,
	}
}

// ExportYAML writes all stored records to w as a YAML sequence.
func (e *Exporter) ExportYAML(ctx context.Context, w io.Writer) error {
	records, err := e.entryRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("entryRepo.FindAll() > %w", err)
	}
	if err := WriteRecordsYAML(w, records); err != nil {
		return fmt.Errorf("WriteRecordsYAML() > %w", err)
	}
	return nil
}

// WriteRecordsYAML writes records to w as a YAML sequence.
func WriteRecordsYAML(w io.Writer, records []dictionary.Record) error {
	if records == nil {
		records = []dictionary.Record{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encoder.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	return nil
}

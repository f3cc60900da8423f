package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary

// EntryRepository defines operations for persisting parsed dictionary entries.
type EntryRepository interface {
	FindAll(ctx context.Context) ([]Record, error)
	FindByWord(ctx context.Context, word string) (*Record, error)
	BatchUpsert(ctx context.Context, records []Record) error
}

// DBEntryRepository implements EntryRepository using MySQL.
type DBEntryRepository struct {
	db *sqlx.DB
}

// NewDBEntryRepository creates a new DBEntryRepository.
func NewDBEntryRepository(db *sqlx.DB) *DBEntryRepository {
	return &DBEntryRepository{db: db}
}

// FindAll returns all entries ordered by word.
func (r *DBEntryRepository) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := r.db.SelectContext(ctx, &records, "SELECT * FROM dictionary_entries ORDER BY word"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(dictionary_entries) > %w", err)
	}
	return records, nil
}

// FindByWord returns the entry of an exact-case word, or nil if not found.
func (r *DBEntryRepository) FindByWord(ctx context.Context, word string) (*Record, error) {
	var record Record
	err := r.db.GetContext(ctx, &record, "SELECT * FROM dictionary_entries WHERE word = ?", word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(dictionary_entry) > %w", err)
	}
	return &record, nil
}

const upsertEntryQuery = `INSERT INTO dictionary_entries (word, kind, gender, verb_class, plural, translation)
VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE kind = VALUES(kind), gender = VALUES(gender), verb_class = VALUES(verb_class), plural = VALUES(plural), translation = VALUES(translation)`

// BatchUpsert inserts or updates records in a single transaction.
func (r *DBEntryRepository) BatchUpsert(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, record := range records {
		if _, err := tx.ExecContext(ctx, upsertEntryQuery,
			record.Word, string(record.Kind), string(record.Gender), string(record.VerbClass), record.Plural, record.Translation,
		); err != nil {
			return fmt.Errorf("tx.ExecContext(upsert dictionary_entry %s) > %w", record.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

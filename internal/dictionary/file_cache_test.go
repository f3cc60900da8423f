package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCache_filePath(t *testing.T) {
	tests := []struct {
		name     string
		rootDir  string
		table    string
		expected string
	}{
		{
			name:     "policy suffix",
			rootDir:  "cache",
			table:    "de-en.reject",
			expected: filepath.Join("cache", "de-en.reject.json"),
		},
		{
			name:     "empty root",
			rootDir:  "",
			table:    "de-en",
			expected: "de-en.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewTableCache(tt.rootDir).filePath(tt.table))
		})
	}
}

func TestTableCache_Load(t *testing.T) {
	source := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("miss builds and writes the cache", func(t *testing.T) {
		cache := NewTableCache(filepath.Join(t.TempDir(), "nested"))
		calls := 0
		table, err := cache.Load("de-en", source, func() (*Table, error) {
			calls++
			return newTestTable(), nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 3, table.Len())
		assert.FileExists(t, cache.filePath("de-en"))
	})

	t.Run("fresh cache is used", func(t *testing.T) {
		cache := NewTableCache(t.TempDir())
		_, err := cache.Load("de-en", source, func() (*Table, error) {
			return newTestTable(), nil
		})
		require.NoError(t, err)

		table, err := cache.Load("de-en", source, func() (*Table, error) {
			t.Fatal("build must not be called")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, newTestTable().Records(), table.Records())
	})

	t.Run("stale cache is rebuilt", func(t *testing.T) {
		cache := NewTableCache(t.TempDir())
		_, err := cache.Load("de-en", source, func() (*Table, error) {
			return newTestTable(), nil
		})
		require.NoError(t, err)
		require.NoError(t, os.Chtimes(cache.filePath("de-en"), source, source))

		rebuilt := NewTable(map[string]Pair{
			"Haus": {Original: Noun{Word: "Haus", Gender: GenderNeuter, Translation: "house"}, Translation: Translation{Word: "house"}},
		})
		table, err := cache.Load("de-en", source.Add(time.Hour), func() (*Table, error) {
			return rebuilt, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Haus"}, table.Words())
	})

	t.Run("corrupt cache", func(t *testing.T) {
		cache := NewTableCache(t.TempDir())
		require.NoError(t, os.WriteFile(cache.filePath("de-en"), []byte("{not json"), 0644))

		_, err := cache.Load("de-en", source, func() (*Table, error) {
			return newTestTable(), nil
		})
		assert.Error(t, err)
	})

	t.Run("build error", func(t *testing.T) {
		cache := NewTableCache(t.TempDir())
		_, err := cache.Load("de-en", source, func() (*Table, error) {
			return nil, errors.New("parse failure")
		})
		assert.ErrorContains(t, err, "parse failure")
		assert.NoFileExists(t, cache.filePath("de-en"))
	})
}

// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// DictionaryLines is a small German/English source covering every word class.
var DictionaryLines = []string{
	"# Version :: 1.8 2020-12-15",
	"Brot {n} | Brote {pl} :: bread | breads",
	"Haus {n} | Häuser {pl} :: house | houses",
	"Semmel {f} [Süddt.] | Semmeln {pl} :: bread roll",
	"Wecken {m} :: roll",
	"gehen {vi} :: to go",
	"kaufen {vt} :: to buy",
	"schön {adj} :: beautiful",
	"aufrufen :: to invoice",
}

// SetupTestConfig creates a config file and all required directories for testing.
// The dictionary source is written from DictionaryLines. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"dictionaries", "cache", "output_cards"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}
	sourceFile := CreateDictionaryFile(t, filepath.Join(tmpDir, "dictionaries"), DictionaryLines...)

	configContent := fmt.Sprintf(`dictionary:
  source_file: %s
  cache_directory: %s
  untyped_policy: reject
outputs:
  card_directory: %s
`,
		sourceFile,
		filepath.Join(tmpDir, "cache"),
		filepath.Join(tmpDir, "output_cards"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateDictionaryFile writes lines to dir/de-en.txt and returns its path.
func CreateDictionaryFile(t *testing.T, dir string, lines ...string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "de-en.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

// CreateWordFile writes one word per line to dir/words.txt and returns its path.
func CreateWordFile(t *testing.T, dir string, words ...string) string {
	t.Helper()

	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644))
	return path
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashcardgen/internal/dictionary"
	"github.com/at-ishikawa/flashcardgen/internal/testutil"
)

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOutput string
		wantErr    bool
	}{
		{
			name:       "noun found through the alternate casing",
			args:       []string{"lookup", "brot"},
			wantOutput: "das Brot {n} (pl. Brote) :: bread\n",
		},
		{
			name:       "verb",
			args:       []string{"lookup", "gehen"},
			wantOutput: "gehen {vi} :: to go\n",
		},
		{
			name:       "untyped word is rejected by default",
			args:       []string{"lookup", "aufrufen"},
			wantOutput: "word \"aufrufen\" not found (also tried \"Aufrufen\")\n",
			wantErr:    true,
		},
		{
			name:       "untyped word is a verb when relaxed",
			args:       []string{"--untyped", "verb", "lookup", "aufrufen"},
			wantOutput: "aufrufen :: to invoice\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			cfgPath := testutil.SetupTestConfig(t, tmpDir)

			got, err := executeCommand(t, tmpDir, append([]string{"--config", cfgPath}, tt.args...)...)
			assert.Equal(t, tt.wantOutput, got)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dictionary.IsWordNotFound(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCardsCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	wordFile := testutil.CreateWordFile(t, tmpDir, "Brot", "xyz", "schön")
	outputDirectory := filepath.Join(tmpDir, "cards")

	got, err := executeCommand(t, tmpDir,
		"--config", cfgPath, "cards",
		"--word-file", wordFile,
		"--title", "Bäckerei",
		"--output-dir", outputDirectory,
	)
	require.NoError(t, err)

	markdownPath := filepath.Join(outputDirectory, "bäckerei.md")
	assert.Equal(t, "Cards written to: "+markdownPath+"\n2 cards, 1 words not found\n  [MISSING]  xyz\n", got)

	content, err := os.ReadFile(markdownPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "## Brot")
	assert.Contains(t, string(content), "## beautiful")
	assert.NotContains(t, string(content), "xyz")
}

func TestCardsCommand_NoWordFound(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	wordFile := testutil.CreateWordFile(t, tmpDir, "xyz")

	_, err := executeCommand(t, tmpDir, "--config", cfgPath, "cards", "--word-file", wordFile)
	assert.ErrorContains(t, err, "none of the 1 words")
}

func TestDictionaryBuildCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	got, err := executeCommand(t, tmpDir, "--config", cfgPath, "dictionary", "build", "--show-failures")
	require.NoError(t, err)
	assert.Equal(t, "lines: 9, skipped: 1, parsed: 7, entries: 7, failures: 1, duplicates: 0\n"+
		"  [FAIL]  line 9: no type indicator for \"aufrufen\" in line \"aufrufen :: to invoice\"\n", got)
	assert.FileExists(t, filepath.Join(tmpDir, "cache", "de-en.reject.json"))
}

func TestDictionaryExportCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)

	got, err := executeCommand(t, tmpDir, "--config", cfgPath, "dictionary", "export")
	require.NoError(t, err)
	assert.Contains(t, got, "- word: Brot\n  kind: noun\n  gender: \"n\"\n  plural: Brote\n  translation: bread\n")
	assert.Contains(t, got, "- word: schön\n  kind: adjective\n  translation: beautiful\n")
	assert.NotContains(t, got, "aufrufen")
}

func TestNewDictionaryCommand(t *testing.T) {
	cmd := newDictionaryCommand()

	assert.Equal(t, "dictionary", cmd.Use)
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"download", "build", "export", "import-db", "migrate"}, names)

	importCmd, _, err := cmd.Find([]string{"import-db"})
	require.NoError(t, err)
	assert.NotNil(t, importCmd.Flags().Lookup("dry-run"))
	assert.NotNil(t, importCmd.Flags().Lookup("update-existing"))
}

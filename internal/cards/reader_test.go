package cards

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWordList(t *testing.T) {
	got, err := ReadWordList(strings.NewReader("# Bäckerei\nBrot\n\n  Brötchen \t\nschön\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Brot", "Brötchen", "schön"}, got)

	got, err = ReadWordList(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Haus\ngehen\n"), 0644))

	got, err := ReadWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Haus", "gehen"}, got)

	_, err = ReadWordFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "os.Open")
}

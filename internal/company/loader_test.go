package company

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadListCleansLines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "companies.txt")
	content := "\"Acme Inc.\"\n\n   Globex Corporation   \n\"\"\nBad News, Inc.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	names, err := LoadList(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Acme Inc.", "Globex Corporation", "Bad News, Inc."}, names)
}

func TestLoadListMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadList(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestRecordsPreserveOrder(t *testing.T) {
	t.Parallel()

	recs := Records([]string{"Acme Inc.", "Globex Corp."})
	require.Len(t, recs, 2)
	require.Equal(t, "Acme Inc.", recs[0].Original)
	require.Equal(t, "Acme", recs[0].Normalized)
	require.Equal(t, "Globex", recs[1].Normalized)
}

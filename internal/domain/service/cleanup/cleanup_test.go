package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestSweepDryRun(t *testing.T) {
	dir := t.TempDir()

	original := writeFile(t, dir, "catalog.csv", "id,name\ncoins_small,Small Coin Pack\n")
	duplicate := writeFile(t, dir, "catalog_copy.csv", "id,name\ncoins_small,Small Coin Pack\n")
	backup := writeFile(t, dir, "economy_items.csv.bak", "old stuff")
	empty := writeFile(t, dir, "inventory.csv", "")
	writeFile(t, dir, "currencies.csv", "id,name\ncoins,Coins\n")

	findings, err := NewSweeper(dir).Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, findings, 3)

	byPath := make(map[string]Finding, len(findings))
	for _, f := range findings {
		byPath[f.Path] = f
	}

	require.Equal(t, ReasonDuplicate, byPath[duplicate].Reason)
	require.Equal(t, original, byPath[duplicate].Original)
	require.Equal(t, ReasonBackup, byPath[backup].Reason)
	require.Equal(t, ReasonEmpty, byPath[empty].Reason)

	// dry run must not touch anything
	for _, path := range []string{original, duplicate, backup, empty} {
		_, err := os.Stat(path)
		require.NoError(t, err, path)
	}
}

func TestSweepDelete(t *testing.T) {
	dir := t.TempDir()

	original := writeFile(t, dir, "catalog.csv", "id,name\ncoins_small,Small Coin Pack\n")
	duplicate := writeFile(t, dir, "catalog_copy.csv", "id,name\ncoins_small,Small Coin Pack\n")
	backup := writeFile(t, dir, "notes.txt~", "scratch")

	findings, err := NewSweeper(dir).WithDelete(true).Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, findings, 2)

	_, err = os.Stat(original)
	require.NoError(t, err)

	for _, path := range []string{duplicate, backup} {
		_, err := os.Stat(path)
		require.ErrorIs(t, err, os.ErrNotExist, path)
	}
}

func TestSweepWalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "reports")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	writeFile(t, dir, "economy_data.json", `{"items":[]}`)
	nested := writeFile(t, sub, "economy_data.json", `{"items":[]}`)

	findings, err := NewSweeper(dir).Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, findings, 1)
	require.Equal(t, nested, findings[0].Path)
	require.Equal(t, ReasonDuplicate, findings[0].Reason)
}

func TestSweepEmptyTree(t *testing.T) {
	findings, err := NewSweeper(t.TempDir()).Sweep(context.Background())
	require.NoError(t, err)
	require.Empty(t, findings)
}

package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerclean-dev/ledgerclean/internal/export"
)

func TestClean_Fixture(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := runLedgerclean(t, "clean", "../../testdata/messy_bank_statements.csv", "--out", outDir)
	require.NoError(t, err, out)

	assert.Contains(t, out, "Cleaned 7 transactions")
	assert.Contains(t, out, "Flagged anomalies: 1")
	assert.Contains(t, out, "Total income:      2500.00")
	assert.Contains(t, out, "Total expenses:    -1439.32")
	assert.Contains(t, out, "Final balance:     1060.68")

	for _, name := range []string{
		export.CleanedFile, export.StrictFile, export.SortedFile,
		export.MonthlySummaryFile, export.CategoryBreakdownFile,
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "expected %s", name)
	}
}

func TestClean_ProjectWorkflow(t *testing.T) {
	// init a project, drop a statement into data/raw, clean with no args
	// from inside the project directory.
	dir := t.TempDir()
	_, err := runLedgerclean(t, "init", dir, "--name", "Household")
	require.NoError(t, err)

	src, err := os.ReadFile("../../testdata/messy_bank_statements.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "raw", "january.csv"), src, 0o644))

	cmd := exec.Command(binaryPath, "clean")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	_, err = os.Stat(filepath.Join(dir, "data", "cleaned", export.CleanedFile))
	assert.NoError(t, err)
}

func TestClean_NoInput(t *testing.T) {
	cmd := exec.Command(binaryPath, "clean")
	cmd.Dir = t.TempDir()
	out, err := cmd.CombinedOutput()
	require.Error(t, err, "no project, no file, empty raw dir: %s", out)
}

package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatement_Testdata(t *testing.T) {
	rows, enc, err := ParseStatementFile("../../testdata/messy_bank_statements.csv")
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, EncodingUTF8, enc)

	// Raw strings pass through untouched; cleanup is the normalizers' job.
	assert.Equal(t, "01/15/2023", rows[0].Date)
	assert.Equal(t, "Salary deposit", rows[0].Description)
	assert.Equal(t, "$2,500.00", rows[0].Amount)
	assert.Equal(t, "s@l@ry", rows[0].Category)
	assert.Equal(t, "Checking", rows[0].Account)

	assert.Empty(t, rows[2].Date)
	assert.Empty(t, rows[2].Account)
	assert.Equal(t, "xx", rows[6].Amount)
}

func TestParseStatement_HeaderNormalization(t *testing.T) {
	in := " DATE ,description,AMOUNT,Category\n2023-01-05,coffee,-3.50,dining\n"
	rows, err := ParseStatement(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "2023-01-05", rows[0].Date)
	assert.Equal(t, "coffee", rows[0].Description)
	assert.Equal(t, "-3.50", rows[0].Amount)
	assert.Equal(t, "dining", rows[0].Category)
	assert.Empty(t, rows[0].Account, "no Account column means empty field")
}

func TestParseStatement_HeaderOnly(t *testing.T) {
	rows, err := ParseStatement(strings.NewReader("Date,Description,Amount,Category\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseStatement_Empty(t *testing.T) {
	rows, err := ParseStatement(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestParseStatementFile_Missing(t *testing.T) {
	_, _, err := ParseStatementFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
}

func TestParseStatementFile_CP1252(t *testing.T) {
	// "Café" with a cp1252 é byte.
	raw := append([]byte("Date,Description,Amount,Category\n2023-02-01,Caf"), 0xE9)
	raw = append(raw, []byte(",-4.00,dining\n")...)

	path := filepath.Join(t.TempDir(), "latin.csv")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	rows, enc, err := ParseStatementFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, EncodingCP1252, enc)
	assert.Equal(t, "Café", rows[0].Description)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("Date\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.CSV"), []byte("Date\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.csv", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "a.csv"), files[0].Path)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

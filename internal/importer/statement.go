package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

// FileInfo describes a CSV export found in the raw data directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// ParseStatement reads a bank export into RawRows. Headers are matched
// case-insensitively with surrounding whitespace trimmed; a missing Account
// column leaves RawRow.Account empty. A header-only (or empty) export
// yields no rows and no error.
func ParseStatement(r io.Reader) ([]model.RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	data = normalizeHeader(data)

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.LazyQuotes = true
		cr.TrimLeadingSpace = true
		return cr
	})

	var rows []model.RawRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing statement CSV: %w", err)
	}
	return rows, nil
}

// ParseStatementFile opens, decodes, and parses a single export file,
// returning the detected encoding label alongside the rows. A missing
// input file is the one fatal input condition.
func ParseStatementFile(path string) ([]model.RawRow, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading input %s: %w", path, err)
	}

	decoded, enc := Decode(raw)
	rows, err := ParseStatement(bytes.NewReader(decoded))
	if err != nil {
		return nil, enc, err
	}
	return rows, enc, nil
}

// Scan returns CSV files in dir, in directory order.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading raw dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// normalizeHeader title-cases and trims the first CSV line so exports with
// headers like " date " or "DESCRIPTION" match the RawRow tags.
func normalizeHeader(data []byte) []byte {
	head := data
	var tail []byte
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		head = data[:idx]
		tail = data[idx+1:]
	}

	cr := csv.NewReader(bytes.NewReader(head))
	fields, err := cr.Read()
	if err != nil {
		return data
	}

	title := cases.Title(language.English)
	for i, f := range fields {
		fields[i] = title.String(strings.ToLower(strings.TrimSpace(f)))
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(fields)
	cw.Flush()
	buf.Write(tail)
	return buf.Bytes()
}

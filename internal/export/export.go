// Package export writes the cleaned dataset variants and summary tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

// Output file names within the output directory.
const (
	CleanedFile           = "cleaned_bank_statements.csv"
	StrictFile            = "cleaned_bank_statements_strict.csv"
	SortedFile            = "cleaned_bank_statements_sorted.csv"
	MonthlySummaryFile    = "monthly_summary.csv"
	CategoryBreakdownFile = "category_breakdown_by_month.csv"
)

// MonthlyHeader is the CSV header for the monthly summary table.
const MonthlyHeader = "Month,TransactionCount,TotalIncome,TotalExpenses,Net"

// BreakdownHeader is the CSV header for the month×category table.
const BreakdownHeader = "Month,Category,Total"

// Strict returns the rows that still carry both a date and an amount after
// normalization. Interpolated amounts and sentinel text fields count as
// present; only genuinely absent dates/amounts drop a row.
func Strict(recs []model.Record) []model.Record {
	var out []model.Record
	for _, r := range recs {
		if r.HasDate() && r.Amount.Valid {
			out = append(out, r)
		}
	}
	return out
}

// SortByDate returns a copy sorted ascending by date. The sort is stable:
// rows sharing a date keep their original relative order.
func SortByDate(recs []model.Record) []model.Record {
	out := make([]model.Record, len(recs))
	copy(out, recs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// WriteMonthly writes the monthly summary table (including header).
func WriteMonthly(w io.Writer, rows []model.MonthSummary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(MonthlyHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, s := range rows {
		row := []string{
			s.Month,
			strconv.Itoa(s.TransactionCount),
			s.TotalIncome.StringFixed(2),
			s.TotalExpenses.StringFixed(2),
			s.Net.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteBreakdown writes the month×category table (including header).
func WriteBreakdown(w io.Writer, rows []model.CategoryTotal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(BreakdownHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range rows {
		if err := cw.Write([]string{c.Month, c.Category, c.Total.StringFixed(2)}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteAll writes all five output files into dir, creating the directory if
// missing and overwriting existing files. Write failures are fatal to the
// run and surface the underlying I/O error.
func WriteAll(dir string, recs []model.Record, months []model.MonthSummary, breakdown []model.CategoryTotal) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	strict := Strict(recs)

	datasets := []struct {
		name string
		rows []model.Record
	}{
		{CleanedFile, recs},
		{StrictFile, strict},
		{SortedFile, SortByDate(strict)},
	}
	for _, d := range datasets {
		if err := writeFile(filepath.Join(dir, d.name), func(w io.Writer) error {
			return WriteRecords(w, d.rows)
		}); err != nil {
			return err
		}
	}

	if err := writeFile(filepath.Join(dir, MonthlySummaryFile), func(w io.Writer) error {
		return WriteMonthly(w, months)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, CategoryBreakdownFile), func(w io.Writer) error {
		return WriteBreakdown(w, breakdown)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", filepath.Base(path), err)
	}
	return nil
}

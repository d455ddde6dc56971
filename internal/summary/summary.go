// Package summary derives the monthly and month×category tables from a
// cleaned dataset. Rows without a date are excluded from aggregation but
// stay in the cleaned exports.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

// Monthly groups records by calendar month and totals their amounts.
// Output rows are sorted by month for deterministic files.
func Monthly(recs []model.Record) []model.MonthSummary {
	byMonth := make(map[string]*model.MonthSummary)
	for _, r := range recs {
		if !r.HasDate() {
			continue
		}
		key := r.MonthKey()
		s, ok := byMonth[key]
		if !ok {
			s = &model.MonthSummary{Month: key}
			byMonth[key] = s
		}
		s.TransactionCount++
		if !r.Amount.Valid {
			continue
		}
		a := r.Amount.Decimal
		if a.IsPositive() {
			s.TotalIncome = s.TotalIncome.Add(a)
		} else {
			s.TotalExpenses = s.TotalExpenses.Add(a)
		}
		s.Net = s.Net.Add(a)
	}

	out := make([]model.MonthSummary, 0, len(byMonth))
	for _, s := range byMonth {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ByCategory groups records by (month, category) and totals their amounts.
// Absent amounts contribute zero but the cell still appears. Output rows
// are sorted by month, then category.
func ByCategory(recs []model.Record) []model.CategoryTotal {
	type cell struct{ month, category string }
	totals := make(map[cell]decimal.Decimal)
	for _, r := range recs {
		if !r.HasDate() {
			continue
		}
		c := cell{r.MonthKey(), r.Category}
		t := totals[c]
		if r.Amount.Valid {
			t = t.Add(r.Amount.Decimal)
		}
		totals[c] = t
	}

	out := make([]model.CategoryTotal, 0, len(totals))
	for c, t := range totals {
		out = append(out, model.CategoryTotal{Month: c.month, Category: c.category, Total: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Category < out[j].Category
	})
	return out
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the canonical date representation used everywhere downstream.
const DateFormat = "2006-01-02"

// Unspecified is the sentinel for text fields with no usable value.
const Unspecified = "Unspecified"

// RawRow is one input CSV row before any cleanup. Fields hold the original
// strings; Account stays empty when the export has no such column.
type RawRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	Account     string `csv:"Account"`
}

// Record is one transaction after normalization. A zero Date means the date
// is absent; Amount.Valid is false when no value survived cleanup and
// interpolation.
type Record struct {
	Date           time.Time
	Description    string
	Amount         decimal.NullDecimal
	Category       string
	Account        string
	Balance        decimal.Decimal
	Anomaly        bool
	AnomalyReasons []string
}

// HasDate reports whether the record carries a usable date.
func (r Record) HasDate() bool { return !r.Date.IsZero() }

// MonthKey returns the year-month grouping key, e.g. "2025-01".
// Empty for records without a date.
func (r Record) MonthKey() string {
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Format("2006-01")
}

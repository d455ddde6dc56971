package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

// Header is the CSV header for the cleaned dataset variants.
const Header = "Date,Description,Amount,Category,Balance,Anomaly,Account"

const (
	numFields   = 7
	colDate     = 0
	colDesc     = 1
	colAmount   = 2
	colCategory = 3
	colBalance  = 4
	colAnomaly  = 5
	colAccount  = 6
)

// MarshalRecord converts a Record to a CSV row. Absent dates and amounts
// render as empty fields.
func MarshalRecord(r model.Record) []string {
	row := make([]string, numFields)
	if r.HasDate() {
		row[colDate] = r.Date.Format(model.DateFormat)
	}
	row[colDesc] = r.Description
	if r.Amount.Valid {
		row[colAmount] = r.Amount.Decimal.StringFixed(2)
	}
	row[colCategory] = r.Category
	row[colBalance] = r.Balance.StringFixed(2)
	row[colAnomaly] = strconv.FormatBool(r.Anomaly)
	row[colAccount] = r.Account
	return row
}

// UnmarshalRecord converts a CSV row back to a Record.
func UnmarshalRecord(record []string) (model.Record, error) {
	if len(record) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var r model.Record
	if record[colDate] != "" {
		date, err := time.Parse(model.DateFormat, record[colDate])
		if err != nil {
			return model.Record{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
		r.Date = date
	}

	r.Description = record[colDesc]

	if record[colAmount] != "" {
		a, err := decimal.NewFromString(record[colAmount])
		if err != nil {
			return model.Record{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
		}
		r.Amount = decimal.NullDecimal{Decimal: a, Valid: true}
	}

	r.Category = record[colCategory]

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}
	r.Balance = balance

	anomaly, err := strconv.ParseBool(record[colAnomaly])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing anomaly %q: %w", record[colAnomaly], err)
	}
	r.Anomaly = anomaly

	r.Account = record[colAccount]
	return r, nil
}

// WriteRecords writes a cleaned dataset (including header).
func WriteRecords(w io.Writer, recs []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range recs {
		if err := cw.Write(MarshalRecord(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadRecords reads a cleaned dataset back from a writer's output.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading cleaned CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var recs []model.Record
	for i, rec := range records[1:] {
		r, err := UnmarshalRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		recs = append(recs, r)
	}
	return recs, nil
}

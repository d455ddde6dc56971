// Package pipeline wires the cleaning stages into a single batch run:
// read, decode, parse, normalize, resolve, derive, aggregate, export.
package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ledgerclean-dev/ledgerclean/internal/category"
	"github.com/ledgerclean-dev/ledgerclean/internal/config"
	"github.com/ledgerclean-dev/ledgerclean/internal/derive"
	"github.com/ledgerclean-dev/ledgerclean/internal/export"
	"github.com/ledgerclean-dev/ledgerclean/internal/importer"
	"github.com/ledgerclean-dev/ledgerclean/internal/model"
	"github.com/ledgerclean-dev/ledgerclean/internal/normalize"
	"github.com/ledgerclean-dev/ledgerclean/internal/summary"
)

// Service runs the cleaning pipeline for one configuration.
type Service struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewService creates a pipeline Service.
func NewService(cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

// Report summarizes one completed run.
type Report struct {
	InputFile     string
	Encoding      string
	Rows          int
	Anomalies     int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	FinalBalance  decimal.Decimal

	Records   []model.Record
	Months    []model.MonthSummary
	Breakdown []model.CategoryTotal
}

// ResolveInput picks the input file: an explicit path wins, then the
// configured file, then the first CSV in the raw directory.
func (s *Service) ResolveInput(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if s.cfg.Input.File != "" {
		return s.cfg.Input.File, nil
	}
	files, err := importer.Scan(s.cfg.Input.RawDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no input CSV found in %s", s.cfg.Input.RawDir)
	}
	return files[0].Path, nil
}

// Run cleans one export and writes all outputs into the configured
// directory. A missing input file or a failed output write is fatal;
// per-field parse failures are absorbed by the fill and drop policies.
func (s *Service) Run(inputPath string) (*Report, error) {
	// 1. Read, sniff encoding, and parse. A missing input file is the one
	// fatal input condition; decoding itself never fails.
	rows, enc, err := importer.ParseStatementFile(inputPath)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("file", inputPath).Str("encoding", enc).Int("rows", len(rows)).Msg("parsed statement")

	// 2. Per-field normalization and category resolution.
	resolver := category.FromConfig(s.cfg.Categories)
	recs := make([]model.Record, len(rows))
	for i, row := range rows {
		recs[i] = model.Record{
			Date:        normalize.Date(row.Date),
			Description: normalize.Description(row.Description),
			Amount:      normalize.Amount(row.Amount),
			Category:    resolver.Resolve(row.Category),
			Account:     normalize.Account(row.Account),
		}
	}

	// 3. Row-order fills: forward-fill dates, interpolate amounts.
	normalize.ForwardFillDates(recs)
	normalize.InterpolateAmounts(recs)

	// 4. Derived fields.
	derive.RunningBalance(recs)
	derive.FlagAnomalies(recs, derive.PolicyFromConfig(s.cfg.Anomalies))

	// 5. Summary tables.
	months := summary.Monthly(recs)
	breakdown := summary.ByCategory(recs)

	// 6. Export all variants. Write failures are fatal.
	if err := export.WriteAll(s.cfg.Output.Dir, recs, months, breakdown); err != nil {
		return nil, err
	}
	s.log.Info().Str("dir", s.cfg.Output.Dir).Msg("wrote cleaned outputs")

	report := buildReport(inputPath, enc, recs)
	report.Months = months
	report.Breakdown = breakdown
	s.log.Info().
		Int("rows", report.Rows).
		Int("anomalies", report.Anomalies).
		Str("final_balance", report.FinalBalance.StringFixed(2)).
		Msg("cleaning complete")
	return report, nil
}

func buildReport(inputPath, enc string, recs []model.Record) *Report {
	r := &Report{
		InputFile: inputPath,
		Encoding:  enc,
		Rows:      len(recs),
		Records:   recs,
	}
	for _, rec := range recs {
		if rec.Anomaly {
			r.Anomalies++
		}
		if !rec.Amount.Valid {
			continue
		}
		if rec.Amount.Decimal.IsPositive() {
			r.TotalIncome = r.TotalIncome.Add(rec.Amount.Decimal)
		} else {
			r.TotalExpenses = r.TotalExpenses.Add(rec.Amount.Decimal)
		}
	}
	if n := len(recs); n > 0 {
		r.FinalBalance = recs[n-1].Balance
	}
	return r
}

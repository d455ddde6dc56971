package derive

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerclean-dev/ledgerclean/internal/config"
	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

// Anomaly reasons recorded on flagged rows. Flags are advisory: flagged
// rows stay in every output.
const (
	ReasonMissingAmount     = "missing-amount"
	ReasonOutlier           = "outlier"
	ReasonPossibleDuplicate = "possible-duplicate"
)

// Policy holds the anomaly heuristics. The exact constants are policy, not
// contract; they come from configuration.
type Policy struct {
	Multiplier          decimal.Decimal // outlier bound: multiplier x trailing mean magnitude
	Window              int             // trailing valid amounts considered
	DuplicateWindowDays int             // repeat description+amount window
}

// PolicyFromConfig converts the anomalies config section into a Policy.
func PolicyFromConfig(cfg config.AnomaliesConfig) Policy {
	return Policy{
		Multiplier:          decimal.NewFromFloat(cfg.Multiplier),
		Window:              cfg.Window,
		DuplicateWindowDays: cfg.DuplicateWindowDays,
	}
}

// FlagAnomalies marks rows whose amount is still absent after interpolation,
// whose magnitude exceeds the policy multiple of the trailing rolling mean
// magnitude, or that repeat an earlier description+amount pair within the
// duplicate date window. One pass, row order dependent.
func FlagAnomalies(recs []model.Record, p Policy) {
	for i := range recs {
		var reasons []string

		if !recs[i].Amount.Valid {
			reasons = append(reasons, ReasonMissingAmount)
		} else {
			if isOutlier(recs, i, p) {
				reasons = append(reasons, ReasonOutlier)
			}
			if isRepeat(recs, i, p) {
				reasons = append(reasons, ReasonPossibleDuplicate)
			}
		}

		recs[i].Anomaly = len(reasons) > 0
		recs[i].AnomalyReasons = reasons
	}
}

// isOutlier compares |amount| against the rolling mean magnitude of the
// previous Window valid amounts. Rows with no valid predecessors, or a
// zero mean, are never outliers.
func isOutlier(recs []model.Record, i int, p Policy) bool {
	sum := decimal.Zero
	n := 0
	for j := i - 1; j >= 0 && n < p.Window; j-- {
		if !recs[j].Amount.Valid {
			continue
		}
		sum = sum.Add(recs[j].Amount.Decimal.Abs())
		n++
	}
	if n == 0 {
		return false
	}
	mean := sum.Div(decimal.NewFromInt(int64(n)))
	if mean.IsZero() {
		return false
	}
	return recs[i].Amount.Decimal.Abs().GreaterThan(mean.Mul(p.Multiplier))
}

// isRepeat looks backwards for the same description+amount pair within the
// duplicate date window. Only the later occurrence is flagged.
func isRepeat(recs []model.Record, i int, p Policy) bool {
	if !recs[i].HasDate() {
		return false
	}
	for j := i - 1; j >= 0; j-- {
		if !recs[j].HasDate() || !recs[j].Amount.Valid {
			continue
		}
		if recs[j].Description != recs[i].Description {
			continue
		}
		if !recs[j].Amount.Decimal.Equal(recs[i].Amount.Decimal) {
			continue
		}
		days := recs[i].Date.Sub(recs[j].Date).Hours() / 24
		if days < 0 {
			days = -days
		}
		if int(days) <= p.DuplicateWindowDays {
			return true
		}
	}
	return false
}

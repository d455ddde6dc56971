package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

var multiDotPattern = regexp.MustCompile(`\.{2,}`)

// Amount strips currency symbols and separators, then parses to a decimal
// rounded to 2 places. Missing or unparseable values come back invalid
// (absent); interpolation happens later, over the whole dataset.
func Amount(raw string) decimal.NullDecimal {
	s := strings.TrimSpace(raw)
	if IsMissing(s) {
		return decimal.NullDecimal{}
	}

	// Keep digits, sign, and decimal point only.
	s = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	s = multiDotPattern.ReplaceAllString(s, ".")
	if strings.Count(s, "-") > 1 {
		s = "-" + strings.ReplaceAll(s, "-", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d.Round(2), Valid: true}
}

// InterpolateAmounts fills absent amounts by linear interpolation between
// the nearest valid preceding and following values in row order. A run of k
// gaps between two valid values gets k evenly spaced steps; runs without
// bracketing values stay absent.
func InterpolateAmounts(recs []model.Record) {
	prev := -1 // index of last valid amount
	for i := 0; i < len(recs); i++ {
		if !recs[i].Amount.Valid {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			fillGap(recs, prev, i)
		}
		prev = i
	}
}

func fillGap(recs []model.Record, lo, hi int) {
	span := decimal.NewFromInt(int64(hi - lo))
	step := recs[hi].Amount.Decimal.Sub(recs[lo].Amount.Decimal).Div(span)
	for i := lo + 1; i < hi; i++ {
		offset := step.Mul(decimal.NewFromInt(int64(i - lo)))
		recs[i].Amount = decimal.NullDecimal{
			Decimal: recs[lo].Amount.Decimal.Add(offset).Round(2),
			Valid:   true,
		}
	}
}

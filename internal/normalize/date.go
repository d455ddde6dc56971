package normalize

import (
	"strings"
	"time"

	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

// dateLayouts are tried in order; month-first variants win over day-first
// when a value is ambiguous, mirroring US-leaning exports.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
	"02/01/2006",
	"02-01-2006",
	"01/02/06",
	"02/01/06",
	"2-Jan-2006",
	"2-January-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02 15:04:05",
}

// Date parses heterogeneous date text into a canonical UTC calendar date.
// Unparseable or missing values yield the zero time (absent), never an error.
func Date(raw string) time.Time {
	s := strings.TrimSpace(raw)
	if IsMissing(s) {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

// ForwardFillDates replaces each absent date with the nearest preceding
// valid date. Rows before the first valid date stay absent.
func ForwardFillDates(recs []model.Record) {
	var last time.Time
	for i := range recs {
		if recs[i].Date.IsZero() {
			recs[i].Date = last
			continue
		}
		last = recs[i].Date
	}
}

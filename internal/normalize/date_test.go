package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

func TestDate_FormatInvariance(t *testing.T) {
	// Every supported spelling of the same day canonicalizes identically.
	want := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	variants := []string{
		"2023-01-15",
		"2023/01/15",
		"01/15/2023",
		"01-15-2023",
		"15-Jan-2023",
		"15-January-2023",
		"Jan 15, 2023",
		"January 15, 2023",
		"  2023-01-15  ",
		"2023-01-15 09:30:00",
	}
	for _, v := range variants {
		assert.Equal(t, want, Date(v), "input %q", v)
	}
}

func TestDate_MonthFirstWinsWhenAmbiguous(t *testing.T) {
	// 03/04 could be Mar 4 or Apr 3; the layout order makes it Mar 4.
	got := Date("03/04/2023")
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 4, got.Day())
}

func TestDate_DayFirstFallback(t *testing.T) {
	// 19 is not a month, so the day-first layout picks it up.
	got := Date("19-01-2023")
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 19, got.Day())
}

func TestDate_Unparseable(t *testing.T) {
	for _, v := range []string{"not a date", "2023-13-45", "", "None", "nan", "N/A"} {
		assert.True(t, Date(v).IsZero(), "input %q should be absent", v)
	}
}

func TestForwardFillDates(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2023, 1, day, 0, 0, 0, 0, time.UTC)
	}
	recs := []model.Record{
		{},           // leading absent, no predecessor
		{Date: d(5)},
		{},           // filled from Jan 5
		{},           // filled from Jan 5
		{Date: d(9)},
		{},           // filled from Jan 9
	}
	ForwardFillDates(recs)

	assert.True(t, recs[0].Date.IsZero())
	assert.Equal(t, d(5), recs[1].Date)
	assert.Equal(t, d(5), recs[2].Date)
	assert.Equal(t, d(5), recs[3].Date)
	assert.Equal(t, d(9), recs[4].Date)
	assert.Equal(t, d(9), recs[5].Date)

	// Filled dates never precede the last valid date.
	last := time.Time{}
	for _, r := range recs {
		if r.Date.IsZero() {
			continue
		}
		assert.False(t, r.Date.Before(last))
		last = r.Date
	}
}

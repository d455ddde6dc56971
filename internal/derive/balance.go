package derive

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerclean-dev/ledgerclean/internal/model"
)

// RunningBalance fills Balance with the cumulative sum of amounts in the
// current row order. Absent amounts add zero but the row still gets a
// balance, so balance[n] is always the sum of amounts[0..n].
func RunningBalance(recs []model.Record) {
	bal := decimal.Zero
	for i := range recs {
		if recs[i].Amount.Valid {
			bal = bal.Add(recs[i].Amount.Decimal)
		}
		recs[i].Balance = bal.Round(2)
	}
}

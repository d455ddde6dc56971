package model

import "github.com/shopspring/decimal"

// MonthSummary aggregates the transactions of one calendar month.
type MonthSummary struct {
	Month            string // "2006-01"
	TransactionCount int
	TotalIncome      decimal.Decimal // sum of positive amounts
	TotalExpenses    decimal.Decimal // sum of negative amounts (non-positive)
	Net              decimal.Decimal
}

// CategoryTotal is one month×category cell of the breakdown table.
type CategoryTotal struct {
	Month    string
	Category string
	Total    decimal.Decimal
}

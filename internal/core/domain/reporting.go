package domain

import "github.com/shopspring/decimal"

// SummaryTotals holds the store-wide sums backing the dashboard summary.
// Sums are computed in SQL and carried as decimals until presentation.
type SummaryTotals struct {
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	TotalBalance decimal.Decimal
}

// MonthlyTrendPoint is one entry of the revenue-vs-expense trend series,
// keyed by the recorded month label of the raw records.
type MonthlyTrendPoint struct {
	Month   string
	Revenue decimal.Decimal
	Expense decimal.Decimal
}

// RecordPage is one pagination window over the raw records, with the total
// row count independent of the window.
type RecordPage struct {
	Total   int64
	Records []FinancialRecord
}

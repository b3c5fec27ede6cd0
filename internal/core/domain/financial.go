package domain

import "time"

// NormalizedRow is one validated, typed row produced by the ingestion parser.
// Month is the derived YYYY-MM grouping label of Date.
type NormalizedRow struct {
	AccountID        string
	Date             time.Time
	Month            string
	Revenue          float64
	Expense          float64
	Balance          float64
	TransactionCount int
	OverdueAmount    float64
	PaymentDelayDays int
}

// FinancialRecord is one raw transaction-period entry. Records are created in
// bulk on upload and are immutable thereafter.
type FinancialRecord struct {
	RecordID         int64
	AccountID        string
	Date             time.Time
	Revenue          float64
	Expense          float64
	Balance          float64
	TransactionCount int
	OverdueAmount    float64
	PaymentDelayDays int
	CreatedAt        time.Time
}

// FinancialAggregate is a per (account, month) rollup derived from the raw rows
// of a single upload. Aggregates are additive across uploads: the same
// (account, month) pair may appear once per upload that contained it.
type FinancialAggregate struct {
	AggregateID        int64
	AccountID          string
	Month              string
	AvgRevenue         float64
	AvgExpense         float64
	Profit             float64
	ExpenseRatio       float64
	CashflowVolatility float64
	CreatedAt          time.Time
}

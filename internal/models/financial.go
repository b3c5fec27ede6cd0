package models

import "time"

// FinancialRecord represents a row in the financial_records table.
type FinancialRecord struct {
	RecordID         int64     `db:"record_id"`
	AccountID        string    `db:"account_id"`
	Date             time.Time `db:"date"`
	Revenue          float64   `db:"revenue"`
	Expense          float64   `db:"expense"`
	Balance          float64   `db:"balance"`
	TransactionCount int       `db:"transaction_count"`
	OverdueAmount    float64   `db:"overdue_amount"`
	PaymentDelayDays int       `db:"payment_delay_days"`
	CreatedAt        time.Time `db:"created_at"`
}

// FinancialAggregate represents a row in the financial_aggregates table.
// No uniqueness is enforced on (account_id, month); duplicate rollups
// accumulate across uploads.
type FinancialAggregate struct {
	AggregateID        int64     `db:"aggregate_id"`
	AccountID          string    `db:"account_id"`
	Month              string    `db:"month"`
	AvgRevenue         float64   `db:"avg_revenue"`
	AvgExpense         float64   `db:"avg_expense"`
	Profit             float64   `db:"profit"`
	ExpenseRatio       float64   `db:"expense_ratio"`
	CashflowVolatility float64   `db:"cashflow_volatility"`
	CreatedAt          time.Time `db:"created_at"`
}

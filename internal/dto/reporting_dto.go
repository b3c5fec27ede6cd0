package dto

import (
	"time"

	"github.com/Ommishra2/Dataintellect/internal/core/domain"
)

// SummaryResponse is the high-level dashboard summary.
type SummaryResponse struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalExpense   float64 `json:"total_expense"`
	NetProfit      float64 `json:"net_profit"`
	CurrentBalance float64 `json:"current_balance"`
	RiskExposure   string  `json:"risk_exposure"`
}

// TrendPoint is one entry of the monthly revenue-vs-expense series.
type TrendPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
}

// ListRecordsParams defines query parameters for listing raw records.
type ListRecordsParams struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=50" binding:"min=0"`
}

// FinancialRecordResponse is the public projection of a raw record.
type FinancialRecordResponse struct {
	ID               int64   `json:"id"`
	AccountID        string  `json:"account_id"`
	Date             string  `json:"date"`
	Revenue          float64 `json:"revenue"`
	Expense          float64 `json:"expense"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
	OverdueAmount    float64 `json:"overdue_amount"`
	PaymentDelayDays int     `json:"payment_delay_days"`
}

// RecordsPageResponse is one pagination window over the raw records.
type RecordsPageResponse struct {
	Total int64                     `json:"total"`
	Skip  int                       `json:"skip"`
	Limit int                       `json:"limit"`
	Data  []FinancialRecordResponse `json:"data"`
}

// ToFinancialRecordResponse converts a domain.FinancialRecord to its DTO.
func ToFinancialRecordResponse(r *domain.FinancialRecord) FinancialRecordResponse {
	return FinancialRecordResponse{
		ID:               r.RecordID,
		AccountID:        r.AccountID,
		Date:             r.Date.Format(time.DateOnly),
		Revenue:          r.Revenue,
		Expense:          r.Expense,
		Balance:          r.Balance,
		TransactionCount: r.TransactionCount,
		OverdueAmount:    r.OverdueAmount,
		PaymentDelayDays: r.PaymentDelayDays,
	}
}

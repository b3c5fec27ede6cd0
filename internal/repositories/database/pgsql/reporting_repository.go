package pgsql

import (
	"context"
	"fmt"

	"github.com/Ommishra2/Dataintellect/internal/core/domain"
	portsrepo "github.com/Ommishra2/Dataintellect/internal/core/ports/repositories"
	"github.com/Ommishra2/Dataintellect/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetSummaryTotals returns store-wide sums of revenue, expense and balance.
func (r *reportingRepository) GetSummaryTotals(ctx context.Context) (*domain.SummaryTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(revenue), 0) AS total_revenue,
			COALESCE(SUM(expense), 0) AS total_expense,
			COALESCE(SUM(balance), 0) AS total_balance
		FROM financial_records;
	`
	var totals domain.SummaryTotals
	err := r.Pool.QueryRow(ctx, query).Scan(
		&totals.TotalRevenue,
		&totals.TotalExpense,
		&totals.TotalBalance,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying summary totals: %w", err)
	}
	return &totals, nil
}

// GetMonthlyTrends returns per-month sums of revenue and expense over the raw
// records, keyed by the recorded month label and ordered ascending.
func (r *reportingRepository) GetMonthlyTrends(ctx context.Context) ([]domain.MonthlyTrendPoint, error) {
	query := `
		SELECT
			to_char(date, 'YYYY-MM') AS month,
			SUM(revenue) AS revenue,
			SUM(expense) AS expense
		FROM financial_records
		GROUP BY month
		ORDER BY month ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly trends: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlyTrendPoint{}
	for rows.Next() {
		var point domain.MonthlyTrendPoint
		if err := rows.Scan(&point.Month, &point.Revenue, &point.Expense); err != nil {
			return nil, fmt.Errorf("error scanning trend row: %w", err)
		}
		result = append(result, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trend rows: %w", err)
	}

	return result, nil
}

// FindRecords returns one pagination window of raw records plus the total row
// count independent of the window.
func (r *reportingRepository) FindRecords(ctx context.Context, skip, limit int) (*domain.RecordPage, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 50
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM financial_records;`).Scan(&total); err != nil {
		return nil, fmt.Errorf("error counting financial records: %w", err)
	}

	query := `
        SELECT record_id, account_id, date, revenue, expense, balance,
               transaction_count, overdue_amount, payment_delay_days, created_at
        FROM financial_records
        ORDER BY record_id ASC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("error querying financial records: %w", err)
	}
	defer rows.Close()

	records := []domain.FinancialRecord{}
	for rows.Next() {
		var m models.FinancialRecord
		err := rows.Scan(
			&m.RecordID,
			&m.AccountID,
			&m.Date,
			&m.Revenue,
			&m.Expense,
			&m.Balance,
			&m.TransactionCount,
			&m.OverdueAmount,
			&m.PaymentDelayDays,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning financial record row: %w", err)
		}
		records = append(records, domain.FinancialRecord{
			RecordID:         m.RecordID,
			AccountID:        m.AccountID,
			Date:             m.Date,
			Revenue:          m.Revenue,
			Expense:          m.Expense,
			Balance:          m.Balance,
			TransactionCount: m.TransactionCount,
			OverdueAmount:    m.OverdueAmount,
			PaymentDelayDays: m.PaymentDelayDays,
			CreatedAt:        m.CreatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating financial record rows: %w", err)
	}

	return &domain.RecordPage{Total: total, Records: records}, nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/Ommishra2/Dataintellect/internal/apperrors"
	"github.com/Ommishra2/Dataintellect/internal/core/domain"
	portsrepo "github.com/Ommishra2/Dataintellect/internal/core/ports/repositories"
	"github.com/Ommishra2/Dataintellect/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFinancialRepository struct {
	BaseRepository
}

func newPgxFinancialRepository(db *pgxpool.Pool) portsrepo.FinancialRepositoryFacade {
	return &PgxFinancialRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxFinancialRepository implements portsrepo.FinancialRepositoryFacade
var _ portsrepo.FinancialRepositoryFacade = (*PgxFinancialRepository)(nil)

func toModelRecord(d domain.FinancialRecord) models.FinancialRecord {
	return models.FinancialRecord{
		RecordID:         d.RecordID,
		AccountID:        d.AccountID,
		Date:             d.Date,
		Revenue:          d.Revenue,
		Expense:          d.Expense,
		Balance:          d.Balance,
		TransactionCount: d.TransactionCount,
		OverdueAmount:    d.OverdueAmount,
		PaymentDelayDays: d.PaymentDelayDays,
		CreatedAt:        d.CreatedAt,
	}
}

func toModelAggregate(d domain.FinancialAggregate) models.FinancialAggregate {
	return models.FinancialAggregate{
		AggregateID:        d.AggregateID,
		AccountID:          d.AccountID,
		Month:              d.Month,
		AvgRevenue:         d.AvgRevenue,
		AvgExpense:         d.AvgExpense,
		Profit:             d.Profit,
		ExpenseRatio:       d.ExpenseRatio,
		CashflowVolatility: d.CashflowVolatility,
		CreatedAt:          d.CreatedAt,
	}
}

// SaveUploadBatch inserts all raw records and all aggregates of one upload in a
// single transaction. Raw records go through CopyFrom, aggregates through a
// batched insert. Any failure rolls back the entire batch.
func (r *PgxFinancialRepository) SaveUploadBatch(ctx context.Context, records []domain.FinancialRecord, aggregates []domain.FinancialAggregate) (int64, int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("%v: %w", err, apperrors.ErrPersistence)
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	recordColumns := []string{
		"account_id", "date", "revenue", "expense", "balance",
		"transaction_count", "overdue_amount", "payment_delay_days", "created_at",
	}
	recordCount, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"financial_records"},
		recordColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			m := toModelRecord(records[i])
			return []any{
				m.AccountID, m.Date, m.Revenue, m.Expense, m.Balance,
				m.TransactionCount, m.OverdueAmount, m.PaymentDelayDays, m.CreatedAt,
			}, nil
		}),
	)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to copy financial records: %v: %w", err, apperrors.ErrPersistence)
	}

	insertAggregate := `
        INSERT INTO financial_aggregates
            (account_id, month, avg_revenue, avg_expense, profit, expense_ratio, cashflow_volatility, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	batch := &pgx.Batch{}
	for _, aggregate := range aggregates {
		m := toModelAggregate(aggregate)
		batch.Queue(insertAggregate,
			m.AccountID, m.Month, m.AvgRevenue, m.AvgExpense,
			m.Profit, m.ExpenseRatio, m.CashflowVolatility, m.CreatedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, 0, fmt.Errorf("failed to insert financial aggregates: %v: %w", err, apperrors.ErrPersistence)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, fmt.Errorf("%v: %w", err, apperrors.ErrPersistence)
	}

	return recordCount, int64(len(aggregates)), nil
}

// ClearFinancialRecords truncates all raw financial records. Aggregates are
// left in place; they are derived snapshots, not views.
func (r *PgxFinancialRepository) ClearFinancialRecords(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `TRUNCATE TABLE financial_records;`); err != nil {
		return fmt.Errorf("failed to truncate financial_records: %v: %w", err, apperrors.ErrPersistence)
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/Ommishra2/Dataintellect/internal/core/domain"
)

// FinancialWriter defines write operations for raw records and aggregates.
type FinancialWriter interface {
	// SaveUploadBatch inserts all raw records and all aggregates of one upload
	// within a single transaction. On any failure nothing is persisted.
	// Returns the counts of records and aggregates written.
	SaveUploadBatch(ctx context.Context, records []domain.FinancialRecord, aggregates []domain.FinancialAggregate) (int64, int64, error)

	// ClearFinancialRecords truncates all raw financial records.
	ClearFinancialRecords(ctx context.Context) error
}

// FinancialRepositoryFacade combines all financial data repository interfaces
type FinancialRepositoryFacade interface {
	FinancialWriter
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ommishra2/Dataintellect/internal/core/domain"
	portsrepo "github.com/Ommishra2/Dataintellect/internal/core/ports/repositories"
	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/dto"
)

// ingestionService implements the upload-and-aggregate pipeline: parse the CSV,
// roll up per (account, month) metrics, and persist both in one transaction.
type ingestionService struct {
	BaseService
	financialRepo portsrepo.FinancialRepositoryFacade
}

// NewIngestionService creates a new ingestion service.
func NewIngestionService(repo portsrepo.FinancialRepositoryFacade) portssvc.IngestionSvcFacade {
	return &ingestionService{financialRepo: repo}
}

var _ portssvc.IngestionSvcFacade = (*ingestionService)(nil)

func (s *ingestionService) IngestFinancialCSV(ctx context.Context, content []byte) (*dto.UploadResult, error) {
	rows, err := ParseFinancialCSV(content)
	if err != nil {
		s.LogWarn(ctx, "Upload rejected by parser", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	aggregates := AggregateByAccountMonth(rows, now)

	records := make([]domain.FinancialRecord, len(rows))
	for i, row := range rows {
		records[i] = domain.FinancialRecord{
			AccountID:        row.AccountID,
			Date:             row.Date,
			Revenue:          row.Revenue,
			Expense:          row.Expense,
			Balance:          row.Balance,
			TransactionCount: row.TransactionCount,
			OverdueAmount:    row.OverdueAmount,
			PaymentDelayDays: row.PaymentDelayDays,
			CreatedAt:        now,
		}
	}

	recordCount, aggregateCount, err := s.financialRepo.SaveUploadBatch(ctx, records, aggregates)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist upload batch",
			slog.Int("records", len(records)),
			slog.Int("aggregates", len(aggregates)))
		return nil, fmt.Errorf("failed to persist upload batch: %w", err)
	}

	s.LogInfo(ctx, "Upload ingested",
		slog.Int64("records_inserted", recordCount),
		slog.Int64("aggregates_generated", aggregateCount))

	return &dto.UploadResult{
		RecordsInserted:     recordCount,
		AggregatesGenerated: aggregateCount,
	}, nil
}

func (s *ingestionService) ClearFinancialRecords(ctx context.Context) error {
	if err := s.financialRepo.ClearFinancialRecords(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear financial records")
		return fmt.Errorf("failed to clear financial records: %w", err)
	}
	s.LogInfo(ctx, "All financial records cleared")
	return nil
}

package services

import (
	"context"

	"github.com/Ommishra2/Dataintellect/internal/dto"
)

// IngestionSvcFacade runs the upload-and-aggregate pipeline and owns the raw
// record lifecycle.
type IngestionSvcFacade interface {
	// IngestFinancialCSV validates and normalizes the uploaded CSV content,
	// computes per (account, month) aggregates, and persists both atomically.
	IngestFinancialCSV(ctx context.Context, content []byte) (*dto.UploadResult, error)

	// ClearFinancialRecords removes all raw financial records.
	ClearFinancialRecords(ctx context.Context) error
}

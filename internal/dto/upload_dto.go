package dto

// UploadResult reports what a successful upload persisted.
type UploadResult struct {
	RecordsInserted     int64
	AggregatesGenerated int64
}

// UploadResponse is the payload returned for a successful upload.
type UploadResponse struct {
	Message             string `json:"message"`
	RecordsInserted     int64  `json:"records_inserted"`
	AggregatesGenerated int64  `json:"aggregates_generated"`
}

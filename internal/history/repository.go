package history

import "context"

// Repository defines the data-access contract for analysis records.
type Repository interface {
	Insert(ctx context.Context, record *AnalysisRecord) error
	// ListByUser returns at most limit records, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]AnalysisRecord, error)
}

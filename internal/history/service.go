package history

import "context"

// historyLimit caps how many records a single listing returns.
const historyLimit = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends one analysis record. Records are never updated or
// deleted afterwards.
func (s *Service) Record(ctx context.Context, record *AnalysisRecord) error {
	return s.repo.Insert(ctx, record)
}

// List returns the user's most recent analyses, newest first, capped at
// 50. A user with no history gets an empty list, not an error.
func (s *Service) List(ctx context.Context, userID string) ([]AnalysisRecord, error) {
	records, err := s.repo.ListByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []AnalysisRecord{}
	}
	return records, nil
}

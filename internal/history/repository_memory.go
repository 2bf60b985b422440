package history

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository backs the tests.
type InMemoryRepository struct {
	mu      sync.Mutex
	records []AnalysisRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Insert(_ context.Context, record *AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, *record)
	return nil
}

func (r *InMemoryRepository) ListByUser(_ context.Context, userID string, limit int) ([]AnalysisRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []AnalysisRecord{}
	for _, rec := range r.records {
		if rec.UserID == userID {
			matched = append(matched, rec)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AnalyzedAt.After(matched[j].AnalyzedAt)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

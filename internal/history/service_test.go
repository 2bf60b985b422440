package history

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestListCapsAtFiftyNewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		rec := &AnalysisRecord{
			AnalysisID: fmt.Sprintf("analysis-%02d", i),
			UserID:     "user-1",
			FoodName:   "Meal",
			SafeToEat:  true,
			AnalyzedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := service.Record(ctx, rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := service.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 50 {
		t.Fatalf("expected exactly 50 records, got %d", len(records))
	}

	// newest first: record 59 leads, and timestamps never increase
	if records[0].AnalysisID != "analysis-59" {
		t.Fatalf("expected newest record first, got %s", records[0].AnalysisID)
	}
	for i := 1; i < len(records); i++ {
		if records[i].AnalyzedAt.After(records[i-1].AnalyzedAt) {
			t.Fatalf("records out of order at index %d", i)
		}
	}
}

func TestListEmptyHistoryIsNotAnError(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	records, err := service.List(context.Background(), "user-with-no-history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestListScopedToUser(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	_ = service.Record(ctx, &AnalysisRecord{
		AnalysisID: "a1", UserID: "user-1", AnalyzedAt: time.Now().UTC(),
	})
	_ = service.Record(ctx, &AnalysisRecord{
		AnalysisID: "b1", UserID: "user-2", AnalyzedAt: time.Now().UTC(),
	})

	records, err := service.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].AnalysisID != "a1" {
		t.Fatalf("expected only user-1 records, got %v", records)
	}
}

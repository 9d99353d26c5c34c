package memory

import (
	"context"
	"errors"
	"testing"

	"healthdash/internal/domain"
)

func TestRecordRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Empty store
	records, err := db.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", records)
	}

	// Append two on the same day
	first := domain.HealthRecord{Date: "2026-02-08", WeightKg: 70, Score: 95}
	second := domain.HealthRecord{Date: "2026-02-08", WeightKg: 69.5, Score: 100}
	if err := db.Append(ctx, first); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := db.Append(ctx, second); err != nil {
		t.Fatalf("Append: %v", err)
	}

	records, err = db.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1] != second {
		t.Errorf("expected latest to be the second save, got %+v", records[1])
	}

	// Returned slice is a copy
	records[0].Score = 0
	again, _ := db.LoadAll(ctx)
	if again[0].Score != 95 {
		t.Error("LoadAll leaked internal state")
	}
}

func TestFailAppends(t *testing.T) {
	db := New()
	ctx := context.Background()
	_ = db.Append(ctx, domain.HealthRecord{Date: "2026-02-07"})

	db.FailAppends(errors.New("disk full"))
	err := db.Append(ctx, domain.HealthRecord{Date: "2026-02-08"})
	if !errors.Is(err, domain.ErrStoreWrite) {
		t.Fatalf("expected ErrStoreWrite, got %v", err)
	}
	if db.Len() != 1 {
		t.Fatalf("failed append must not store, have %d", db.Len())
	}

	db.FailAppends(nil)
	if err := db.Append(ctx, domain.HealthRecord{Date: "2026-02-08"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if db.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", db.Len())
	}
}

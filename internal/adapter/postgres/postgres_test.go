package postgres

import (
	"context"
	"os"
	"testing"

	"healthdash/internal/domain"
)

// Runs only when TEST_DATABASE_URL points at a disposable database.
func TestRecordRepository(t *testing.T) {
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := Open(connStr)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if _, err := db.sql.ExecContext(ctx, "TRUNCATE health_records;"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	records, err := db.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty store, got %d", len(records))
	}

	want := domain.HealthRecord{
		Date: "2026-02-08", HeightCm: 175, WeightKg: 70, BMI: 22.86, BMR: 1648.8,
		FastingGlucoseMgdl: 95, SystolicBP: 115, DiastolicBP: 75, Steps: 5000, WaterCups: 5, Score: 95,
	}
	if err := db.Append(ctx, domain.HealthRecord{Date: "2026-02-09", HeightCm: 175, WeightKg: 71}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := db.Append(ctx, want); err != nil {
		t.Fatalf("Append: %v", err)
	}

	records, err = db.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[len(records)-1]; got != want {
		t.Fatalf("round-trip mismatch: got %+v want %+v", got, want)
	}
}

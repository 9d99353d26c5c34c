package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"healthdash/internal/app"
	"healthdash/internal/domain"
	"healthdash/internal/logging"
)

type mockRecordRepo struct {
	loadFn   func(ctx context.Context) ([]domain.HealthRecord, error)
	appendFn func(ctx context.Context, r domain.HealthRecord) error
}

func (m *mockRecordRepo) LoadAll(ctx context.Context) ([]domain.HealthRecord, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return []domain.HealthRecord{}, nil
}

func (m *mockRecordRepo) Append(ctx context.Context, r domain.HealthRecord) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, r)
	}
	return nil
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
}

func sampleInput() domain.RawInput {
	return domain.RawInput{
		Gender: domain.Male, Age: 30, HeightCm: 175, WeightKg: 70,
		FastingGlucoseMgdl: 95, SystolicBP: 115, DiastolicBP: 75, Steps: 5000, WaterCups: 5,
	}
}

func TestRecord_Success(t *testing.T) {
	var saved []domain.HealthRecord
	repo := &mockRecordRepo{
		appendFn: func(_ context.Context, r domain.HealthRecord) error {
			saved = append(saved, r)
			return nil
		},
	}
	svc := app.NewRecordService(repo, logging.Discard()).WithClock(fixedClock)

	got, err := svc.Record(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date != "2026-03-01" {
		t.Errorf("expected date 2026-03-01, got %s", got.Date)
	}
	if got.BMI != 22.86 || got.BMR != 1648.8 || got.Score != 95 {
		t.Errorf("unexpected metrics: %+v", got)
	}
	if len(saved) != 1 || saved[0] != *got {
		t.Fatalf("expected the returned record to be appended, saved=%v", saved)
	}
}

func TestRecord_Validation(t *testing.T) {
	appended := false
	repo := &mockRecordRepo{
		appendFn: func(_ context.Context, _ domain.HealthRecord) error {
			appended = true
			return nil
		},
	}
	svc := app.NewRecordService(repo, logging.Discard())

	tests := []struct {
		name   string
		mutate func(*domain.RawInput)
		want   error
	}{
		{"age out of range", func(r *domain.RawInput) { r.Age = 0 }, domain.ErrInputRange},
		{"zero height", func(r *domain.RawInput) { r.HeightCm = 0 }, domain.ErrInputRange},
		{"too much water", func(r *domain.RawInput) { r.WaterCups = 25 }, domain.ErrInputRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := sampleInput()
			tc.mutate(&raw)
			_, err := svc.Record(context.Background(), raw)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if appended {
		t.Fatal("invalid input must not reach the store")
	}
}

func TestRecord_RepoError(t *testing.T) {
	repo := &mockRecordRepo{
		appendFn: func(_ context.Context, _ domain.HealthRecord) error {
			return &domain.StoreWriteError{Path: "x.csv", Op: "rename", Err: errors.New("disk full")}
		},
	}
	svc := app.NewRecordService(repo, logging.Discard())
	_, err := svc.Record(context.Background(), sampleInput())
	if !errors.Is(err, domain.ErrStoreWrite) {
		t.Fatalf("expected ErrStoreWrite, got %v", err)
	}
}

func TestRecord_SerializesAppends(t *testing.T) {
	var (
		mu       sync.Mutex
		inFlight int
		overlap  bool
	)
	repo := &mockRecordRepo{
		appendFn: func(_ context.Context, _ domain.HealthRecord) error {
			mu.Lock()
			inFlight++
			if inFlight > 1 {
				overlap = true
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		},
	}
	svc := app.NewRecordService(repo, logging.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Record(context.Background(), sampleInput())
		}()
	}
	wg.Wait()
	if overlap {
		t.Fatal("appends overlapped")
	}
}

func TestPreview_DoesNotPersist(t *testing.T) {
	repo := &mockRecordRepo{
		appendFn: func(_ context.Context, _ domain.HealthRecord) error {
			t.Fatal("Preview must not append")
			return nil
		},
	}
	svc := app.NewRecordService(repo, logging.Discard())
	m, err := svc.Preview(sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Score != 95 {
		t.Errorf("expected score 95, got %d", m.Score)
	}
}

func TestHistory(t *testing.T) {
	stored := []domain.HealthRecord{
		{Date: "2026-03-01", Score: 60},
		{Date: "2026-03-03", Score: 70},
		{Date: "2026-03-01", Score: 80},
		{Date: "2026-03-02", Score: 90},
	}
	repo := &mockRecordRepo{
		loadFn: func(_ context.Context) ([]domain.HealthRecord, error) { return stored, nil },
	}
	svc := app.NewRecordService(repo, logging.Discard())

	inserted, err := svc.History(context.Background(), app.OrderInserted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inserted) != 4 || inserted[3].Score != 90 {
		t.Fatalf("expected store order, got %v", inserted)
	}

	desc, err := svc.History(context.Background(), app.OrderDateDesc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantScores := []int{70, 90, 80, 60}
	for i, r := range desc {
		if r.Score != wantScores[i] {
			t.Fatalf("desc order: got %v", desc)
		}
	}
	if stored[0].Score != 60 {
		t.Fatal("History must not reorder the store's slice")
	}
}

func TestHistory_Error(t *testing.T) {
	repo := &mockRecordRepo{
		loadFn: func(_ context.Context) ([]domain.HealthRecord, error) {
			return nil, &domain.StoreReadError{Path: "x.csv", Line: 3, Err: errors.New("bad")}
		},
	}
	svc := app.NewRecordService(repo, logging.Discard())
	if _, err := svc.History(context.Background(), app.OrderInserted); !errors.Is(err, domain.ErrStoreRead) {
		t.Fatalf("expected ErrStoreRead, got %v", err)
	}
}

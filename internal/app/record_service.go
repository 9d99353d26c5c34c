// Package app holds the use cases that sit between the presentation adapters
// and the record store.
package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"healthdash/internal/domain"
	"healthdash/internal/logging"
)

// Order selects how History sorts records.
type Order string

const (
	// OrderInserted is store order, oldest save first.
	OrderInserted Order = "inserted"
	// OrderDateDesc is newest date first; same-day saves keep the later one first.
	OrderDateDesc Order = "desc"
)

// RecordService encapsulates the save-a-day use case.
type RecordService struct {
	repo domain.RecordRepository
	log  logging.Logger
	now  func() time.Time

	// mu serializes Record so concurrent requests cannot interleave the
	// store's read-modify-write.
	mu sync.Mutex
}

// NewRecordService creates a RecordService backed by the given repository.
func NewRecordService(repo domain.RecordRepository, log logging.Logger) *RecordService {
	return &RecordService{repo: repo, log: log, now: time.Now}
}

// WithClock replaces the clock used to date new records.
func (s *RecordService) WithClock(now func() time.Time) *RecordService {
	s.now = now
	return s
}

// Preview validates raw and computes its metrics without saving anything.
func (s *RecordService) Preview(raw domain.RawInput) (domain.Metrics, error) {
	if err := raw.Validate(); err != nil {
		return domain.Metrics{}, err
	}
	return domain.Compute(raw)
}

// Record validates raw, computes its metrics and appends the resulting record
// dated today in local time.
func (s *RecordService) Record(ctx context.Context, raw domain.RawInput) (*domain.HealthRecord, error) {
	m, err := s.Preview(raw)
	if err != nil {
		return nil, err
	}
	today := s.now().In(time.Local).Format(domain.DateLayout)
	rec := domain.NewRecord(today, raw, m)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Append(ctx, rec); err != nil {
		s.log.Error(ctx, "record save failed", "date", today, "error", err)
		return nil, err
	}
	s.log.Info(ctx, "record saved", "date", rec.Date, "bmi", rec.BMI, "bmr", rec.BMR, "score", rec.Score)
	return &rec, nil
}

// History returns every saved record in the requested order.
func (s *RecordService) History(ctx context.Context, order Order) ([]domain.HealthRecord, error) {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if order == OrderDateDesc {
		return SortByDateDesc(records), nil
	}
	return records, nil
}

// SortByDateDesc returns a copy of records ordered newest date first. Records
// sharing a date appear latest-saved first.
func SortByDateDesc(records []domain.HealthRecord) []domain.HealthRecord {
	out := make([]domain.HealthRecord, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	// YYYY-MM-DD sorts lexically.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"

	"healthdash/internal/domain"
)

// DB implements an in-memory record log.
type DB struct {
	mu      sync.Mutex
	records []domain.HealthRecord

	// failAppend, when set, is returned by Append without storing anything.
	failAppend error
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.RecordRepository = (*DB)(nil)

// LoadAll returns a copy of every record in insertion order.
func (db *DB) LoadAll(ctx context.Context) ([]domain.HealthRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.HealthRecord, len(db.records))
	copy(result, db.records)
	return result, nil
}

// Append adds a record to the end of the log.
func (db *DB) Append(ctx context.Context, r domain.HealthRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.failAppend != nil {
		return &domain.StoreWriteError{Path: "memory", Op: "append", Err: db.failAppend}
	}
	db.records = append(db.records, r)
	return nil
}

// FailAppends makes every later Append fail with err; nil restores normal
// behaviour.
func (db *DB) FailAppends(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.failAppend = err
}

// Len returns the number of stored records.
func (db *DB) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.records)
}

// Package sqlite implements domain.RecordRepository on an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"healthdash/internal/domain"
)

// DB is a SQLite-backed record log.
type DB struct {
	sql  *sql.DB
	path string
}

var _ domain.RecordRepository = (*DB)(nil)

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(ctx context.Context, path string) (*DB, error) {
	s, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite works best with a single connection.
	s.SetMaxOpenConns(1)
	s.SetMaxIdleConns(1)

	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := runMigrations(ctx, s); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &DB{sql: s, path: path}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Append inserts r after every existing record.
func (d *DB) Append(ctx context.Context, r domain.HealthRecord) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO health_records (day, height_cm, weight_kg, bmi, bmr, fasting_glucose_mgdl,
			systolic_bp, diastolic_bp, steps, water_cups, score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Date, r.HeightCm, r.WeightKg, r.BMI, r.BMR, r.FastingGlucoseMgdl,
		r.SystolicBP, r.DiastolicBP, r.Steps, r.WaterCups, r.Score,
	)
	if err != nil {
		return &domain.StoreWriteError{Path: d.path, Op: "insert", Err: err}
	}
	return nil
}

// LoadAll returns every record in insertion order.
func (d *DB) LoadAll(ctx context.Context) ([]domain.HealthRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT day, height_cm, weight_kg, bmi, bmr, fasting_glucose_mgdl,
			systolic_bp, diastolic_bp, steps, water_cups, score
		FROM health_records ORDER BY id`)
	if err != nil {
		return nil, &domain.StoreReadError{Path: d.path, Err: err}
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.HealthRecord{}
	for rows.Next() {
		var r domain.HealthRecord
		if err := rows.Scan(&r.Date, &r.HeightCm, &r.WeightKg, &r.BMI, &r.BMR, &r.FastingGlucoseMgdl,
			&r.SystolicBP, &r.DiastolicBP, &r.Steps, &r.WaterCups, &r.Score); err != nil {
			return nil, &domain.StoreReadError{Path: d.path, Line: len(out) + 1, Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreReadError{Path: d.path, Err: err}
	}
	return out, nil
}

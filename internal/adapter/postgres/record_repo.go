package postgres

import (
	"context"

	"healthdash/internal/domain"
)

var _ domain.RecordRepository = (*DB)(nil)

// Append inserts a record; the serial id fixes its position.
func (d *DB) Append(ctx context.Context, r domain.HealthRecord) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO health_records(day, height_cm, weight_kg, bmi, bmr, fasting_glucose_mgdl,
			systolic_bp, diastolic_bp, steps, water_cups, score)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		r.Date, r.HeightCm, r.WeightKg, r.BMI, r.BMR, r.FastingGlucoseMgdl,
		r.SystolicBP, r.DiastolicBP, r.Steps, r.WaterCups, r.Score,
	)
	if err != nil {
		return &domain.StoreWriteError{Path: "postgres:health_records", Op: "insert", Err: err}
	}
	return nil
}

// LoadAll returns every record in insertion order.
func (d *DB) LoadAll(ctx context.Context) ([]domain.HealthRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT day, height_cm, weight_kg, bmi, bmr, fasting_glucose_mgdl,
			systolic_bp, diastolic_bp, steps, water_cups, score
		FROM health_records ORDER BY id;`)
	if err != nil {
		return nil, &domain.StoreReadError{Path: "postgres:health_records", Err: err}
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.HealthRecord{}
	for rows.Next() {
		var r domain.HealthRecord
		if err := rows.Scan(&r.Date, &r.HeightCm, &r.WeightKg, &r.BMI, &r.BMR, &r.FastingGlucoseMgdl,
			&r.SystolicBP, &r.DiastolicBP, &r.Steps, &r.WaterCups, &r.Score); err != nil {
			return nil, &domain.StoreReadError{Path: "postgres:health_records", Line: len(out) + 1, Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreReadError{Path: "postgres:health_records", Err: err}
	}
	return out, nil
}

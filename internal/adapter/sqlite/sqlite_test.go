package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthdash/internal/domain"
)

func openTestDB(t *testing.T, path string) *DB {
	t.Helper()
	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "health.db"))

	version, err := schemaVersion(context.Background(), db.sql)
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].Version, version)
}

func TestRecordRepository(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "health.db"))
	ctx := context.Background()

	records, err := db.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)

	want := []domain.HealthRecord{
		{Date: "2026-02-08", HeightCm: 175, WeightKg: 70, BMI: 22.86, BMR: 1648.8,
			FastingGlucoseMgdl: 95, SystolicBP: 115, DiastolicBP: 75, Steps: 5000, WaterCups: 5, Score: 95},
		{Date: "2026-02-07", HeightCm: 175, WeightKg: 71.25, BMI: 23.27, BMR: 1681.3,
			FastingGlucoseMgdl: 105, SystolicBP: 125, DiastolicBP: 85, Steps: 4000, WaterCups: 3, Score: 55},
	}
	for _, r := range want {
		require.NoError(t, db.Append(ctx, r))
	}

	got, err := db.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.db")
	ctx := context.Background()

	first, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Append(ctx, domain.HealthRecord{Date: "2026-02-08", HeightCm: 170, WeightKg: 65, Score: 100}))
	require.NoError(t, first.Close())

	second := openTestDB(t, path)
	got, err := second.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Score)
}

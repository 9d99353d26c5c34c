package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthdash/internal/app"
	"healthdash/internal/domain"
)

func init() {
	color.NoColor = true
}

func sampleRecords() []domain.HealthRecord {
	return []domain.HealthRecord{
		{Date: "2026-02-07", HeightCm: 175, WeightKg: 71, BMI: 23.18, BMR: 1658.8, FastingGlucoseMgdl: 105, SystolicBP: 125, DiastolicBP: 85, Steps: 4000, WaterCups: 3, Score: 55},
		{Date: "2026-02-08", HeightCm: 175, WeightKg: 70, BMI: 22.86, BMR: 1648.8, FastingGlucoseMgdl: 95, SystolicBP: 115, DiastolicBP: 75, Steps: 12500, WaterCups: 5, Score: 95},
	}
}

func TestRenderDashboard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, app.BuildDashboard(sampleRecords(), "kg")))

	out := buf.String()
	assert.Contains(t, out, "2026-02-08")
	assert.Contains(t, out, "95 (+25)")
	assert.Contains(t, out, "22.86 normal")
	assert.Contains(t, out, "1648.8 kcal")
	assert.Contains(t, out, "12,500 (+2,500 vs goal 10,000)")
	assert.Contains(t, out, domain.TierExcellent.Advice())
	assert.Contains(t, out, "2.1 L (10 cups)")
	assert.Contains(t, out, "5/10 cups [#####.....] 1,000 mL")
}

func TestRenderDashboard_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, app.BuildDashboard(nil, "kg")))
	assert.Contains(t, buf.String(), "No records yet")
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, app.SortByDateDesc(sampleRecords())))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "DATE"))
	assert.True(t, strings.HasPrefix(lines[1], "2026-02-08"))
	assert.Contains(t, lines[1], "12,500")
	assert.Contains(t, lines[2], "125/85")
}

func TestRenderHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, nil))
	assert.Equal(t, "No records yet.\n", buf.String())
}

func TestRenderMetrics(t *testing.T) {
	var buf bytes.Buffer
	r := sampleRecords()[1]
	require.NoError(t, RenderMetrics(&buf, &r))
	assert.Equal(t, "saved 2026-02-08  BMI 22.86  BMR 1648.8 kcal  score 95\n", buf.String())
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[..........]", progressBar(0, 10))
	assert.Equal(t, "[##########]", progressBar(1, 10))
	assert.Equal(t, "[###.......]", progressBar(0.3, 10))
}

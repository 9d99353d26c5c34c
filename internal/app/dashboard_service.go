package app

import (
	"context"
	"errors"
	"math"

	"healthdash/internal/domain"
)

// DashboardService builds the dashboard view from the saved history.
type DashboardService struct {
	repo domain.RecordRepository
}

// NewDashboardService creates a DashboardService backed by the given repository.
func NewDashboardService(repo domain.RecordRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Dashboard is everything the main page renders.
type Dashboard struct {
	Empty          bool                  `json:"empty"`
	Latest         *domain.HealthRecord  `json:"latest,omitempty"`
	Summary        *Summary              `json:"summary,omitempty"`
	Recommendation *Recommendation       `json:"recommendation,omitempty"`
	Water          *WaterAdvice          `json:"water,omitempty"`
	Trend          []TrendPoint          `json:"trend"`
	Log            []domain.HealthRecord `json:"log"`
}

// Summary holds the four headline metrics.
type Summary struct {
	Score      int     `json:"score"`
	ScoreDelta int     `json:"scoreDelta"`
	BMI        float64 `json:"bmi"`
	BMILabel   string  `json:"bmiLabel"`
	BMR        float64 `json:"bmr"`
	Steps      int     `json:"steps"`
	StepsGoal  int     `json:"stepsGoal"`
	StepsDelta int     `json:"stepsDelta"`
}

// Recommendation is the advice tier for the latest score.
type Recommendation struct {
	Tier   domain.Tier `json:"tier"`
	Advice string      `json:"advice"`
}

// WaterAdvice is the suggested daily intake and today's progress.
type WaterAdvice struct {
	RecommendedMl     float64 `json:"recommendedMl"`
	RecommendedLiters float64 `json:"recommendedLiters"`
	RecommendedCups   int     `json:"recommendedCups"`
	CupsToday         int     `json:"cupsToday"`
	MlToday           int     `json:"mlToday"`
	CupsGoal          int     `json:"cupsGoal"`
	Progress          float64 `json:"progress"`
}

// TrendPoint is one saved record on the weight/score chart.
type TrendPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
	Score  int     `json:"score"`
}

// ErrUnit rejects a weight unit other than kg or lb.
var ErrUnit = errors.New("unit must be \"kg\" or \"lb\"")

// Get loads the history and assembles the dashboard, converting trend weights
// to unit.
func (s *DashboardService) Get(ctx context.Context, unit string) (*Dashboard, error) {
	if unit != "kg" && unit != "lb" {
		return nil, ErrUnit
	}
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDashboard(records, unit), nil
}

// Trend returns the chart series for the whole history.
func (s *DashboardService) Trend(ctx context.Context, unit string) ([]TrendPoint, error) {
	if unit != "kg" && unit != "lb" {
		return nil, ErrUnit
	}
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return trend(records, unit), nil
}

// BuildDashboard assembles the dashboard from records already in store order.
func BuildDashboard(records []domain.HealthRecord, unit string) *Dashboard {
	d := &Dashboard{
		Empty: len(records) == 0,
		Trend: trend(records, unit),
		Log:   SortByDateDesc(records),
	}
	latest := domain.Latest(records)
	if latest == nil {
		return d
	}
	d.Latest = latest
	d.Summary = summarize(*latest)
	tier := domain.Recommend(latest.Score)
	d.Recommendation = &Recommendation{Tier: tier, Advice: tier.Advice()}
	d.Water = waterAdvice(*latest)
	return d
}

func summarize(r domain.HealthRecord) *Summary {
	delta := -10
	if r.Score > 70 {
		delta = r.Score - 70
	}
	return &Summary{
		Score:      r.Score,
		ScoreDelta: delta,
		BMI:        r.BMI,
		BMILabel:   domain.BMILabel(r.BMI),
		BMR:        r.BMR,
		Steps:      r.Steps,
		StepsGoal:  domain.DailyStepsGoal,
		StepsDelta: r.Steps - domain.DailyStepsGoal,
	}
}

func waterAdvice(r domain.HealthRecord) *WaterAdvice {
	ml := domain.RecommendedWaterMl(r.WeightKg)
	return &WaterAdvice{
		RecommendedMl:     ml,
		RecommendedLiters: math.Round(ml/100) / 10,
		RecommendedCups:   int(ml / domain.CupMilliliters),
		CupsToday:         r.WaterCups,
		MlToday:           domain.CupsToMilliliters(r.WaterCups),
		CupsGoal:          domain.DailyWaterCupsGoal,
		Progress:          math.Min(float64(r.WaterCups)/domain.DailyWaterCupsGoal, 1),
	}
}

func trend(records []domain.HealthRecord, unit string) []TrendPoint {
	points := make([]TrendPoint, 0, len(records))
	for _, r := range records {
		points = append(points, TrendPoint{
			Date:   r.Date,
			Weight: domain.ConvertWeight(r.WeightKg, "kg", unit),
			Unit:   unit,
			Score:  r.Score,
		})
	}
	return points
}

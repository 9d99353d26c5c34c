package domain

import "math"

// Score thresholds and deductions.
const (
	scoreBase = 100

	bmiNormalMin = 18.5
	bmiNormalMax = 23.0

	glucoseLimit      = 100
	systolicLimit     = 120
	diastolicLimit    = 80
	stepsMin          = 6000
	bmiPenalty        = 10
	glucosePenalty    = 15
	pressurePenalty   = 15
	inactivityPenalty = 5
)

// Metrics are the values derived from one RawInput.
type Metrics struct {
	BMI   float64 `json:"bmi"`
	BMR   float64 `json:"bmr"`
	Score int     `json:"score"`
}

// Compute derives BMI, BMR and the health score. It does not validate ranges
// beyond the height guard; callers reject out-of-range input first.
func Compute(raw RawInput) (Metrics, error) {
	bmi, err := bmiRatio(raw.WeightKg, raw.HeightCm)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		BMI:   round(bmi, 2),
		BMR:   BMR(raw.Gender, raw.WeightKg, raw.HeightCm, raw.Age),
		Score: Score(bmi, raw.FastingGlucoseMgdl, raw.SystolicBP, raw.DiastolicBP, raw.Steps),
	}, nil
}

// BMI returns weight / (height in metres)^2 rounded to 2 decimals.
func BMI(weightKg, heightCm float64) (float64, error) {
	v, err := bmiRatio(weightKg, heightCm)
	if err != nil {
		return 0, err
	}
	return round(v, 2), nil
}

func bmiRatio(weightKg, heightCm float64) (float64, error) {
	if !(heightCm > 0) || math.IsInf(heightCm, 0) {
		return 0, ErrDivision
	}
	m := heightCm / 100
	v := weightKg / (m * m)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrDivision
	}
	return v, nil
}

// BMR returns the Mifflin-St Jeor basal metabolic rate rounded to 1 decimal.
// Any gender other than Male takes the female constant.
func BMR(g Gender, weightKg, heightCm float64, age int) float64 {
	v := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if g == Male {
		v += 5
	} else {
		v -= 161
	}
	return round(v, 1)
}

// Score starts at 100 and applies each deduction independently. The result is
// not clamped.
func Score(bmi float64, glucose, systolic, diastolic, steps int) int {
	s := scoreBase
	if !BMINormal(bmi) {
		s -= bmiPenalty
	}
	if glucose >= glucoseLimit {
		s -= glucosePenalty
	}
	if systolic >= systolicLimit || diastolic >= diastolicLimit {
		s -= pressurePenalty
	}
	if steps < stepsMin {
		s -= inactivityPenalty
	}
	return s
}

// BMINormal reports whether bmi lies in the closed interval [18.5, 23.0].
func BMINormal(bmi float64) bool {
	return bmi >= bmiNormalMin && bmi <= bmiNormalMax
}

// NewRecord assembles the persisted record for date from raw and its metrics.
func NewRecord(date string, raw RawInput, m Metrics) HealthRecord {
	return HealthRecord{
		Date:               date,
		HeightCm:           raw.HeightCm,
		WeightKg:           raw.WeightKg,
		BMI:                m.BMI,
		BMR:                m.BMR,
		FastingGlucoseMgdl: raw.FastingGlucoseMgdl,
		SystolicBP:         raw.SystolicBP,
		DiastolicBP:        raw.DiastolicBP,
		Steps:              raw.Steps,
		WaterCups:          raw.WaterCups,
		Score:              m.Score,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

package domain

import "fmt"

// Input bounds.
const (
	MinAge       = 1
	MaxAge       = 120
	MaxWaterCups = 20
)

// Validate checks raw against the bounds the entry form enforces. Compute
// does not call it.
func (raw RawInput) Validate() error {
	if raw.Gender != Male && raw.Gender != Female {
		return fmt.Errorf("%w: gender must be %q or %q", ErrInputRange, Male, Female)
	}
	if raw.Age < MinAge || raw.Age > MaxAge {
		return &InputRangeError{Field: "age", Value: float64(raw.Age), Min: MinAge, Max: MaxAge}
	}
	if !(raw.HeightCm > 0) {
		return &InputRangeError{Field: "height_cm", Value: raw.HeightCm, MinExclusive: true}
	}
	if !(raw.WeightKg > 0) {
		return &InputRangeError{Field: "weight_kg", Value: raw.WeightKg, MinExclusive: true}
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"fasting_glucose_mgdl", raw.FastingGlucoseMgdl},
		{"systolic_bp", raw.SystolicBP},
		{"diastolic_bp", raw.DiastolicBP},
		{"steps", raw.Steps},
	} {
		if f.v < 0 {
			return &InputRangeError{Field: f.name, Value: float64(f.v), Min: 0}
		}
	}
	if raw.WaterCups < 0 || raw.WaterCups > MaxWaterCups {
		return &InputRangeError{Field: "water_cups", Value: float64(raw.WaterCups), Min: 0, Max: MaxWaterCups}
	}
	return nil
}

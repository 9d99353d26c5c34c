package domain

const kgToLb = 2.2046226218

// Daily goals and cup size.
const (
	CupMilliliters     = 200
	WaterMlPerKg       = 30
	DailyWaterCupsGoal = 10
	DailyStepsGoal     = 10000
)

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == "kg" && to == "lb" {
		return v * kgToLb
	}
	if from == "lb" && to == "kg" {
		return v / kgToLb
	}
	return v
}

// CupsToMilliliters converts a cup count to millilitres.
func CupsToMilliliters(cups int) int {
	return cups * CupMilliliters
}

// RecommendedWaterMl is the daily intake suggested for a body weight.
func RecommendedWaterMl(weightKg float64) float64 {
	return weightKg * WaterMlPerKg
}

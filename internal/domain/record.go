// Package domain contains the core health entities, the metrics engine and
// the persistence port.
package domain

import (
	"context"
	"fmt"
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender accepts "male"/"female" and the single-letter forms.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "male", "m", "M":
		return Male, nil
	case "female", "f", "F":
		return Female, nil
	}
	return "", fmt.Errorf("gender must be \"male\" or \"female\", got %q", s)
}

// DateLayout is the calendar-day format used for HealthRecord.Date.
const DateLayout = "2006-01-02"

// RawInput is one day's readings as entered by the user. It is never persisted.
type RawInput struct {
	Gender             Gender  `json:"gender"`
	Age                int     `json:"age"`
	HeightCm           float64 `json:"heightCm"`
	WeightKg           float64 `json:"weightKg"`
	FastingGlucoseMgdl int     `json:"fastingGlucoseMgdl"`
	SystolicBP         int     `json:"systolicBp"`
	DiastolicBP        int     `json:"diastolicBp"`
	Steps              int     `json:"steps"`
	WaterCups          int     `json:"waterCups"`
}

// HealthRecord is one saved day. Records are immutable once appended.
type HealthRecord struct {
	Date               string  `json:"date"`
	HeightCm           float64 `json:"heightCm"`
	WeightKg           float64 `json:"weightKg"`
	BMI                float64 `json:"bmi"`
	BMR                float64 `json:"bmr"`
	FastingGlucoseMgdl int     `json:"fastingGlucoseMgdl"`
	SystolicBP         int     `json:"systolicBp"`
	DiastolicBP        int     `json:"diastolicBp"`
	Steps              int     `json:"steps"`
	WaterCups          int     `json:"waterCups"`
	Score              int     `json:"score"`
}

// RecordRepository is the port for the append-only record log.
//
// LoadAll returns records in insertion order; an empty store yields an empty
// slice and no error. Append adds one record to the end.
type RecordRepository interface {
	LoadAll(ctx context.Context) ([]HealthRecord, error)
	Append(ctx context.Context, r HealthRecord) error
}

// Latest returns the last record of records, or nil when there are none.
func Latest(records []HealthRecord) *HealthRecord {
	if len(records) == 0 {
		return nil
	}
	r := records[len(records)-1]
	return &r
}

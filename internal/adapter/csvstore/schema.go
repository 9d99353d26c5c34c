package csvstore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"healthdash/internal/domain"
)

// Header is the durable column contract, in order.
var Header = []string{
	"date",
	"height_cm",
	"weight_kg",
	"bmi",
	"bmr",
	"fasting_glucose_mgdl",
	"systolic_bp",
	"diastolic_bp",
	"steps",
	"water_cups",
	"score",
}

// legacyHeader is the Korean column set used by earlier releases. Files
// carrying it are read as-is and rewritten with Header on the next append.
var legacyHeader = []string{
	"날짜", "키", "체중", "BMI", "BMR", "혈당", "수축기", "이완기", "걸음수", "물섭취", "점수",
}

const utf8BOM = "\ufeff"

var errHeader = errors.New("unexpected column set")

func checkHeader(got []string) error {
	if len(got) > 0 {
		got = append([]string{strings.TrimPrefix(got[0], utf8BOM)}, got[1:]...)
	}
	if equal(got, Header) || equal(got, legacyHeader) {
		return nil
	}
	return fmt.Errorf("%w: got %v, want %v", errHeader, got, Header)
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.TrimSpace(a[i]) != b[i] {
			return false
		}
	}
	return true
}

func encode(r domain.HealthRecord) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return []string{
		r.Date,
		f(r.HeightCm),
		f(r.WeightKg),
		f(r.BMI),
		f(r.BMR),
		strconv.Itoa(r.FastingGlucoseMgdl),
		strconv.Itoa(r.SystolicBP),
		strconv.Itoa(r.DiastolicBP),
		strconv.Itoa(r.Steps),
		strconv.Itoa(r.WaterCups),
		strconv.Itoa(r.Score),
	}
}

// decode parses one row. On failure it returns the offending column name.
func decode(row []string) (domain.HealthRecord, string, error) {
	var r domain.HealthRecord
	if len(row) != len(Header) {
		return r, "", fmt.Errorf("want %d fields, got %d", len(Header), len(row))
	}

	if _, err := time.Parse(domain.DateLayout, row[0]); err != nil {
		return r, Header[0], fmt.Errorf("invalid date %q", row[0])
	}
	r.Date = row[0]

	floats := []*float64{&r.HeightCm, &r.WeightKg, &r.BMI, &r.BMR}
	for i, dst := range floats {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1+i]), 64)
		if err != nil {
			return r, Header[1+i], fmt.Errorf("not a number: %q", row[1+i])
		}
		*dst = v
	}

	ints := []*int{&r.FastingGlucoseMgdl, &r.SystolicBP, &r.DiastolicBP, &r.Steps, &r.WaterCups, &r.Score}
	for i, dst := range ints {
		col := 1 + len(floats) + i
		v, err := parseInt(row[col])
		if err != nil {
			return r, Header[col], err
		}
		*dst = v
	}
	return r, "", nil
}

// parseInt accepts plain integers and integral floats ("95.0"), which is how
// some spreadsheet tools re-save whole-number columns.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}

package domain

// Tier is the recommendation bucket for a score.
type Tier string

const (
	TierExcellent      Tier = "excellent"
	TierFair           Tier = "fair"
	TierNeedsAttention Tier = "needs_attention"
)

var tierAdvice = map[Tier]string{
	TierExcellent:      "Excellent condition. Keep your current habits.",
	TierFair:           "Fair. Try to increase your steps and water intake a little.",
	TierNeedsAttention: "Needs attention. Watch your blood pressure and diet in particular.",
}

// Recommend maps a score onto a tier.
func Recommend(score int) Tier {
	switch {
	case score >= 90:
		return TierExcellent
	case score >= 70:
		return TierFair
	}
	return TierNeedsAttention
}

// Advice returns the user-facing sentence for t.
func (t Tier) Advice() string {
	return tierAdvice[t]
}

// BMI labels.
const (
	BMILabelNormal         = "normal"
	BMILabelNeedsAttention = "needs attention"
)

// BMILabel labels a stored BMI value for display.
func BMILabel(bmi float64) string {
	if BMINormal(bmi) {
		return BMILabelNormal
	}
	return BMILabelNeedsAttention
}

package survey

// BMI category boundaries. Lower bounds are inclusive, so a BMI of exactly
// 18.5 classifies as normal and exactly 30 as obese.
const (
	bmiNormalFloor     = 18.5
	bmiOverweightFloor = 25
	bmiObeseFloor      = 30
)

// DeriveBodyType classifies height and weight into a BodyType via
// BMI = weight / (height/100)^2. Missing or non-positive height or weight
// defaults to 1 so the division never blows up; the resulting classification
// is nonsense but deterministic.
func DeriveBodyType(heightCm, weightKg float64) BodyType {
	if heightCm <= 0 {
		heightCm = 1
	}
	if weightKg <= 0 {
		weightKg = 1
	}
	meters := heightCm / 100
	bmi := weightKg / (meters * meters)
	switch {
	case bmi < bmiNormalFloor:
		return BodyUnderweight
	case bmi < bmiOverweightFloor:
		return BodyNormal
	case bmi < bmiObeseFloor:
		return BodyOverweight
	default:
		return BodyObese
	}
}

package schema

import (
	"fmt"

	"github.com/carboncentrik/footprint/internal/survey"
)

// Vector is one encoded survey row in the canonical column order. Every
// vector produced by Encode has exactly Width values; columns the answers
// never touched hold 0.
type Vector struct {
	values []float64
}

// Values returns the row values in canonical column order.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// Columns returns the column names matching Values positionally.
func (v Vector) Columns() []string {
	return Columns()
}

// Len returns the vector width.
func (v Vector) Len() int {
	return len(v.values)
}

// Encode validates the answers and produces the model input row: a 1.0
// indicator for each categorical field's selected option, integer
// passthrough values, and a 1.0 per selected multi-select flag. All other
// columns stay zero so the row always matches the full training schema.
func Encode(a survey.Answers) (Vector, error) {
	if err := a.Validate(); err != nil {
		return Vector{}, fmt.Errorf("encoding answers: %w", err)
	}

	values := make([]float64, Width)
	mark := func(column string) {
		values[mustIndex(column)] = 1
	}

	mark(OneHotColumn(survey.FieldBodyType, string(a.BodyType)))
	mark(OneHotColumn(survey.FieldSex, string(a.Sex)))
	mark(OneHotColumn(survey.FieldDiet, string(a.Diet)))
	mark(OneHotColumn(survey.FieldShower, string(a.Shower)))
	mark(OneHotColumn(survey.FieldHeatingSource, string(a.HeatingSource)))
	mark(OneHotColumn(survey.FieldTransport, string(a.Transport)))
	mark(OneHotColumn(survey.FieldSocialActivity, string(a.SocialActivity)))
	mark(OneHotColumn(survey.FieldAirTravel, string(a.AirTravel)))
	mark(OneHotColumn(survey.FieldWasteBagSize, string(a.WasteBagSize)))
	mark(OneHotColumn(survey.FieldVehicleType, string(a.VehicleType)))
	mark(OneHotColumn(survey.FieldEnergyEfficiency, string(a.EnergyEfficiency)))

	values[mustIndex(survey.FieldGroceryBill)] = float64(a.GroceryBill)
	values[mustIndex(survey.FieldVehicleKm)] = float64(a.VehicleKm)
	values[mustIndex(survey.FieldWasteBagCount)] = float64(a.WasteBagCount)
	values[mustIndex(survey.FieldTVPCHours)] = float64(a.TVPCHours)
	values[mustIndex(survey.FieldNewClothes)] = float64(a.NewClothes)
	values[mustIndex(survey.FieldInternetHours)] = float64(a.InternetHours)

	for _, m := range a.Cooking {
		mark(survey.CookingFlagColumn(m))
	}
	for _, m := range a.Recycles {
		mark(survey.RecycleFlagColumn(m))
	}

	return Vector{values: values}, nil
}

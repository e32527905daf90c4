// Package schema defines the canonical training column layout and encodes
// raw survey answers into the fixed-width numeric row the regression model
// was trained on.
package schema

import (
	"fmt"

	"github.com/carboncentrik/footprint/internal/survey"
)

// Width is the number of columns in the training schema: 41 one-hot
// indicators, 6 integer passthrough columns, and 9 multi-select flags.
const Width = 56

// columns is the canonical training column list. The order is the
// compatibility contract with the trained artifacts: categorical fields
// expand one-hot in declared field and option order, then the integer
// columns, then the multi-select flag columns.
var columns = buildColumns()

// colIndex maps each canonical column name to its position.
var colIndex = buildIndex(columns)

func buildColumns() []string {
	cols := make([]string, 0, Width)
	cols = appendOneHot(cols, survey.FieldBodyType, survey.BodyTypeOptions)
	cols = appendOneHot(cols, survey.FieldSex, survey.SexOptions)
	cols = appendOneHot(cols, survey.FieldDiet, survey.DietOptions)
	cols = appendOneHot(cols, survey.FieldShower, survey.ShowerOptions)
	cols = appendOneHot(cols, survey.FieldHeatingSource, survey.HeatingSourceOptions)
	cols = appendOneHot(cols, survey.FieldTransport, survey.TransportOptions)
	cols = appendOneHot(cols, survey.FieldSocialActivity, survey.SocialActivityOptions)
	cols = appendOneHot(cols, survey.FieldAirTravel, survey.AirTravelOptions)
	cols = appendOneHot(cols, survey.FieldWasteBagSize, survey.WasteBagSizeOptions)
	cols = appendOneHot(cols, survey.FieldVehicleType, survey.VehicleTypeOptions)
	cols = appendOneHot(cols, survey.FieldEnergyEfficiency, survey.EnergyEfficiencyOptions)

	cols = append(cols,
		survey.FieldGroceryBill,
		survey.FieldVehicleKm,
		survey.FieldWasteBagCount,
		survey.FieldTVPCHours,
		survey.FieldNewClothes,
		survey.FieldInternetHours,
	)

	for _, m := range survey.CookingMethodOptions {
		cols = append(cols, survey.CookingFlagColumn(m))
	}
	for _, m := range survey.RecycledOptions {
		cols = append(cols, survey.RecycleFlagColumn(m))
	}
	return cols
}

func appendOneHot[T ~string](cols []string, field string, options []T) []string {
	for _, o := range options {
		cols = append(cols, OneHotColumn(field, string(o)))
	}
	return cols
}

func buildIndex(cols []string) map[string]int {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c] = i
	}
	return idx
}

// OneHotColumn returns the indicator column name for one option of a
// categorical field.
func OneHotColumn(field, option string) string {
	return field + "_" + option
}

// Columns returns the canonical training column list in order.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

func mustIndex(column string) int {
	i, ok := colIndex[column]
	if !ok {
		panic(fmt.Sprintf("schema: column %q not in training schema", column))
	}
	return i
}

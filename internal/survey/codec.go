package survey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Canonical column names of the original data files. These exact strings,
// including "Energy efficiency" and the misspelled "Do You Recyle_" prefix,
// are the on-disk format and must be preserved.
const (
	FieldBodyType         = "Body Type"
	FieldSex              = "Sex"
	FieldDiet             = "Diet"
	FieldShower           = "How Often Shower"
	FieldHeatingSource    = "Heating Energy Source"
	FieldTransport        = "Transport"
	FieldSocialActivity   = "Social Activity"
	FieldGroceryBill      = "Monthly Grocery Bill"
	FieldAirTravel        = "Frequency of Traveling by Air"
	FieldVehicleKm        = "Vehicle Monthly Distance Km"
	FieldWasteBagSize     = "Waste Bag Size"
	FieldWasteBagCount    = "Waste Bag Weekly Count"
	FieldTVPCHours        = "How Long TV PC Daily Hour"
	FieldVehicleType      = "Vehicle Type"
	FieldNewClothes       = "How Many New Clothes Monthly"
	FieldInternetHours    = "How Long Internet Daily Hour"
	FieldEnergyEfficiency = "Energy efficiency"

	// CookingFlagPrefix prefixes the cooking-method flag columns.
	CookingFlagPrefix = "Cooking_with_"
	// RecycleFlagPrefix prefixes the recycled-material flag columns.
	RecycleFlagPrefix = "Do You Recyle_"
)

// CookingFlagColumn returns the flag column name for a cooking method.
func CookingFlagColumn(m CookingMethod) string {
	return CookingFlagPrefix + string(m)
}

// RecycleFlagColumn returns the flag column name for a recycled material.
func RecycleFlagColumn(m RecycledMaterial) string {
	return RecycleFlagPrefix + string(m)
}

// MarshalJSON writes the canonical input_data object: scalar fields in the
// original column order, then one flag per selected cooking method and
// recycled material with value 1. Unselected flags are omitted entirely.
func (a Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding field %s: %w", key, err)
		}
		keyBytes, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("encoding field name %s: %w", key, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		buf.Write(encoded)
		return nil
	}

	scalars := []struct {
		key   string
		value any
	}{
		{FieldBodyType, a.BodyType},
		{FieldSex, a.Sex},
		{FieldDiet, a.Diet},
		{FieldShower, a.Shower},
		{FieldHeatingSource, a.HeatingSource},
		{FieldTransport, a.Transport},
		{FieldSocialActivity, a.SocialActivity},
		{FieldGroceryBill, a.GroceryBill},
		{FieldAirTravel, a.AirTravel},
		{FieldVehicleKm, a.VehicleKm},
		{FieldWasteBagSize, a.WasteBagSize},
		{FieldWasteBagCount, a.WasteBagCount},
		{FieldTVPCHours, a.TVPCHours},
		{FieldVehicleType, a.VehicleType},
		{FieldNewClothes, a.NewClothes},
		{FieldInternetHours, a.InternetHours},
		{FieldEnergyEfficiency, a.EnergyEfficiency},
	}
	for _, s := range scalars {
		if err := write(s.key, s.value); err != nil {
			return nil, err
		}
	}
	for _, m := range CookingMethodOptions {
		if a.UsesCooking(m) {
			if err := write(CookingFlagColumn(m), 1); err != nil {
				return nil, err
			}
		}
	}
	for _, m := range RecycledOptions {
		if a.RecyclesMaterial(m) {
			if err := write(RecycleFlagColumn(m), 1); err != nil {
				return nil, err
			}
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses the canonical input_data object. Any key outside the
// schema is an ErrUnknownField; out-of-set categorical values are
// ErrInvalidCategory; non-integral numbers, null values, and flag values
// other than 0 and 1 are ErrInvalidValue. A flag value of 0 reads back as
// unselected. Absent fields keep their zero values.
func (a *Answers) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing survey answers: %w", err)
	}

	var out Answers
	for key, value := range raw {
		var err error
		switch key {
		case FieldBodyType:
			err = decodeCategory(key, value, BodyTypeOptions, &out.BodyType)
		case FieldSex:
			err = decodeCategory(key, value, SexOptions, &out.Sex)
		case FieldDiet:
			err = decodeCategory(key, value, DietOptions, &out.Diet)
		case FieldShower:
			err = decodeCategory(key, value, ShowerOptions, &out.Shower)
		case FieldHeatingSource:
			err = decodeCategory(key, value, HeatingSourceOptions, &out.HeatingSource)
		case FieldTransport:
			err = decodeCategory(key, value, TransportOptions, &out.Transport)
		case FieldSocialActivity:
			err = decodeCategory(key, value, SocialActivityOptions, &out.SocialActivity)
		case FieldAirTravel:
			err = decodeCategory(key, value, AirTravelOptions, &out.AirTravel)
		case FieldWasteBagSize:
			err = decodeCategory(key, value, WasteBagSizeOptions, &out.WasteBagSize)
		case FieldVehicleType:
			err = decodeCategory(key, value, VehicleTypeOptions, &out.VehicleType)
		case FieldEnergyEfficiency:
			err = decodeCategory(key, value, EnergyEfficiencyOptions, &out.EnergyEfficiency)
		case FieldGroceryBill:
			err = decodeCount(key, value, &out.GroceryBill)
		case FieldVehicleKm:
			err = decodeCount(key, value, &out.VehicleKm)
		case FieldWasteBagCount:
			err = decodeCount(key, value, &out.WasteBagCount)
		case FieldTVPCHours:
			err = decodeCount(key, value, &out.TVPCHours)
		case FieldNewClothes:
			err = decodeCount(key, value, &out.NewClothes)
		case FieldInternetHours:
			err = decodeCount(key, value, &out.InternetHours)
		default:
			err = decodeFlagKey(key, value, &out)
		}
		if err != nil {
			return err
		}
	}

	// Flag keys arrive in map order; restore the canonical set order.
	out.Cooking = sortByOptions(out.Cooking, CookingMethodOptions)
	out.Recycles = sortByOptions(out.Recycles, RecycledOptions)
	*a = out
	return nil
}

func decodeFlagKey(key string, value json.RawMessage, out *Answers) error {
	switch {
	case strings.HasPrefix(key, CookingFlagPrefix):
		m := CookingMethod(strings.TrimPrefix(key, CookingFlagPrefix))
		if !slices.Contains(CookingMethodOptions, m) {
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		selected, err := decodeFlag(key, value)
		if err != nil {
			return err
		}
		if selected && !out.UsesCooking(m) {
			out.Cooking = append(out.Cooking, m)
		}
	case strings.HasPrefix(key, RecycleFlagPrefix):
		m := RecycledMaterial(strings.TrimPrefix(key, RecycleFlagPrefix))
		if !slices.Contains(RecycledOptions, m) {
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		selected, err := decodeFlag(key, value)
		if err != nil {
			return err
		}
		if selected && !out.RecyclesMaterial(m) {
			out.Recycles = append(out.Recycles, m)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return nil
}

func decodeCategory[T ~string](field string, raw json.RawMessage, options []T, dst *T) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("field %s: %w", field, err)
	}
	value := T(s)
	if !slices.Contains(options, value) {
		return fmt.Errorf("%w: %s %q", ErrInvalidCategory, field, s)
	}
	*dst = value
	return nil
}

func decodeCount(field string, raw json.RawMessage, dst *int) error {
	f, err := decodeNumber(field, raw)
	if err != nil {
		return err
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidValue, field, f)
	}
	*dst = int(f)
	return nil
}

// decodeFlag accepts 0 (unselected) and 1 (selected). The original files
// store flags as floats, so 1.0 parses the same as 1.
func decodeFlag(field string, raw json.RawMessage) (bool, error) {
	f, err := decodeNumber(field, raw)
	if err != nil {
		return false, err
	}
	switch f {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s must be 0 or 1, got %v", ErrInvalidValue, field, f)
	}
}

func decodeNumber(field string, raw json.RawMessage) (float64, error) {
	if string(bytes.TrimSpace(raw)) == "null" {
		return 0, fmt.Errorf("%w: %s must not be null", ErrInvalidValue, field)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("field %s: %w", field, err)
	}
	return f, nil
}

func sortByOptions[T comparable](selected, options []T) []T {
	if len(selected) == 0 {
		return nil
	}
	ordered := make([]T, 0, len(selected))
	for _, o := range options {
		if slices.Contains(selected, o) {
			ordered = append(ordered, o)
		}
	}
	return ordered
}

// Package survey defines the fixed survey schema: the raw answer set, its
// categorical option tables, and the canonical JSON snapshot format shared by
// the history files and the training schema.
package survey

import (
	"fmt"
	"slices"
)

// BodyType is the BMI-derived build category. It is computed from height and
// weight via DeriveBodyType, never entered directly.
type BodyType string

const (
	BodyUnderweight BodyType = "underweight"
	BodyNormal      BodyType = "normal"
	BodyOverweight  BodyType = "overweight"
	BodyObese       BodyType = "obese"
)

// Sex is the reported sex.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// Diet is the reported diet.
type Diet string

const (
	DietOmnivore    Diet = "omnivore"
	DietPescatarian Diet = "pescatarian"
	DietVegetarian  Diet = "vegetarian"
	DietVegan       Diet = "vegan"
)

// ShowerFrequency is how often the respondent showers.
type ShowerFrequency string

const (
	ShowerDaily          ShowerFrequency = "daily"
	ShowerTwiceADay      ShowerFrequency = "twice a day"
	ShowerMoreFrequently ShowerFrequency = "more frequently"
	ShowerLessFrequently ShowerFrequency = "less frequently"
)

// HeatingSource is the household heating energy source.
type HeatingSource string

const (
	HeatingNaturalGas  HeatingSource = "natural gas"
	HeatingElectricity HeatingSource = "electricity"
	HeatingWood        HeatingSource = "wood"
	HeatingCoal        HeatingSource = "coal"
)

// TransportMode is the preferred transportation method.
type TransportMode string

const (
	TransportPublic  TransportMode = "public"
	TransportPrivate TransportMode = "private"
	TransportWalk    TransportMode = "walk/bicycle"
)

// SocialActivity is how often the respondent goes out.
type SocialActivity string

const (
	SocialNever     SocialActivity = "never"
	SocialOften     SocialActivity = "often"
	SocialSometimes SocialActivity = "sometimes"
)

// AirTravelFrequency is how often the respondent flew in the last month.
type AirTravelFrequency string

const (
	AirTravelNever          AirTravelFrequency = "never"
	AirTravelRarely         AirTravelFrequency = "rarely"
	AirTravelFrequently     AirTravelFrequency = "frequently"
	AirTravelVeryFrequently AirTravelFrequency = "very frequently"
)

// WasteBagSize is the household waste bag size.
type WasteBagSize string

const (
	WasteBagSmall      WasteBagSize = "small"
	WasteBagMedium     WasteBagSize = "medium"
	WasteBagLarge      WasteBagSize = "large"
	WasteBagExtraLarge WasteBagSize = "extra large"
)

// VehicleType is the vehicle fuel type. VehicleNone applies whenever the
// transport mode is not private.
type VehicleType string

const (
	VehiclePetrol   VehicleType = "petrol"
	VehicleDiesel   VehicleType = "diesel"
	VehicleHybrid   VehicleType = "hybrid"
	VehicleLPG      VehicleType = "lpg"
	VehicleElectric VehicleType = "electric"
	VehicleNone     VehicleType = "None"
)

// EnergyEfficiency is whether the respondent considers device efficiency.
// The capitalized values are the historical on-disk spelling.
type EnergyEfficiency string

const (
	EfficiencyNo        EnergyEfficiency = "No"
	EfficiencyYes       EnergyEfficiency = "Yes"
	EfficiencySometimes EnergyEfficiency = "Sometimes"
)

// CookingMethod is one selectable cooking system.
type CookingMethod string

const (
	CookingMicrowave CookingMethod = "microwave"
	CookingOven      CookingMethod = "oven"
	CookingGrill     CookingMethod = "grill"
	CookingAirfryer  CookingMethod = "airfryer"
	CookingStove     CookingMethod = "stove"
)

// RecycledMaterial is one selectable recycled material. The capitalized
// values are the historical on-disk spelling.
type RecycledMaterial string

const (
	RecyclePlastic RecycledMaterial = "Plastic"
	RecyclePaper   RecycledMaterial = "Paper"
	RecycleMetal   RecycledMaterial = "Metal"
	RecycleGlass   RecycledMaterial = "Glass"
)

// Option tables, in canonical order. The order is part of the training
// schema contract: one-hot columns expand per field in this exact sequence.
var (
	BodyTypeOptions         = []BodyType{BodyUnderweight, BodyNormal, BodyOverweight, BodyObese}
	SexOptions              = []Sex{SexFemale, SexMale}
	DietOptions             = []Diet{DietOmnivore, DietPescatarian, DietVegetarian, DietVegan}
	ShowerOptions           = []ShowerFrequency{ShowerDaily, ShowerTwiceADay, ShowerMoreFrequently, ShowerLessFrequently}
	HeatingSourceOptions    = []HeatingSource{HeatingNaturalGas, HeatingElectricity, HeatingWood, HeatingCoal}
	TransportOptions        = []TransportMode{TransportPublic, TransportPrivate, TransportWalk}
	SocialActivityOptions   = []SocialActivity{SocialNever, SocialOften, SocialSometimes}
	AirTravelOptions        = []AirTravelFrequency{AirTravelNever, AirTravelRarely, AirTravelFrequently, AirTravelVeryFrequently}
	WasteBagSizeOptions     = []WasteBagSize{WasteBagSmall, WasteBagMedium, WasteBagLarge, WasteBagExtraLarge}
	VehicleTypeOptions      = []VehicleType{VehiclePetrol, VehicleDiesel, VehicleHybrid, VehicleLPG, VehicleElectric, VehicleNone}
	EnergyEfficiencyOptions = []EnergyEfficiency{EfficiencyNo, EfficiencyYes, EfficiencySometimes}
	CookingMethodOptions    = []CookingMethod{CookingMicrowave, CookingOven, CookingGrill, CookingAirfryer, CookingStove}
	RecycledOptions         = []RecycledMaterial{RecyclePlastic, RecyclePaper, RecycleMetal, RecycleGlass}
)

// Answers is the complete set of recognized survey fields. Fields follow the
// order of the original data files. Unset integers mean 0; multi-selects are
// sets (duplicates collapse, absence means unselected).
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; MarshalJSON uses value receiver.
type Answers struct {
	BodyType         BodyType
	Sex              Sex
	Diet             Diet
	Shower           ShowerFrequency
	HeatingSource    HeatingSource
	Transport        TransportMode
	SocialActivity   SocialActivity
	GroceryBill      int
	AirTravel        AirTravelFrequency
	VehicleKm        int
	WasteBagSize     WasteBagSize
	WasteBagCount    int
	TVPCHours        int
	VehicleType      VehicleType
	NewClothes       int
	InternetHours    int
	EnergyEfficiency EnergyEfficiency
	Cooking          []CookingMethod
	Recycles         []RecycledMaterial
}

// UsesCooking reports whether the given cooking method was selected.
func (a Answers) UsesCooking(m CookingMethod) bool {
	return slices.Contains(a.Cooking, m)
}

// RecyclesMaterial reports whether the given material was selected.
func (a Answers) RecyclesMaterial(m RecycledMaterial) bool {
	return slices.Contains(a.Recycles, m)
}

// RecycledCount returns the number of distinct recycled materials selected.
func (a Answers) RecycledCount() int {
	seen := make(map[RecycledMaterial]struct{}, len(a.Recycles))
	for _, m := range a.Recycles {
		seen[m] = struct{}{}
	}
	return len(seen)
}

// Validate checks every categorical field against its option set and every
// integer field for non-negativity. The first failure is returned, wrapped
// around the matching sentinel and naming the field and offending value.
func (a Answers) Validate() error {
	if err := checkCategory(FieldBodyType, a.BodyType, BodyTypeOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldSex, a.Sex, SexOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldDiet, a.Diet, DietOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldShower, a.Shower, ShowerOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldHeatingSource, a.HeatingSource, HeatingSourceOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldTransport, a.Transport, TransportOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldSocialActivity, a.SocialActivity, SocialActivityOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldAirTravel, a.AirTravel, AirTravelOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldWasteBagSize, a.WasteBagSize, WasteBagSizeOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldVehicleType, a.VehicleType, VehicleTypeOptions); err != nil {
		return err
	}
	if err := checkCategory(FieldEnergyEfficiency, a.EnergyEfficiency, EnergyEfficiencyOptions); err != nil {
		return err
	}
	for _, m := range a.Cooking {
		if err := checkCategory(CookingFlagColumn(m), m, CookingMethodOptions); err != nil {
			return err
		}
	}
	for _, m := range a.Recycles {
		if err := checkCategory(RecycleFlagColumn(m), m, RecycledOptions); err != nil {
			return err
		}
	}
	counts := []struct {
		field string
		value int
	}{
		{FieldGroceryBill, a.GroceryBill},
		{FieldVehicleKm, a.VehicleKm},
		{FieldWasteBagCount, a.WasteBagCount},
		{FieldTVPCHours, a.TVPCHours},
		{FieldNewClothes, a.NewClothes},
		{FieldInternetHours, a.InternetHours},
	}
	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidValue, c.field, c.value)
		}
	}
	return nil
}

func checkCategory[T ~string](field string, value T, options []T) error {
	if !slices.Contains(options, value) {
		return fmt.Errorf("%w: %s %q", ErrInvalidCategory, field, string(value))
	}
	return nil
}

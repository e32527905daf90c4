package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		HeightCm:         170,
		WeightKg:         65,
		Sex:              "female",
		Diet:             "vegan",
		ShowerFrequency:  "daily",
		HeatingSource:    "electricity",
		Transport:        "public",
		VehicleType:      "",
		SocialActivity:   "sometimes",
		AirTravel:        "never",
		GroceryBill:      120,
		VehicleKm:        0,
		WasteBagSize:     "small",
		WasteBagCount:    2,
		TVPCHours:        4,
		NewClothes:       3,
		InternetHours:    5,
		EnergyEfficiency: "Yes",
		Cooking:          []string{"oven", "stove"},
		Recycles:         []string{"Paper"},
	}
}

func TestFormToAnswers(t *testing.T) {
	t.Parallel()

	a, err := validForm().ToAnswers()
	require.NoError(t, err)

	assert.Equal(t, BodyNormal, a.BodyType)
	assert.Equal(t, DietVegan, a.Diet)
	// Public transport never carries a vehicle type.
	assert.Equal(t, VehicleNone, a.VehicleType)
	assert.Equal(t, []CookingMethod{CookingOven, CookingStove}, a.Cooking)
	assert.Equal(t, []RecycledMaterial{RecyclePaper}, a.Recycles)
}

func TestFormToAnswers_DerivesBodyType(t *testing.T) {
	t.Parallel()

	f := validForm()
	f.HeightCm = 160
	f.WeightKg = 120

	a, err := f.ToAnswers()
	require.NoError(t, err)
	assert.Equal(t, BodyObese, a.BodyType)
}

func TestFormToAnswers_PrivateTransportKeepsVehicle(t *testing.T) {
	t.Parallel()

	f := validForm()
	f.Transport = "private"
	f.VehicleType = "diesel"
	f.VehicleKm = 800

	a, err := f.ToAnswers()
	require.NoError(t, err)
	assert.Equal(t, VehicleDiesel, a.VehicleType)
	assert.Equal(t, 800, a.VehicleKm)
}

func TestFormToAnswers_WalkZeroesDistance(t *testing.T) {
	t.Parallel()

	f := validForm()
	f.Transport = "walk/bicycle"
	f.VehicleType = "petrol"
	f.VehicleKm = 400

	a, err := f.ToAnswers()
	require.NoError(t, err)
	assert.Equal(t, VehicleNone, a.VehicleType)
	assert.Equal(t, 0, a.VehicleKm)
}

func TestFormToAnswers_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Form)
		wantErr error
	}{
		{
			name:    "unknown selection",
			mutate:  func(f *Form) { f.Diet = "fruitarian" },
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "private transport without vehicle type",
			mutate:  func(f *Form) { f.Transport = "private"; f.VehicleType = "" },
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "negative count",
			mutate:  func(f *Form) { f.WasteBagCount = -2 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown multi-select item",
			mutate:  func(f *Form) { f.Recycles = []string{"Rubber"} },
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := validForm()
			tt.mutate(&f)

			_, err := f.ToAnswers()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormToAnswers_CollapsesDuplicates(t *testing.T) {
	t.Parallel()

	f := validForm()
	f.Cooking = []string{"stove", "stove", "oven"}
	f.Recycles = []string{"Paper", "Paper"}

	a, err := f.ToAnswers()
	require.NoError(t, err)
	assert.Equal(t, []CookingMethod{CookingStove, CookingOven}, a.Cooking)
	assert.Equal(t, []RecycledMaterial{RecyclePaper}, a.Recycles)
}

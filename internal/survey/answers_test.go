package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validAnswers returns a fully populated answer set that passes Validate.
func validAnswers() Answers {
	return Answers{
		BodyType:         BodyNormal,
		Sex:              SexFemale,
		Diet:             DietVegan,
		Shower:           ShowerDaily,
		HeatingSource:    HeatingElectricity,
		Transport:        TransportPublic,
		SocialActivity:   SocialSometimes,
		GroceryBill:      120,
		AirTravel:        AirTravelNever,
		VehicleKm:        0,
		WasteBagSize:     WasteBagSmall,
		WasteBagCount:    2,
		TVPCHours:        4,
		VehicleType:      VehicleNone,
		NewClothes:       3,
		InternetHours:    5,
		EnergyEfficiency: EfficiencyYes,
		Cooking:          []CookingMethod{CookingOven, CookingStove},
		Recycles:         []RecycledMaterial{RecyclePaper},
	}
}

func TestAnswersValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Answers)
		wantErr error
		wantMsg string
	}{
		{
			name:   "valid answers pass",
			mutate: func(*Answers) {},
		},
		{
			name:    "unset body type",
			mutate:  func(a *Answers) { a.BodyType = "" },
			wantErr: ErrInvalidCategory,
			wantMsg: "Body Type",
		},
		{
			name:    "unknown diet",
			mutate:  func(a *Answers) { a.Diet = "carnivore" },
			wantErr: ErrInvalidCategory,
			wantMsg: `Diet "carnivore"`,
		},
		{
			name:    "case mismatch is not corrected",
			mutate:  func(a *Answers) { a.EnergyEfficiency = "yes" },
			wantErr: ErrInvalidCategory,
			wantMsg: "Energy efficiency",
		},
		{
			name:    "unknown cooking method",
			mutate:  func(a *Answers) { a.Cooking = append(a.Cooking, "campfire") },
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "unknown recycled material",
			mutate:  func(a *Answers) { a.Recycles = []RecycledMaterial{"Rubber"} },
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "negative grocery bill",
			mutate:  func(a *Answers) { a.GroceryBill = -1 },
			wantErr: ErrInvalidValue,
			wantMsg: "Monthly Grocery Bill",
		},
		{
			name:    "negative vehicle distance",
			mutate:  func(a *Answers) { a.VehicleKm = -300 },
			wantErr: ErrInvalidValue,
			wantMsg: "Vehicle Monthly Distance Km",
		},
		{
			name:   "duplicate selections are not an error",
			mutate: func(a *Answers) { a.Recycles = []RecycledMaterial{RecyclePaper, RecyclePaper} },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := validAnswers()
			tt.mutate(&a)

			err := a.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestAnswersSetHelpers(t *testing.T) {
	t.Parallel()

	a := validAnswers()
	assert.True(t, a.UsesCooking(CookingOven))
	assert.False(t, a.UsesCooking(CookingMicrowave))
	assert.True(t, a.RecyclesMaterial(RecyclePaper))
	assert.False(t, a.RecyclesMaterial(RecycleGlass))

	a.Recycles = []RecycledMaterial{RecyclePaper, RecyclePaper, RecycleGlass}
	assert.Equal(t, 2, a.RecycledCount())

	a.Recycles = nil
	assert.Equal(t, 0, a.RecycledCount())
}

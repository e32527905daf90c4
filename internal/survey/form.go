package survey

// Form is the submission payload accepted by the HTTP API and the CLI
// answers file. It mirrors the survey form: height and weight instead of a
// body type (which is derived, never user-entered), plain string selections,
// and string lists for the multi-selects.
type Form struct {
	HeightCm         float64  `json:"height_cm"`
	WeightKg         float64  `json:"weight_kg"`
	Sex              string   `json:"sex"`
	Diet             string   `json:"diet"`
	ShowerFrequency  string   `json:"shower_frequency"`
	HeatingSource    string   `json:"heating_energy_source"`
	Transport        string   `json:"transport"`
	VehicleType      string   `json:"vehicle_type"`
	SocialActivity   string   `json:"social_activity"`
	AirTravel        string   `json:"air_travel_frequency"`
	GroceryBill      int      `json:"monthly_grocery_bill"`
	VehicleKm        int      `json:"vehicle_monthly_distance_km"`
	WasteBagSize     string   `json:"waste_bag_size"`
	WasteBagCount    int      `json:"waste_bag_weekly_count"`
	TVPCHours        int      `json:"tv_pc_daily_hours"`
	NewClothes       int      `json:"new_clothes_monthly"`
	InternetHours    int      `json:"internet_daily_hours"`
	EnergyEfficiency string   `json:"energy_efficiency"`
	Cooking          []string `json:"cooking_methods"`
	Recycles         []string `json:"recycled_materials"`
}

// ToAnswers derives the body type from height and weight and applies the
// same normalization the survey form enforces: a non-private transport mode
// forces the vehicle type to "None", and walk/bicycle zeroes the monthly
// vehicle distance. The result is validated before being returned.
func (f Form) ToAnswers() (Answers, error) {
	a := Answers{
		BodyType:         DeriveBodyType(f.HeightCm, f.WeightKg),
		Sex:              Sex(f.Sex),
		Diet:             Diet(f.Diet),
		Shower:           ShowerFrequency(f.ShowerFrequency),
		HeatingSource:    HeatingSource(f.HeatingSource),
		Transport:        TransportMode(f.Transport),
		SocialActivity:   SocialActivity(f.SocialActivity),
		GroceryBill:      f.GroceryBill,
		AirTravel:        AirTravelFrequency(f.AirTravel),
		VehicleKm:        f.VehicleKm,
		WasteBagSize:     WasteBagSize(f.WasteBagSize),
		WasteBagCount:    f.WasteBagCount,
		TVPCHours:        f.TVPCHours,
		VehicleType:      VehicleType(f.VehicleType),
		NewClothes:       f.NewClothes,
		InternetHours:    f.InternetHours,
		EnergyEfficiency: EnergyEfficiency(f.EnergyEfficiency),
	}
	if a.Transport != TransportPrivate {
		a.VehicleType = VehicleNone
	}
	if a.Transport == TransportWalk {
		a.VehicleKm = 0
	}
	for _, m := range f.Cooking {
		method := CookingMethod(m)
		if !a.UsesCooking(method) {
			a.Cooking = append(a.Cooking, method)
		}
	}
	for _, m := range f.Recycles {
		material := RecycledMaterial(m)
		if !a.RecyclesMaterial(material) {
			a.Recycles = append(a.Recycles, material)
		}
	}
	if err := a.Validate(); err != nil {
		return Answers{}, err
	}
	return a, nil
}

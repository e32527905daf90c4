// Package recommend evaluates the fixed suggestion rules against raw survey
// answers. Each rule is an independent predicate paired with a canned
// message; output order is rule declaration order, with no deduplication,
// ranking, or cap.
package recommend

import "github.com/carboncentrik/footprint/internal/survey"

// Canned messages, preserved verbatim from the historical output.
const (
	MsgPublicTransport = "Consider using public transport more often to reduce your carbon footprint."
	MsgAirTravel       = "Reduce air travel or consider carbon offset programs for unavoidable flights."
	MsgHeating         = "Consider switching to renewable energy sources for heating."
	MsgScreenTime      = "Reduce screen time to save energy and lower your carbon footprint."
	MsgNewClothes      = "Try to buy fewer new clothes or shop second-hand to reduce your carbon footprint."
	MsgWaste           = "Try to reduce your waste by composting food scraps and buying products with less packaging."
	MsgRecycling       = "Increase your recycling efforts to reduce your carbon footprint."
	MsgMeat            = "Consider reducing meat consumption to lower your carbon footprint."
)

// Trigger thresholds.
const (
	vehicleKmThreshold   = 500
	screenHoursThreshold = 6
	newClothesThreshold  = 5
	wasteBagThreshold    = 3
	minRecycledMaterials = 2
)

// rule pairs a predicate over the raw answers with its message.
type rule struct {
	triggered func(survey.Answers) bool
	message   string
}

// rules is the ordered rule table. Order here is output order.
var rules = []rule{
	{
		triggered: func(a survey.Answers) bool {
			return a.Transport == survey.TransportPrivate && a.VehicleKm > vehicleKmThreshold
		},
		message: MsgPublicTransport,
	},
	{
		triggered: func(a survey.Answers) bool {
			return a.AirTravel == survey.AirTravelFrequently || a.AirTravel == survey.AirTravelVeryFrequently
		},
		message: MsgAirTravel,
	},
	{
		triggered: func(a survey.Answers) bool {
			return a.HeatingSource == survey.HeatingCoal || a.HeatingSource == survey.HeatingNaturalGas
		},
		message: MsgHeating,
	},
	{
		triggered: func(a survey.Answers) bool {
			return a.TVPCHours > screenHoursThreshold
		},
		message: MsgScreenTime,
	},
	{
		triggered: func(a survey.Answers) bool {
			return a.NewClothes > newClothesThreshold
		},
		message: MsgNewClothes,
	},
	{
		triggered: func(a survey.Answers) bool {
			return a.WasteBagCount > wasteBagThreshold
		},
		message: MsgWaste,
	},
	{
		triggered: func(a survey.Answers) bool {
			return a.RecycledCount() < minRecycledMaterials
		},
		message: MsgRecycling,
	},
	{
		triggered: func(a survey.Answers) bool {
			return a.Diet == survey.DietOmnivore
		},
		message: MsgMeat,
	},
}

// For returns the messages whose rules trigger on the given answers, in
// declaration order. Evaluation is stateless; no rule inspects another.
func For(a survey.Answers) []string {
	var out []string
	for _, r := range rules {
		if r.triggered(a) {
			out = append(out, r.message)
		}
	}
	return out
}

// Package impact recomputes the display-side carbon metrics from raw survey
// answers: the five category sub-scores, their percentage shares, and the
// tree-offset count. The scores are heuristic rule tables evaluated
// independently of the regression model and are not expected to sum to the
// model's estimate.
package impact

import "github.com/carboncentrik/footprint/internal/survey"

// Category identifies one breakdown category.
type Category string

const (
	CategoryTravel      Category = "Travel"
	CategoryEnergy      Category = "Energy"
	CategoryConsumption Category = "Consumption"
	CategoryWaste       Category = "Waste"
	CategoryDiet        Category = "Diet"
)

// Categories lists the breakdown categories in display order.
var Categories = []Category{
	CategoryTravel,
	CategoryEnergy,
	CategoryConsumption,
	CategoryWaste,
	CategoryDiet,
}

// Rule table constants. The values are part of the output contract with the
// historical data and must not drift.
const (
	travelBase          = 100.0
	travelPerKm         = 0.2
	travelAirRarely     = 100.0
	travelAirFrequently = 300.0
	travelAirVeryFreq   = 500.0

	energyBase       = 80.0
	energyCoal       = 200.0
	energyNaturalGas = 100.0
	energyPerTVPCHr  = 5.0

	consumptionBase       = 50.0
	consumptionPerGrocery = 0.5
	consumptionPerCloth   = 10.0

	wasteBase        = 30.0
	wasteSizeMedium  = 40.0
	wasteSizeLarge   = 70.0
	wasteSizeXL      = 100.0
	wastePerBag      = 20.0
	wasteRecycleCred = 15.0

	dietVegan       = 50.0
	dietVegetarian  = 100.0
	dietPescatarian = 150.0
	dietOmnivore    = 200.0
)

// Breakdown holds the five category sub-scores.
type Breakdown struct {
	Travel      float64 `json:"travel"`
	Energy      float64 `json:"energy"`
	Consumption float64 `json:"consumption"`
	Waste       float64 `json:"waste"`
	Diet        float64 `json:"diet"`
}

// Compute evaluates every category rule against the raw answers.
func Compute(a survey.Answers) Breakdown {
	return Breakdown{
		Travel:      travelScore(a),
		Energy:      energyScore(a),
		Consumption: consumptionScore(a),
		Waste:       wasteScore(a),
		Diet:        dietScore(a),
	}
}

func travelScore(a survey.Answers) float64 {
	score := travelBase
	if a.Transport == survey.TransportPrivate {
		score += float64(a.VehicleKm) * travelPerKm
	}
	switch a.AirTravel {
	case survey.AirTravelVeryFrequently:
		score += travelAirVeryFreq
	case survey.AirTravelFrequently:
		score += travelAirFrequently
	case survey.AirTravelRarely:
		score += travelAirRarely
	}
	return score
}

func energyScore(a survey.Answers) float64 {
	score := energyBase
	switch a.HeatingSource {
	case survey.HeatingCoal:
		score += energyCoal
	case survey.HeatingNaturalGas:
		score += energyNaturalGas
	}
	return score + float64(a.TVPCHours)*energyPerTVPCHr
}

func consumptionScore(a survey.Answers) float64 {
	return consumptionBase +
		float64(a.GroceryBill)*consumptionPerGrocery +
		float64(a.NewClothes)*consumptionPerCloth
}

// wasteScore is the one category that can earn credit; it floors at zero
// when the recycling credit exceeds everything else.
func wasteScore(a survey.Answers) float64 {
	score := wasteBase
	switch a.WasteBagSize {
	case survey.WasteBagExtraLarge:
		score += wasteSizeXL
	case survey.WasteBagLarge:
		score += wasteSizeLarge
	case survey.WasteBagMedium:
		score += wasteSizeMedium
	}
	score += float64(a.WasteBagCount) * wastePerBag
	score -= float64(a.RecycledCount()) * wasteRecycleCred
	if score < 0 {
		return 0
	}
	return score
}

func dietScore(a survey.Answers) float64 {
	switch a.Diet {
	case survey.DietVegan:
		return dietVegan
	case survey.DietVegetarian:
		return dietVegetarian
	case survey.DietPescatarian:
		return dietPescatarian
	default:
		return dietOmnivore
	}
}

// Score returns one category's sub-score.
func (b Breakdown) Score(c Category) float64 {
	switch c {
	case CategoryTravel:
		return b.Travel
	case CategoryEnergy:
		return b.Energy
	case CategoryConsumption:
		return b.Consumption
	case CategoryWaste:
		return b.Waste
	case CategoryDiet:
		return b.Diet
	default:
		return 0
	}
}

// Total returns the sum of all category sub-scores.
func (b Breakdown) Total() float64 {
	return b.Travel + b.Energy + b.Consumption + b.Waste + b.Diet
}

// Share is one category's slice of the breakdown total.
type Share struct {
	Category Category `json:"category"`
	Score    float64  `json:"score"`
	Percent  float64  `json:"percent"`
}

// Shares returns the percentage split across categories in display order.
func (b Breakdown) Shares() []Share {
	total := b.Total()
	shares := make([]Share, 0, len(Categories))
	for _, c := range Categories {
		s := Share{Category: c, Score: b.Score(c)}
		if total > 0 {
			s.Percent = s.Score / total * 100
		}
		shares = append(shares, s)
	}
	return shares
}

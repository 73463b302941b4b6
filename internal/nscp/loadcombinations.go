package nscp

import "math"

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations covers gravity loads only
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LoadIntensities holds the unfactored intensity of a concentrated force
// or end moment for each load type. All entries act at the same place.
type LoadIntensities struct {
	Dead       float64 `yaml:"dead"`
	Live       float64 `yaml:"live"`
	Roof       float64 `yaml:"roof"`
	Wind       float64 `yaml:"wind"`
	Earthquake float64 `yaml:"earthquake"`
	Rain       float64 `yaml:"rain"`
}

// IsZero reports whether no load type carries an intensity
func (li LoadIntensities) IsZero() bool {
	return li == LoadIntensities{}
}

// Factored calculates the factored intensity for the load combination
func (lc LoadCombination) Factored(li LoadIntensities) float64 {
	return lc.Dead*li.Dead +
		lc.Live*li.Live +
		lc.Roof*li.Roof +
		lc.Wind*li.Wind +
		lc.Earthquake*li.Earthquake +
		lc.Rain*li.Rain
}

// GoverningLoad finds the factored intensity with the largest magnitude.
// The sign is kept, so an uplift governed combination stays negative.
func GoverningLoad(li LoadIntensities, combinations []LoadCombination) (float64, LoadCombination) {
	if len(combinations) == 0 {
		return 0, LoadCombination{}
	}
	governingCombo := combinations[0]
	governing := governingCombo.Factored(li)

	for _, combo := range combinations[1:] {
		f := combo.Factored(li)
		if math.Abs(f) > math.Abs(governing) {
			governing = f
			governingCombo = combo
		}
	}

	return governing, governingCombo
}

package engine

import (
	"github.com/piwi3910/CratePack/internal/model"
)

// ComparisonScenario is a named rotation policy to try on the same job.
type ComparisonScenario struct {
	Name     string
	Settings model.PackSettings
	// Rotations, when set, replaces every item's declared rotations.
	Rotations []model.RotationType
}

// ComparisonResult holds the packing result and statistics for one scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.PackResult
	BinsUsed     int
	PlacedCount  int
	UnfitCount   int
	WastePercent float64
	Err          error
}

// CompareScenarios packs the same items and bins once per scenario and
// returns the results in scenario order.
func CompareScenarios(scenarios []ComparisonScenario, items []model.ItemSpec, bins []model.BinSpec) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		scenarioItems := items
		if len(scenario.Rotations) > 0 {
			scenarioItems = make([]model.ItemSpec, len(items))
			for i, it := range items {
				it.Rotations = scenario.Rotations
				scenarioItems[i] = it
			}
		}

		result, err := New(scenario.Settings).Optimize(scenarioItems, bins)
		cr := ComparisonResult{
			Scenario: scenario,
			Result:   result,
			Err:      err,
		}
		if err == nil {
			cr.BinsUsed = result.UsedBins()
			cr.PlacedCount = result.PlacedCount()
			cr.UnfitCount = len(result.UnfitItems)
			if cr.BinsUsed > 0 {
				cr.WastePercent = 100.0 - result.TotalEfficiency()
			}
		}
		results = append(results, cr)
	}

	return results
}

// BuildDefaultScenarios returns the current settings plus what-if rotation
// policies: every rotation allowed, and upright only.
func BuildDefaultScenarios(baseSettings model.PackSettings) []ComparisonScenario {
	return []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
		{
			Name:      "All Rotations",
			Settings:  baseSettings,
			Rotations: model.AllRotations(),
		},
		{
			Name:      "Upright Only",
			Settings:  baseSettings,
			Rotations: model.UprightRotations(),
		},
	}
}

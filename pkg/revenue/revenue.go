package revenue

// HoursPerYear is the annualization basis for energy volume.
const HoursPerYear = 8760.0

// Breakdown itemizes the annual utility revenue from a data-center load.
type Breakdown struct {
	DemandRevenue float64 `json:"demand_revenue"`
	EnergyMargin  float64 `json:"energy_margin"`
	Total         float64 `json:"total"`
}

// Compute returns the annual revenue a data-center load generates for the
// utility. Demand charges bill only the coincident-peak contribution, so a
// curtailing load pays proportionally less; the energy margin applies to
// every MWh served regardless of when it is consumed.
func Compute(capacityMW, loadFactor, peakCoincidence, demandChargePerMWMonth, energyMarginPerMWh float64) Breakdown {
	demand := capacityMW * peakCoincidence * demandChargePerMWMonth * 12
	energy := capacityMW * loadFactor * HoursPerYear * energyMarginPerMWh

	return Breakdown{
		DemandRevenue: demand,
		EnergyMargin:  energy,
		Total:         demand + energy,
	}
}

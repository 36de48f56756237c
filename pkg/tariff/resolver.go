package tariff

import (
	"github.com/DougMackenzie/power-insight-sub001/pkg/market"
)

// RateBundle is the set of effective rates resolved for one operating point.
//
// DemandChargePerMWMonth is the blended charge per MW of billed demand; the
// revenue model applies it to the coincident-peak contribution, so a
// flexible load's billed demand charge falls in proportion to its peak
// coincidence. EffectiveDemandChargePerMWMonth reports that post-curtailment
// rate directly.
type RateBundle struct {
	DemandChargePerMWMonth          float64 `json:"demand_charge_per_mw_month"`
	EffectiveDemandChargePerMWMonth float64 `json:"effective_demand_charge_per_mw_month"`
	EnergyMarginPerMWh              float64 `json:"energy_margin_per_mwh"`
	CapacityCostPerMWYear           float64 `json:"capacity_cost_per_mw_year"`
	FourCPRatePerKWMonth            float64 `json:"four_cp_rate_per_kw_month"`
	Is4CP                           bool    `json:"is_4cp"`
	HasTariff                       bool    `json:"has_tariff"`
}

// ResolveRates derives effective rates from a tariff at the given operating
// point. A nil tariff yields the fixed system defaults. Capacity cost comes
// from the market's constant bundle; 4CP transmission billing applies when
// the schedule is flagged or the market is ERCOT.
func ResolveRates(t *Tariff, m market.Structure, loadFactor, peakCoincidence float64) RateBundle {
	b := RateBundle{
		CapacityCostPerMWYear: m.CapacityCostPerMWYear(),
		FourCPRatePerKWMonth:  FourCPRatePerKWMonth,
		Is4CP:                 m.ISO == market.ERCOT,
	}

	if t == nil {
		b.DemandChargePerMWMonth = DefaultDemandChargePerMWMonth
		b.EffectiveDemandChargePerMWMonth = DefaultDemandChargePerMWMonth * peakCoincidence
		b.EnergyMarginPerMWh = DefaultEnergyMarginPerMWh
		return b
	}

	b.HasTariff = true
	b.Is4CP = b.Is4CP || t.Is4CP

	blend := t.PeakDemandChargePerKW*DemandBlendPeakWeight +
		t.OffPeakDemandChargePerKW*DemandBlendOffPeakWeight
	b.DemandChargePerMWMonth = blend * 1000
	b.EffectiveDemandChargePerMWMonth = b.DemandChargePerMWMonth * peakCoincidence

	b.EnergyMarginPerMWh = energyMargin(t, loadFactor)

	return b
}

// energyMargin derives the $/MWh wholesale-to-retail spread from a tariff's
// energy rates at the given load factor.
func energyMargin(t *Tariff, loadFactor float64) float64 {
	peakFraction := PeakHourFraction
	if loadFactor > 0.8 {
		// Flat, high-load-factor operation pushes marginal consumption
		// into off-peak hours.
		peakFraction *= 1 - (loadFactor-0.8)*0.5
	}

	blendedRetail := t.EnergyPeakRatePerKWh*peakFraction +
		t.EnergyOffPeakRatePerKWh*(1-peakFraction) +
		t.FuelAdjustmentPerKWh

	margin := (blendedRetail - WholesaleReferenceCostPerKWh) * 1000
	if margin < 0 {
		return 0
	}
	return margin
}

package allocation

import (
	"github.com/DougMackenzie/power-insight-sub001/pkg/market"
	"github.com/DougMackenzie/power-insight-sub001/pkg/revenue"
	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
)

// Result holds the computed residential allocation and its component
// cost-causation shares.
type Result struct {
	Allocation      float64 `json:"allocation"`
	VolumetricShare float64 `json:"volumetric_share"`
	DemandShare     float64 `json:"demand_share"`
	CustomerShare   float64 `json:"customer_share"`
	WeightedBlend   float64 `json:"weighted_blend"`
	RegulatoryLag   float64 `json:"regulatory_lag_factor"`
}

// Allocate computes the fraction of net system cost borne by residential
// customers once the data center has been online for the given number of
// years.
//
// The allocation blends three cost-causation bases: volumetric (energy
// share), demand (peak contribution share), and customer count. Adding
// data-center energy dilutes the volumetric share; its peak contribution
// dilutes the demand share in proportion to peak coincidence, so a firm
// load dilutes more than a flexible one. The customer-count share barely
// moves, since one customer cannot shift a class-count ratio.
//
// Rate cases take years to catch up, so the freshly computed blend phases
// in against the utility's static base allocation over RegulatoryLagYears.
func Allocate(u *spec.Utility, m market.Structure, dcCapacityMW, loadFactor, peakCoincidence float64, yearsOnline int) Result {
	preEnergyMWh := u.PreDCSystemEnergyGWh * 1000
	residentialEnergyMWh := preEnergyMWh * u.ResidentialEnergyShare

	dcAnnualEnergyMWh := dcCapacityMW * loadFactor * revenue.HoursPerYear

	// New load ramps to full consumption over the energy phase-in window.
	phaseIn := float64(yearsOnline) / EnergyPhaseInYears
	if phaseIn > 1 {
		phaseIn = 1
	}
	postEnergyMWh := preEnergyMWh + dcAnnualEnergyMWh*phaseIn

	volumetric := 0.0
	if postEnergyMWh > 0 {
		volumetric = residentialEnergyMWh / postEnergyMWh
	}

	residentialPeakMW := u.SystemPeakMW * ResidentialPeakShare
	dcPeakMW := dcCapacityMW * peakCoincidence * phaseIn
	postPeakMW := u.SystemPeakMW + dcPeakMW

	demand := 0.0
	if postPeakMW > 0 {
		demand = residentialPeakMW / postPeakMW
	}

	// +1 for the data center as a customer of its own class.
	totalCustomers := u.TotalCustomers() + 1
	customer := float64(u.ResidentialCustomers) / float64(totalCustomers)

	weighted := volumetric*VolumetricWeight + demand*DemandWeight + customer*CustomerWeight

	lag := float64(yearsOnline) / RegulatoryLagYears
	if lag > 1 {
		lag = 1
	}
	base := u.BaseResidentialAllocation
	if base == 0 {
		base = m.BaseResidentialAllocation
	}
	adjusted := base*(1-lag) + weighted*lag

	adjusted = m.AdjustAllocation(adjusted)

	return Result{
		Allocation:      clamp(adjusted),
		VolumetricShare: volumetric,
		DemandShare:     demand,
		CustomerShare:   customer,
		WeightedBlend:   weighted,
		RegulatoryLag:   lag,
	}
}

func clamp(v float64) float64 {
	if v < AllocationFloor {
		return AllocationFloor
	}
	if v > AllocationCeiling {
		return AllocationCeiling
	}
	return v
}

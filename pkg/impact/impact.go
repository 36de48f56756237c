package impact

import (
	"github.com/DougMackenzie/power-insight-sub001/pkg/market"
	"github.com/DougMackenzie/power-insight-sub001/pkg/revenue"
	"github.com/DougMackenzie/power-insight-sub001/pkg/tariff"
)

// Input is the immutable parameter set for one net-impact computation.
// Inputs are assumed pre-validated: fractions in [0,1], counts positive.
type Input struct {
	CapacityMW            float64
	LoadFactor            float64
	PeakCoincidence       float64
	ResidentialCustomers  int
	ResidentialAllocation float64
	IncludeCapacityCredit bool
	OnsiteGenerationMW    float64
	Tariff                *tariff.Tariff
	Market                market.Structure

	// Negotiated-contract overrides, used only on the no-tariff path.
	DemandChargePerMWMonth float64
	EnergyMarginPerMWh     float64
}

// Result is the annual net impact of the data-center load on residential
// bills. NetImpact may be negative: a net benefit to the system.
type Result struct {
	PerCustomerMonthly      float64 `json:"per_customer_monthly"`
	AnnualResidentialImpact float64 `json:"annual_residential_impact"`
	GrossCost               float64 `json:"gross_cost"`
	RevenueOffset           float64 `json:"revenue_offset"`
	NetImpact               float64 `json:"net_impact"`
	Metrics                 Metrics `json:"metrics"`
}

// Metrics exposes the intermediate cost and revenue figures behind a
// Result, for consumers that break the impact down.
type Metrics struct {
	EffectivePeakMW      float64           `json:"effective_peak_mw"`
	TransmissionAnnual   float64           `json:"transmission_annual"`
	DistributionAnnual   float64           `json:"distribution_annual"`
	Is4CP                bool              `json:"is_4cp"`
	FourCPSavings        float64           `json:"four_cp_savings"`
	CapacityCostOrCredit float64           `json:"capacity_cost_or_credit"`
	CapacityCredit       float64           `json:"capacity_credit"`
	Revenue              revenue.Breakdown `json:"revenue"`
	Rates                tariff.RateBundle `json:"rates"`
	ProtectionMultiplier float64           `json:"protection_multiplier"`
}

// Compute runs the annual net-impact calculation: infrastructure cost plus
// capacity cost-or-credit, minus the revenue offset, allocated to the
// residential class and divided down to a per-customer monthly figure.
func Compute(in Input) Result {
	rates := tariff.ResolveRates(in.Tariff, in.Market, in.LoadFactor, in.PeakCoincidence)
	if in.Tariff == nil {
		if in.DemandChargePerMWMonth > 0 {
			rates.DemandChargePerMWMonth = in.DemandChargePerMWMonth
			rates.EffectiveDemandChargePerMWMonth = in.DemandChargePerMWMonth * in.PeakCoincidence
		}
		if in.EnergyMarginPerMWh > 0 {
			rates.EnergyMarginPerMWh = in.EnergyMarginPerMWh
		}
	}

	// Onsite generation directly offsets grid draw during peak.
	effectivePeakMW := in.CapacityMW*in.PeakCoincidence - in.OnsiteGenerationMW
	if effectivePeakMW < 0 {
		effectivePeakMW = 0
	}

	var transmissionAnnual, fourCPSavings float64
	if rates.Is4CP {
		// Transmission exposure rides entirely on the four annual
		// coincident-peak intervals, so curtailment during those hours
		// eliminates it proportionally.
		firmCost := in.CapacityMW * rates.FourCPRatePerKWMonth * 1000 * FourCPIntervalsPerYear
		transmissionAnnual = firmCost * in.PeakCoincidence
		fourCPSavings = firmCost - transmissionAnnual
	} else {
		transmissionAnnual = effectivePeakMW * TransmissionCostPerMW / AssetLifeYears
	}
	distributionAnnual := effectivePeakMW * DistributionCostPerMW / AssetLifeYears

	// Capacity cost not already recovered through demand charges.
	demandChargeAnnual := rates.DemandChargePerMWMonth * 12
	netCapacityCostPerMW := rates.CapacityCostPerMWYear - demandChargeAnnual
	if netCapacityCostPerMW < 0 {
		netCapacityCostPerMW = 0
	}
	capacityCostOrCredit := effectivePeakMW * netCapacityCostPerMW

	var capacityCredit float64
	if in.IncludeCapacityCredit {
		curtailableMW := in.CapacityMW * (1 - in.PeakCoincidence)
		capacityCredit = curtailableMW*rates.CapacityCostPerMWYear*DemandResponseCreditFactor +
			in.OnsiteGenerationMW*rates.CapacityCostPerMWYear*DispatchableCreditFactor
		capacityCostOrCredit -= capacityCredit
	}

	rev := revenue.Compute(in.CapacityMW, in.LoadFactor, in.PeakCoincidence,
		rates.DemandChargePerMWMonth, rates.EnergyMarginPerMWh)

	grossCost := transmissionAnnual + distributionAnnual + capacityCostOrCredit

	offset := rev.EnergyMargin*EnergyMarginFlowThrough + rev.DemandRevenue*DemandRevenueSpreadFactor
	offset, protectionMult := tariff.AdjustForProtections(offset, in.Tariff)

	netImpact := grossCost - offset

	annualResidential := netImpact * in.ResidentialAllocation
	perCustomerMonthly := annualResidential / float64(in.ResidentialCustomers) / 12

	return Result{
		PerCustomerMonthly:      perCustomerMonthly,
		AnnualResidentialImpact: annualResidential,
		GrossCost:               grossCost,
		RevenueOffset:           offset,
		NetImpact:               netImpact,
		Metrics: Metrics{
			EffectivePeakMW:      effectivePeakMW,
			TransmissionAnnual:   transmissionAnnual,
			DistributionAnnual:   distributionAnnual,
			Is4CP:                rates.Is4CP,
			FourCPSavings:        fourCPSavings,
			CapacityCostOrCredit: capacityCostOrCredit,
			CapacityCredit:       capacityCredit,
			Revenue:              rev,
			Rates:                rates,
			ProtectionMultiplier: protectionMult,
		},
	}
}

package impact

// Infrastructure cost constants, baseline values from published references.
const (
	TransmissionCostPerMW = 350000.0 // $/MW of peak contribution
	DistributionCostPerMW = 150000.0 // $/MW of peak contribution

	// AssetLifeYears annualizes transmission and distribution capital.
	AssetLifeYears = 20.0

	// FourCPIntervalsPerYear is the number of coincident-peak intervals
	// that define 4CP transmission exposure.
	FourCPIntervalsPerYear = 4.0
)

// Revenue offset and credit factors.
const (
	// EnergyMarginFlowThrough is the share of energy margin that flows
	// through to offset system costs.
	EnergyMarginFlowThrough = 0.85

	// DemandRevenueSpreadFactor is the share of demand revenue counted as
	// a fixed-cost spreading benefit.
	DemandRevenueSpreadFactor = 0.15

	// DemandResponseCreditFactor values curtailable MW as a fraction of
	// the capacity cost rate.
	DemandResponseCreditFactor = 0.80

	// DispatchableCreditFactor values onsite generation as a fraction of
	// the capacity cost rate.
	DispatchableCreditFactor = 0.95
)

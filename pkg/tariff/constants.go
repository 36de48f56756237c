package tariff

// System default rates, used when no utility-specific tariff is selected.
const (
	DefaultDemandChargePerMWMonth = 9050.0 // $/MW-month
	DefaultEnergyMarginPerMWh     = 4.88   // $/MWh wholesale-to-retail spread

	// FourCPRatePerKWMonth is the transmission allocation rate applied to
	// contribution during the four annual coincident-peak intervals.
	FourCPRatePerKWMonth = 5.50 // $/kW-month
)

// Rate derivation constants.
const (
	// Demand charges blend 60% coincident-peak and 40% non-coincident
	// components.
	DemandBlendPeakWeight    = 0.60
	DemandBlendOffPeakWeight = 0.40

	// PeakHourFraction is the nominal share of consumption billed at peak
	// energy rates. High-load-factor operation skews it toward off-peak.
	PeakHourFraction = 0.35

	// WholesaleReferenceCostPerKWh is the supply cost netted out of the
	// blended retail rate to obtain the utility's margin.
	WholesaleReferenceCostPerKWh = 0.050 // $/kWh
)

// Protection adjustment bonuses, each multiplicative on the base revenue
// offset.
const (
	MinimumDemandBonusFactor     = 0.04 // scaled by the billing floor fraction
	RatchetBonus                 = 0.03
	TakeOrPayBonus               = 0.05
	ProtectionScoreThreshold     = 12
	ProtectionScoreBonusPerPoint = 0.01
)

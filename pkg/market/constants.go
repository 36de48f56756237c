package market

// Capacity and allocation reference constants.
const (
	// BaseCapacityCostPerMWYear is the embedded cost of new firm capacity,
	// NREL ATB 2024 representative value.
	BaseCapacityCostPerMWYear = 150000.0 // $/MW-year

	// ERCOTAllocationMultiplier discounts residential allocation in the
	// energy-only Texas market, where 4CP transmission billing makes the
	// load pay directly. Canonical value; see DESIGN.md for the authoring
	// divergence in the reference material.
	ERCOTAllocationMultiplier = 0.85
)

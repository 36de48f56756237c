package market

// ISO identifies the wholesale market region a utility operates in.
type ISO string

const (
	Regulated ISO = "regulated" // vertically integrated, state PUC oversight
	PJM       ISO = "pjm"
	ERCOT     ISO = "ercot"
	MISO      ISO = "miso"
	SPP       ISO = "spp"
)

// Structure carries the per-market constants used by the allocation and
// impact models. Values reflect 2024 market conditions.
type Structure struct {
	ISO                       ISO     `json:"iso"`
	HasCapacityMarket         bool    `json:"has_capacity_market"`
	CapacityPricePerMWDay     float64 `json:"capacity_price_per_mw_day"` // most recent auction clearing price
	BaseResidentialAllocation float64 `json:"base_residential_allocation"`
	CapacityCostPassThrough   float64 `json:"capacity_cost_pass_through"`
	TransmissionAllocation    float64 `json:"transmission_allocation"`
}

var structures = map[ISO]Structure{
	Regulated: {
		ISO:                       Regulated,
		BaseResidentialAllocation: 0.40,
		CapacityCostPassThrough:   0.40,
		TransmissionAllocation:    0.35,
	},
	PJM: {
		ISO:                       PJM,
		HasCapacityMarket:         true,
		CapacityPricePerMWDay:     269.92, // 2025/26 base residual auction
		BaseResidentialAllocation: 0.35,
		CapacityCostPassThrough:   0.50,
		TransmissionAllocation:    0.35,
	},
	ERCOT: {
		ISO:                       ERCOT,
		BaseResidentialAllocation: 0.30,
		CapacityCostPassThrough:   0.25,
		TransmissionAllocation:    0.35,
	},
	MISO: {
		ISO:                       MISO,
		HasCapacityMarket:         true,
		CapacityPricePerMWDay:     30.00,
		BaseResidentialAllocation: 0.38,
		CapacityCostPassThrough:   0.35,
		TransmissionAllocation:    0.35,
	},
	SPP: {
		ISO:                       SPP,
		BaseResidentialAllocation: 0.40,
		CapacityCostPassThrough:   0.40,
		TransmissionAllocation:    0.35,
	},
}

// Lookup returns the constant bundle for an ISO/RTO tag. Unknown or empty
// tags fall back to the regulated default.
func Lookup(tag string) Structure {
	if s, ok := structures[ISO(tag)]; ok {
		return s
	}
	return structures[Regulated]
}

// CapacityCostPerMWYear returns the annual cost of serving one MW of firm
// peak demand in this market.
//
// Markets with a capacity auction blend the embedded build-out reference
// with the cleared capacity price at the market's pass-through fraction.
// ERCOT is energy-only: adequacy is recovered through energy prices, so
// only half the embedded reference shows up as an allocable cost.
func (s Structure) CapacityCostPerMWYear() float64 {
	if s.HasCapacityMarket {
		clearing := s.CapacityPricePerMWDay * 365
		return BaseCapacityCostPerMWYear*0.5 + clearing*s.CapacityCostPassThrough*0.5
	}
	if s.ISO == ERCOT {
		return BaseCapacityCostPerMWYear * 0.5
	}
	return BaseCapacityCostPerMWYear
}

// AdjustAllocation applies market-structure pressure to a computed
// residential allocation fraction.
//
// Under ERCOT's 4CP methodology the load pays for transmission directly,
// which shields residential customers. High capacity-market clearing
// prices work the other way, spreading cost pressure across all classes.
func (s Structure) AdjustAllocation(allocation float64) float64 {
	if s.ISO == ERCOT {
		return allocation * ERCOTAllocationMultiplier
	}
	if s.HasCapacityMarket && s.CapacityPricePerMWDay > 100 {
		m := 1 + (s.CapacityPricePerMWDay-100)/1000
		if m > 1.15 {
			m = 1.15
		}
		return allocation * m
	}
	return allocation
}

package tariff

// Tariff is a utility-specific large-load rate schedule. Demand charges are
// $/kW-month, energy rates $/kWh, matching how schedules are published.
type Tariff struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Utility string `yaml:"utility" json:"utility"`
	State   string `yaml:"state" json:"state"`
	ISO     string `yaml:"iso" json:"iso"`

	PeakDemandChargePerKW    float64 `yaml:"peak_demand_charge_per_kw" json:"peak_demand_charge_per_kw"`
	OffPeakDemandChargePerKW float64 `yaml:"off_peak_demand_charge_per_kw" json:"off_peak_demand_charge_per_kw"`
	EnergyPeakRatePerKWh     float64 `yaml:"energy_peak_rate_per_kwh" json:"energy_peak_rate_per_kwh"`
	EnergyOffPeakRatePerKWh  float64 `yaml:"energy_off_peak_rate_per_kwh" json:"energy_off_peak_rate_per_kwh"`
	FuelAdjustmentPerKWh     float64 `yaml:"fuel_adjustment_per_kwh" json:"fuel_adjustment_per_kwh"`

	// Is4CP marks schedules that allocate transmission by four-coincident-peak
	// contribution. ERCOT schedules are 4CP whether or not this is set.
	Is4CP bool `yaml:"is_4cp" json:"is_4cp"`

	Protections Protections `yaml:"protections" json:"protections"`
}

// Protections are the ratepayer-protection terms attached to a schedule.
type Protections struct {
	// MinimumDemandPct is the billing floor as a percentage of contract
	// demand. A 90% floor means the customer pays for 90% of contract
	// demand even when idle.
	MinimumDemandPct   float64 `yaml:"minimum_demand_pct" json:"minimum_demand_pct"`
	DemandRatchet      bool    `yaml:"demand_ratchet" json:"demand_ratchet"`
	TakeOrPay          bool    `yaml:"take_or_pay" json:"take_or_pay"`
	ContractYears      int     `yaml:"contract_years" json:"contract_years"`
	CIAC               bool    `yaml:"ciac" json:"ciac"`
	ExitFee            bool    `yaml:"exit_fee" json:"exit_fee"`
	CreditRequirements bool    `yaml:"credit_requirements" json:"credit_requirements"`
	DCSpecific         bool    `yaml:"dc_specific" json:"dc_specific"`
	Collateral         bool    `yaml:"collateral" json:"collateral"`
	MinLoadMW          float64 `yaml:"min_load_mw" json:"min_load_mw"`
}

// Rating buckets a protection score.
type Rating string

const (
	RatingHigh Rating = "High"
	RatingMid  Rating = "Mid"
	RatingLow  Rating = "Low"
)

// Score computes the protection score from the published scoring
// methodology. Maximum is 18 points.
func (p Protections) Score() int {
	score := 0

	// Billing floor: >=90% (+3), 80-89% (+2), 60-79% (+1)
	switch {
	case p.MinimumDemandPct >= 90:
		score += 3
	case p.MinimumDemandPct >= 80:
		score += 2
	case p.MinimumDemandPct >= 60:
		score += 1
	}

	// Contract term: >=15yr (+3), 10-14yr (+2), 5-9yr (+1)
	switch {
	case p.ContractYears >= 15:
		score += 3
	case p.ContractYears >= 10:
		score += 2
	case p.ContractYears >= 5:
		score += 1
	}

	if p.CIAC {
		score += 2
	}
	if p.TakeOrPay {
		score += 2
	}
	if p.ExitFee {
		score += 2
	}
	if p.DemandRatchet {
		score++
	}
	if p.CreditRequirements {
		score++
	}
	if p.DCSpecific {
		score += 2
	}
	if p.Collateral {
		score++
	}
	if p.MinLoadMW >= 1 {
		score++
	}

	return score
}

// ProtectionScore is the tariff's protection score.
func (t *Tariff) ProtectionScore() int {
	return t.Protections.Score()
}

// ProtectionRating buckets the tariff's protection score.
func (t *Tariff) ProtectionRating() Rating {
	score := t.ProtectionScore()
	switch {
	case score >= 14:
		return RatingHigh
	case score >= 8:
		return RatingMid
	default:
		return RatingLow
	}
}

package spec

// ProjectSpec is the top-level input for one projection run. All fields are
// treated as an immutable snapshot for the duration of a computation.
type ProjectSpec struct {
	SpecVersion string     `yaml:"spec_version" json:"spec_version"`
	UtilityID   string     `yaml:"utility_id,omitempty" json:"utility_id,omitempty"`
	TariffID    string     `yaml:"tariff_id,omitempty" json:"tariff_id,omitempty"`
	Utility     Utility    `yaml:"utility" json:"utility"`
	DataCenter  DataCenter `yaml:"data_center" json:"data_center"`
	Projection  Projection `yaml:"projection" json:"projection"`
}

// Utility describes the host utility's customer base and system scale.
type Utility struct {
	Name                      string  `yaml:"name" json:"name"`
	ResidentialCustomers      int     `yaml:"residential_customers" json:"residential_customers"`
	CommercialCustomers       int     `yaml:"commercial_customers" json:"commercial_customers"`
	IndustrialCustomers       int     `yaml:"industrial_customers" json:"industrial_customers"`
	AvgMonthlyBill            float64 `yaml:"avg_monthly_bill" json:"avg_monthly_bill"`
	AvgMonthlyUsageKWh        float64 `yaml:"avg_monthly_usage_kwh" json:"avg_monthly_usage_kwh"`
	PreDCSystemEnergyGWh      float64 `yaml:"pre_dc_system_energy_gwh" json:"pre_dc_system_energy_gwh"`
	ResidentialEnergyShare    float64 `yaml:"residential_energy_share" json:"residential_energy_share"`
	SystemPeakMW              float64 `yaml:"system_peak_mw" json:"system_peak_mw"`
	BaseResidentialAllocation float64 `yaml:"base_residential_allocation" json:"base_residential_allocation"`
	ISO                       string  `yaml:"iso" json:"iso"`
}

// TotalCustomers returns the count across all customer classes.
func (u *Utility) TotalCustomers() int {
	return u.ResidentialCustomers + u.CommercialCustomers + u.IndustrialCustomers
}

// DataCenter describes the proposed load and its per-scenario operating
// parameters. Firm parameters apply when the load runs flat out; flex
// parameters apply when it curtails during system peaks.
type DataCenter struct {
	CapacityMW          float64 `yaml:"capacity_mw" json:"capacity_mw"`
	FirmLoadFactor      float64 `yaml:"firm_load_factor" json:"firm_load_factor"`
	FirmPeakCoincidence float64 `yaml:"firm_peak_coincidence" json:"firm_peak_coincidence"`
	FlexLoadFactor      float64 `yaml:"flex_load_factor" json:"flex_load_factor"`
	FlexPeakCoincidence float64 `yaml:"flex_peak_coincidence" json:"flex_peak_coincidence"`
	OnsiteGenerationMW  float64 `yaml:"onsite_generation_mw" json:"onsite_generation_mw"`
	OnsiteAvailability  float64 `yaml:"onsite_availability" json:"onsite_availability"`

	// Rate overrides for projects with a negotiated contract instead of a
	// published tariff. Zero means use system defaults.
	DemandChargePerMWMonth float64 `yaml:"demand_charge_per_mw_month,omitempty" json:"demand_charge_per_mw_month,omitempty"`
	EnergyMarginPerMWh     float64 `yaml:"energy_margin_per_mwh,omitempty" json:"energy_margin_per_mwh,omitempty"`
}

// EffectiveOnsiteMW is the onsite generation derated by its availability
// during system peak hours.
func (d *DataCenter) EffectiveOnsiteMW() float64 {
	return d.OnsiteGenerationMW * d.OnsiteAvailability
}

// Projection holds the time-phasing parameters for a run.
type Projection struct {
	BaseYear             int     `yaml:"base_year" json:"base_year"`
	Years                int     `yaml:"years" json:"years"`
	GeneralInflation     float64 `yaml:"general_inflation" json:"general_inflation"`
	AnnualUpgradePct     float64 `yaml:"annual_upgrade_pct" json:"annual_upgrade_pct"`
	GridModernizationPct float64 `yaml:"grid_modernization_pct" json:"grid_modernization_pct"`
}

// BaselineRate is the annual growth rate of the no-data-center bill.
func (p *Projection) BaselineRate() float64 {
	return p.GeneralInflation + p.AnnualUpgradePct + p.GridModernizationPct
}

// Default projection and operating parameters, applied to zero fields.
const (
	DefaultBaseYear             = 2025
	DefaultProjectionYears      = 10
	DefaultGeneralInflation     = 0.025
	DefaultAnnualUpgradePct     = 0.015
	DefaultGridModernizationPct = 0.005

	DefaultFirmLoadFactor      = 0.80
	DefaultFirmPeakCoincidence = 1.0
	DefaultFlexLoadFactor      = 0.95
	// 25% curtailable, per the EPRI DCFlex field demonstration.
	DefaultFlexPeakCoincidence = 0.75
)

// ApplyDefaults fills unset projection and data-center fields in place.
func (ps *ProjectSpec) ApplyDefaults() {
	p := &ps.Projection
	if p.BaseYear == 0 {
		p.BaseYear = DefaultBaseYear
	}
	if p.Years == 0 {
		p.Years = DefaultProjectionYears
	}
	if p.GeneralInflation == 0 {
		p.GeneralInflation = DefaultGeneralInflation
	}
	if p.AnnualUpgradePct == 0 {
		p.AnnualUpgradePct = DefaultAnnualUpgradePct
	}
	if p.GridModernizationPct == 0 {
		p.GridModernizationPct = DefaultGridModernizationPct
	}

	d := &ps.DataCenter
	if d.FirmLoadFactor == 0 {
		d.FirmLoadFactor = DefaultFirmLoadFactor
	}
	if d.FirmPeakCoincidence == 0 {
		d.FirmPeakCoincidence = DefaultFirmPeakCoincidence
	}
	if d.FlexLoadFactor == 0 {
		d.FlexLoadFactor = DefaultFlexLoadFactor
	}
	if d.FlexPeakCoincidence == 0 {
		d.FlexPeakCoincidence = DefaultFlexPeakCoincidence
	}
	if d.OnsiteAvailability == 0 {
		d.OnsiteAvailability = 1.0
	}
}

package validation

import (
	"fmt"

	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
)

// ValidateSchema checks a parsed ProjectSpec for structural correctness
// before any computation. The engine packages themselves assume validated
// inputs, so this is the one place out-of-range values are caught.
func ValidateSchema(ps *spec.ProjectSpec) *Report {
	r := NewReport()

	validateUtility(ps, r)
	validateDataCenter(ps, r)
	validateProjection(ps, r)

	return r
}

func validateUtility(ps *spec.ProjectSpec, r *Report) {
	u := &ps.Utility

	if u.ResidentialCustomers <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "residential_customers must be greater than 0",
			SpecPath:    "utility.residential_customers",
			ActualValue: u.ResidentialCustomers,
			Expected:    "> 0",
		})
	}
	if u.CommercialCustomers < 0 || u.IndustrialCustomers < 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "customer counts must be non-negative",
			SpecPath: "utility",
		})
	}
	if u.AvgMonthlyBill <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "avg_monthly_bill must be greater than 0",
			SpecPath:    "utility.avg_monthly_bill",
			ActualValue: u.AvgMonthlyBill,
			Expected:    "> 0",
		})
	}
	if u.PreDCSystemEnergyGWh <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "pre_dc_system_energy_gwh must be greater than 0",
			SpecPath:    "utility.pre_dc_system_energy_gwh",
			ActualValue: u.PreDCSystemEnergyGWh,
			Expected:    "> 0",
		})
	}
	if u.SystemPeakMW <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "system_peak_mw must be greater than 0",
			SpecPath:    "utility.system_peak_mw",
			ActualValue: u.SystemPeakMW,
			Expected:    "> 0",
		})
	}
	if u.ResidentialEnergyShare < 0 || u.ResidentialEnergyShare > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("residential_energy_share %.3f must be a fraction", u.ResidentialEnergyShare),
			SpecPath:    "utility.residential_energy_share",
			ActualValue: u.ResidentialEnergyShare,
			Expected:    "0-1",
		})
	}
	if u.BaseResidentialAllocation < 0 || u.BaseResidentialAllocation > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("base_residential_allocation %.3f must be a fraction", u.BaseResidentialAllocation),
			SpecPath:    "utility.base_residential_allocation",
			ActualValue: u.BaseResidentialAllocation,
			Expected:    "0-1",
		})
	}
}

func validateDataCenter(ps *spec.ProjectSpec, r *Report) {
	d := &ps.DataCenter

	if d.CapacityMW < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "capacity_mw must be non-negative",
			SpecPath:    "data_center.capacity_mw",
			ActualValue: d.CapacityMW,
			Expected:    ">= 0",
		})
	}

	fractions := map[string]float64{
		"firm_load_factor":      d.FirmLoadFactor,
		"firm_peak_coincidence": d.FirmPeakCoincidence,
		"flex_load_factor":      d.FlexLoadFactor,
		"flex_peak_coincidence": d.FlexPeakCoincidence,
		"onsite_availability":   d.OnsiteAvailability,
	}
	for name, v := range fractions {
		if v < 0 || v > 1 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("data_center.%s %.3f must be a fraction", name, v),
				SpecPath:    fmt.Sprintf("data_center.%s", name),
				ActualValue: v,
				Expected:    "0-1",
			})
		}
	}

	// Flexibility only ever reduces peak contribution.
	if d.FlexPeakCoincidence >= d.FirmPeakCoincidence {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("flex_peak_coincidence (%.2f) must be less than firm_peak_coincidence (%.2f)", d.FlexPeakCoincidence, d.FirmPeakCoincidence),
			SpecPath:    "data_center.flex_peak_coincidence",
			ActualValue: d.FlexPeakCoincidence,
			Expected:    fmt.Sprintf("< %.2f", d.FirmPeakCoincidence),
			Suggestions: []string{"A flexible load curtails during peaks; its coincidence must sit below the firm case"},
		})
	}

	if d.OnsiteGenerationMW < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "onsite_generation_mw must be non-negative",
			SpecPath:    "data_center.onsite_generation_mw",
			ActualValue: d.OnsiteGenerationMW,
			Expected:    ">= 0",
		})
	}
}

func validateProjection(ps *spec.ProjectSpec, r *Report) {
	p := &ps.Projection

	if p.Years < 1 || p.Years > 40 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("projection.years %d is outside valid range (1-40)", p.Years),
			SpecPath:    "projection.years",
			ActualValue: p.Years,
			Expected:    "1-40",
		})
	}
	if p.GeneralInflation < 0 || p.GeneralInflation >= 0.5 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("general_inflation %.4f must be >= 0 and < 0.5", p.GeneralInflation),
			SpecPath:    "projection.general_inflation",
			ActualValue: p.GeneralInflation,
			Expected:    "0 <= rate < 0.5",
		})
	}
}

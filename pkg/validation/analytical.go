package validation

import (
	"fmt"

	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
)

// ValidateAnalytical runs plausibility checks that need the numbers, not
// just the shapes. Findings here are advisory: the projection still runs.
func ValidateAnalytical(ps *spec.ProjectSpec) *Report {
	r := NewReport()

	u := &ps.Utility
	d := &ps.DataCenter

	if u.SystemPeakMW > 0 && d.CapacityMW > u.SystemPeakMW*0.5 {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("data center capacity (%.0f MW) exceeds half the system peak (%.0f MW); allocation shares will move sharply", d.CapacityMW, u.SystemPeakMW),
			SpecPath:    "data_center.capacity_mw",
			ActualValue: d.CapacityMW,
		})
	}

	if d.OnsiteGenerationMW > d.CapacityMW {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("onsite generation (%.0f MW) exceeds nameplate capacity (%.0f MW)", d.OnsiteGenerationMW, d.CapacityMW),
			SpecPath:    "data_center.onsite_generation_mw",
			ActualValue: d.OnsiteGenerationMW,
			Expected:    fmt.Sprintf("<= %.0f", d.CapacityMW),
		})
	}

	if u.PreDCSystemEnergyGWh > 0 {
		dcEnergyGWh := d.CapacityMW * d.FirmLoadFactor * 8760 / 1000
		if dcEnergyGWh > u.PreDCSystemEnergyGWh {
			r.AddWarning(Result{
				Level:       LevelAnalytical,
				Message:     fmt.Sprintf("data center annual energy (%.0f GWh) exceeds the utility's entire pre-load consumption (%.0f GWh)", dcEnergyGWh, u.PreDCSystemEnergyGWh),
				SpecPath:    "data_center.capacity_mw",
				ActualValue: dcEnergyGWh,
			})
		}
	}

	if d.FlexLoadFactor < d.FirmLoadFactor {
		r.AddInfo(Result{
			Level:    LevelAnalytical,
			Message:  "flex_load_factor below firm_load_factor; flexible operation usually raises load factor by filling off-peak hours",
			SpecPath: "data_center.flex_load_factor",
		})
	}

	return r
}

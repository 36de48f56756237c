// Package catalog holds built-in reference records: utility profiles and
// sample large-load tariffs compiled from public sources (EIA, utility
// filings, annual reports; 2024 figures where available). The projection
// engine never reads these directly; callers resolve a profile or tariff
// and pass the records in.
package catalog

import (
	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
	"github.com/DougMackenzie/power-insight-sub001/pkg/tariff"
)

// Profile is one published utility reference record.
type Profile struct {
	ID        string `json:"id"`
	ShortName string `json:"short_name"`
	Region    string `json:"region"`

	Utility spec.Utility `json:"utility"`

	HasDCActivity       bool    `json:"has_dc_activity"`
	DefaultDataCenterMW float64 `json:"default_data_center_mw"`
	Notes               string  `json:"notes,omitempty"`
}

// Utilities returns a copy of every built-in utility profile.
func Utilities() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// UtilityByID looks up a built-in utility profile.
func UtilityByID(id string) (Profile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Tariffs returns a copy of every built-in tariff.
func Tariffs() []tariff.Tariff {
	out := make([]tariff.Tariff, len(tariffs))
	copy(out, tariffs)
	return out
}

// TariffByID looks up a built-in tariff.
func TariffByID(id string) (*tariff.Tariff, bool) {
	for i := range tariffs {
		if tariffs[i].ID == id {
			t := tariffs[i]
			return &t, true
		}
	}
	return nil, false
}

// DefaultUtility is the representative mid-size utility used when a project
// names no catalog profile and supplies no inline record.
func DefaultUtility() spec.Utility {
	return spec.Utility{
		Name:                      "Representative Utility",
		ResidentialCustomers:      560000,
		CommercialCustomers:       85000,
		IndustrialCustomers:       5000,
		AvgMonthlyBill:            130,
		AvgMonthlyUsageKWh:        1050,
		PreDCSystemEnergyGWh:      20000,
		ResidentialEnergyShare:    0.35,
		SystemPeakMW:              4000,
		BaseResidentialAllocation: 0.40,
		ISO:                       "regulated",
	}
}

// DefaultDataCenter is the representative proposal paired with
// DefaultUtility.
func DefaultDataCenter() spec.DataCenter {
	return spec.DataCenter{
		CapacityMW:          1000,
		FirmLoadFactor:      spec.DefaultFirmLoadFactor,
		FirmPeakCoincidence: spec.DefaultFirmPeakCoincidence,
		FlexLoadFactor:      spec.DefaultFlexLoadFactor,
		FlexPeakCoincidence: spec.DefaultFlexPeakCoincidence,
		OnsiteGenerationMW:  200,
		OnsiteAvailability:  1.0,
	}
}

package catalog

import "github.com/DougMackenzie/power-insight-sub001/pkg/spec"

// Built-in utility profiles. Residential energy share and pre-load system
// energy are derived from customer counts and average usage where the
// utility does not publish them directly.
var profiles = []Profile{
	{
		ID:        "pso-oklahoma",
		ShortName: "PSO Oklahoma",
		Region:    "Southwest",
		Utility: spec.Utility{
			Name:                      "Public Service Company of Oklahoma",
			ResidentialCustomers:      460000,
			CommercialCustomers:       100000,
			IndustrialCustomers:       15000,
			AvgMonthlyBill:            130,
			AvgMonthlyUsageKWh:        1100,
			PreDCSystemEnergyGWh:      19000,
			ResidentialEnergyShare:    0.32,
			SystemPeakMW:              4400,
			BaseResidentialAllocation: 0.40,
			ISO:                       "spp",
		},
		HasDCActivity:       true,
		DefaultDataCenterMW: 1000,
		Notes:               "Facing a 31% power deficit by 2031 with 779 MW of new large load requests",
	},
	{
		ID:        "duke-carolinas",
		ShortName: "Duke Carolinas",
		Region:    "Southeast",
		Utility: spec.Utility{
			Name:                      "Duke Energy Carolinas",
			ResidentialCustomers:      2507000,
			CommercialCustomers:       380000,
			IndustrialCustomers:       39000,
			AvgMonthlyBill:            135,
			AvgMonthlyUsageKWh:        1000,
			PreDCSystemEnergyGWh:      86000,
			ResidentialEnergyShare:    0.35,
			SystemPeakMW:              20700,
			BaseResidentialAllocation: 0.40,
			ISO:                       "regulated",
		},
		HasDCActivity:       true,
		DefaultDataCenterMW: 1000,
		Notes:               "Growing data center presence in the Charlotte metro area",
	},
	{
		ID:        "georgia-power",
		ShortName: "Georgia Power",
		Region:    "Southeast",
		Utility: spec.Utility{
			Name:                      "Georgia Power",
			ResidentialCustomers:      2400000,
			CommercialCustomers:       370000,
			IndustrialCustomers:       34000,
			AvgMonthlyBill:            153,
			AvgMonthlyUsageKWh:        1150,
			PreDCSystemEnergyGWh:      82000,
			ResidentialEnergyShare:    0.37,
			SystemPeakMW:              17100,
			BaseResidentialAllocation: 0.40,
			ISO:                       "regulated",
		},
		HasDCActivity:       true,
		DefaultDataCenterMW: 1200,
		Notes:               "Projecting 8,200 MW of load growth by 2030, much of it data centers",
	},
	{
		ID:        "aep-ohio",
		ShortName: "AEP Ohio",
		Region:    "Midwest",
		Utility: spec.Utility{
			Name:                      "AEP Ohio",
			ResidentialCustomers:      1200000,
			CommercialCustomers:       270000,
			IndustrialCustomers:       30000,
			AvgMonthlyBill:            135,
			AvgMonthlyUsageKWh:        900,
			PreDCSystemEnergyGWh:      46000,
			ResidentialEnergyShare:    0.30,
			SystemPeakMW:              12000,
			BaseResidentialAllocation: 0.35,
			ISO:                       "pjm",
		},
		HasDCActivity:       true,
		DefaultDataCenterMW: 1000,
		Notes:               "Proposed a dedicated data center rate class in 2024",
	},
	{
		ID:        "dominion-virginia",
		ShortName: "Dominion Virginia",
		Region:    "Mid-Atlantic",
		Utility: spec.Utility{
			Name:                      "Dominion Energy Virginia",
			ResidentialCustomers:      2500000,
			CommercialCustomers:       280000,
			IndustrialCustomers:       20000,
			AvgMonthlyBill:            145,
			AvgMonthlyUsageKWh:        1050,
			PreDCSystemEnergyGWh:      95000,
			ResidentialEnergyShare:    0.33,
			SystemPeakMW:              18000,
			BaseResidentialAllocation: 0.35,
			ISO:                       "pjm",
		},
		HasDCActivity:       true,
		DefaultDataCenterMW: 1500,
		Notes:               "Forecasting 9 GW of data center peak within ten years",
	},
	{
		ID:        "xcel-colorado",
		ShortName: "Xcel Colorado",
		Region:    "Mountain West",
		Utility: spec.Utility{
			Name:                      "Xcel Energy Colorado",
			ResidentialCustomers:      1400000,
			CommercialCustomers:       180000,
			IndustrialCustomers:       20000,
			AvgMonthlyBill:            105,
			AvgMonthlyUsageKWh:        700,
			PreDCSystemEnergyGWh:      34000,
			ResidentialEnergyShare:    0.34,
			SystemPeakMW:              7200,
			BaseResidentialAllocation: 0.40,
			ISO:                       "regulated",
		},
		HasDCActivity:       true,
		DefaultDataCenterMW: 600,
		Notes:               "Data centers expected to drive two-thirds of new demand",
	},
	{
		ID:        "ercot-texas",
		ShortName: "ERCOT Texas",
		Region:    "Texas",
		Utility: spec.Utility{
			Name:                      "ERCOT (Texas Grid)",
			ResidentialCustomers:      12000000,
			CommercialCustomers:       12500000,
			IndustrialCustomers:       1500000,
			AvgMonthlyBill:            140,
			AvgMonthlyUsageKWh:        1100,
			PreDCSystemEnergyGWh:      450000,
			ResidentialEnergyShare:    0.35,
			SystemPeakMW:              85508,
			BaseResidentialAllocation: 0.30,
			ISO:                       "ercot",
		},
		HasDCActivity:       true,
		DefaultDataCenterMW: 3000,
		Notes:               "Data centers account for 46% of projected load growth",
	},
}

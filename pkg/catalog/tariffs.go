package catalog

import "github.com/DougMackenzie/power-insight-sub001/pkg/tariff"

// Built-in large-load tariffs. Rates are representative of filed schedules,
// not quotes; protection attributes follow the published scoring sheet.
var tariffs = []tariff.Tariff{
	{
		ID:                       "georgia-power-pll-ga",
		Name:                     "Plant Load - Large (PLL)",
		Utility:                  "Georgia Power",
		State:                    "Georgia",
		ISO:                      "regulated",
		PeakDemandChargePerKW:    12.40,
		OffPeakDemandChargePerKW: 5.10,
		EnergyPeakRatePerKWh:     0.0612,
		EnergyOffPeakRatePerKWh:  0.0488,
		FuelAdjustmentPerKWh:     0.0065,
		Protections: tariff.Protections{
			MinimumDemandPct:   95,
			DemandRatchet:      true,
			TakeOrPay:          true,
			ContractYears:      15,
			CIAC:               true,
			ExitFee:            true,
			CreditRequirements: true,
			DCSpecific:         true,
			Collateral:         true,
			MinLoadMW:          25,
		},
	},
	{
		ID:                       "aep-ohio-gs4-oh",
		Name:                     "General Service - Large (GS-4)",
		Utility:                  "AEP Ohio",
		State:                    "Ohio",
		ISO:                      "pjm",
		PeakDemandChargePerKW:    9.85,
		OffPeakDemandChargePerKW: 4.20,
		EnergyPeakRatePerKWh:     0.0584,
		EnergyOffPeakRatePerKWh:  0.0471,
		FuelAdjustmentPerKWh:     0.0052,
		Protections: tariff.Protections{
			MinimumDemandPct: 85,
			DemandRatchet:    true,
			ContractYears:    12,
			ExitFee:          true,
			DCSpecific:       true,
			MinLoadMW:        25,
		},
	},
	{
		ID:                       "oncor-lts-tx",
		Name:                     "Large Transmission Service",
		Utility:                  "Oncor",
		State:                    "Texas",
		ISO:                      "ercot",
		PeakDemandChargePerKW:    4.35,
		OffPeakDemandChargePerKW: 1.95,
		EnergyPeakRatePerKWh:     0.0556,
		EnergyOffPeakRatePerKWh:  0.0462,
		FuelAdjustmentPerKWh:     0.0041,
		Is4CP:                    true,
		Protections: tariff.Protections{
			MinimumDemandPct:   60,
			ContractYears:      5,
			CreditRequirements: true,
		},
	},
	{
		ID:                       "pso-lps-ok",
		Name:                     "Large Power and Light (LPL)",
		Utility:                  "Public Service Company of Oklahoma",
		State:                    "Oklahoma",
		ISO:                      "spp",
		PeakDemandChargePerKW:    8.60,
		OffPeakDemandChargePerKW: 3.75,
		EnergyPeakRatePerKWh:     0.0571,
		EnergyOffPeakRatePerKWh:  0.0454,
		FuelAdjustmentPerKWh:     0.0058,
		Protections: tariff.Protections{
			MinimumDemandPct: 80,
			DemandRatchet:    true,
			ContractYears:    10,
			TakeOrPay:        true,
			MinLoadMW:        10,
		},
	},
}

package impact

import (
	"math"
	"testing"

	"github.com/DougMackenzie/power-insight-sub001/pkg/market"
	"github.com/DougMackenzie/power-insight-sub001/pkg/tariff"
)

func firmInput() Input {
	return Input{
		CapacityMW:            1000,
		LoadFactor:            0.80,
		PeakCoincidence:       1.0,
		ResidentialCustomers:  560000,
		ResidentialAllocation: 0.40,
		Market:                market.Lookup("regulated"),
	}
}

func TestComputeFirmDefaultPath(t *testing.T) {
	res := Compute(firmInput())

	if res.Metrics.EffectivePeakMW != 1000 {
		t.Errorf("effective peak = %v MW, want 1000", res.Metrics.EffectivePeakMW)
	}

	// 1000 MW * $350K / 20yr and * $150K / 20yr.
	if math.Abs(res.Metrics.TransmissionAnnual-17_500_000) > 1 {
		t.Errorf("transmission = $%.0f, want $17.5M", res.Metrics.TransmissionAnnual)
	}
	if math.Abs(res.Metrics.DistributionAnnual-7_500_000) > 1 {
		t.Errorf("distribution = $%.0f, want $7.5M", res.Metrics.DistributionAnnual)
	}

	// Capacity cost net of annual demand charges: 150000 - 9050*12 = 41400/MW.
	if math.Abs(res.Metrics.CapacityCostOrCredit-41_400_000) > 1 {
		t.Errorf("capacity cost = $%.0f, want $41.4M", res.Metrics.CapacityCostOrCredit)
	}

	if res.Metrics.Is4CP {
		t.Error("regulated market should not bill 4CP")
	}
	if res.NetImpact != res.GrossCost-res.RevenueOffset {
		t.Error("net impact should equal gross minus offset")
	}

	// Per-customer figure follows the allocation chain exactly.
	want := res.NetImpact * 0.40 / 560000 / 12
	if math.Abs(res.PerCustomerMonthly-want) > 1e-9 {
		t.Errorf("per customer = %v, want %v", res.PerCustomerMonthly, want)
	}
}

func TestComputeNetImpactMonotonicInCoincidence(t *testing.T) {
	// On the default rate path, more peak contribution always costs the
	// system more net of revenue.
	prev := math.Inf(-1)
	for pc := 0.0; pc <= 1.0; pc += 0.05 {
		in := firmInput()
		in.PeakCoincidence = pc
		net := Compute(in).NetImpact
		if net <= prev {
			t.Fatalf("net impact fell from %v to %v at pc=%v", prev, net, pc)
		}
		prev = net
	}
}

func TestCompute4CPProportionalToCoincidence(t *testing.T) {
	in := firmInput()
	in.Market = market.Lookup("ercot")
	firm := Compute(in)

	in.PeakCoincidence = 0.25
	flex := Compute(in)

	if !firm.Metrics.Is4CP {
		t.Fatal("ercot input should bill 4CP")
	}

	// 4CP transmission rides only on coincident-peak intervals: 75%
	// curtailment eliminates 75% of the firm charge.
	want := firm.Metrics.TransmissionAnnual * 0.25
	if math.Abs(flex.Metrics.TransmissionAnnual-want) > 1 {
		t.Errorf("4CP transmission at pc=0.25 = $%.0f, want $%.0f", flex.Metrics.TransmissionAnnual, want)
	}
	wantSavings := firm.Metrics.TransmissionAnnual * 0.75
	if math.Abs(flex.Metrics.FourCPSavings-wantSavings) > 1 {
		t.Errorf("4CP savings = $%.0f, want $%.0f", flex.Metrics.FourCPSavings, wantSavings)
	}
}

func TestCompute4CPFirmCharge(t *testing.T) {
	in := firmInput()
	in.Market = market.Lookup("ercot")
	res := Compute(in)

	// 1000 MW * $5.50/kW-mo * 1000 kW/MW * 4 intervals.
	if math.Abs(res.Metrics.TransmissionAnnual-22_000_000) > 1 {
		t.Errorf("firm 4CP transmission = $%.0f, want $22M", res.Metrics.TransmissionAnnual)
	}
	if res.Metrics.FourCPSavings != 0 {
		t.Errorf("firm load 4CP savings = $%.0f, want $0", res.Metrics.FourCPSavings)
	}
}

func TestComputeCapacityCreditsFlipSign(t *testing.T) {
	in := firmInput()
	in.LoadFactor = 0.95
	in.PeakCoincidence = 0.75
	in.IncludeCapacityCredit = true
	res := Compute(in)

	// 250 MW curtailable at 80% credit against the $150K/MW-yr reference.
	wantCredit := 1000 * (1 - 0.75) * 150000 * DemandResponseCreditFactor
	if math.Abs(res.Metrics.CapacityCredit-wantCredit) > 1 {
		t.Errorf("capacity credit = $%.0f, want $%.0f", res.Metrics.CapacityCredit, wantCredit)
	}

	noCredit := in
	noCredit.IncludeCapacityCredit = false
	if res.NetImpact >= Compute(noCredit).NetImpact {
		t.Error("capacity credit should lower net impact")
	}
}

func TestComputeOnsiteGenerationOffsetsPeak(t *testing.T) {
	in := firmInput()
	in.LoadFactor = 0.95
	in.PeakCoincidence = 0.75
	in.IncludeCapacityCredit = true
	in.OnsiteGenerationMW = 200
	res := Compute(in)

	// 1000*0.75 - 200 grid MW at peak.
	if math.Abs(res.Metrics.EffectivePeakMW-550) > 1e-9 {
		t.Errorf("effective peak = %v MW, want 550", res.Metrics.EffectivePeakMW)
	}

	// Onsite MW earn the dispatchable credit on top of curtailment.
	wantCredit := 1000*(1-0.75)*150000*DemandResponseCreditFactor +
		200*150000*DispatchableCreditFactor
	if math.Abs(res.Metrics.CapacityCredit-wantCredit) > 1 {
		t.Errorf("capacity credit = $%.0f, want $%.0f", res.Metrics.CapacityCredit, wantCredit)
	}
}

func TestComputeOnsiteGenerationCannotGoNegative(t *testing.T) {
	in := firmInput()
	in.PeakCoincidence = 0.10
	in.OnsiteGenerationMW = 500
	res := Compute(in)

	if res.Metrics.EffectivePeakMW != 0 {
		t.Errorf("effective peak = %v MW, want floor at 0", res.Metrics.EffectivePeakMW)
	}
}

func TestComputeContractOverrides(t *testing.T) {
	in := firmInput()
	in.DemandChargePerMWMonth = 15000
	in.EnergyMarginPerMWh = 10
	res := Compute(in)

	if res.Metrics.Rates.DemandChargePerMWMonth != 15000 {
		t.Errorf("override demand charge = %v, want 15000", res.Metrics.Rates.DemandChargePerMWMonth)
	}
	if res.Metrics.Rates.EnergyMarginPerMWh != 10 {
		t.Errorf("override energy margin = %v, want 10", res.Metrics.Rates.EnergyMarginPerMWh)
	}

	// A richer contract recovers more capacity cost through demand charges.
	if res.Metrics.CapacityCostOrCredit >= Compute(firmInput()).Metrics.CapacityCostOrCredit {
		t.Error("higher demand charge should shrink unrecovered capacity cost")
	}
}

func TestComputeTariffProtectionsRaiseOffset(t *testing.T) {
	protected := &tariff.Tariff{
		PeakDemandChargePerKW:    12.00,
		OffPeakDemandChargePerKW: 6.00,
		EnergyPeakRatePerKWh:     0.085,
		EnergyOffPeakRatePerKWh:  0.055,
		Protections: tariff.Protections{
			MinimumDemandPct: 90,
			TakeOrPay:        true,
		},
	}
	bare := &tariff.Tariff{
		PeakDemandChargePerKW:    12.00,
		OffPeakDemandChargePerKW: 6.00,
		EnergyPeakRatePerKWh:     0.085,
		EnergyOffPeakRatePerKWh:  0.055,
	}

	inProtected := firmInput()
	inProtected.Tariff = protected
	inBare := firmInput()
	inBare.Tariff = bare

	resProtected := Compute(inProtected)
	resBare := Compute(inBare)

	if resProtected.Metrics.ProtectionMultiplier <= 1 {
		t.Errorf("protection multiplier = %v, want > 1", resProtected.Metrics.ProtectionMultiplier)
	}
	if resBare.Metrics.ProtectionMultiplier != 1 {
		t.Errorf("bare multiplier = %v, want 1", resBare.Metrics.ProtectionMultiplier)
	}
	if resProtected.RevenueOffset <= resBare.RevenueOffset {
		t.Error("protections should raise the revenue offset")
	}
	if resProtected.NetImpact >= resBare.NetImpact {
		t.Error("protections should lower net impact")
	}
}

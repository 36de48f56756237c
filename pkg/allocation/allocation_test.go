package allocation

import (
	"math"
	"testing"

	"github.com/DougMackenzie/power-insight-sub001/pkg/market"
	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
)

func testUtility() *spec.Utility {
	return &spec.Utility{
		Name:                      "Test Utility",
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

func TestAllocateYearZeroHoldsBase(t *testing.T) {
	u := testUtility()
	r := Allocate(u, market.Lookup(u.ISO), 1000, 0.80, 1.0, 0)

	// No lag has unwound: the static base allocation holds.
	if math.Abs(r.Allocation-0.40) > 1e-9 {
		t.Errorf("year-0 allocation = %v, want base 0.40", r.Allocation)
	}
	if r.RegulatoryLag != 0 {
		t.Errorf("year-0 lag = %v, want 0", r.RegulatoryLag)
	}
}

func TestAllocateLagFullyUnwound(t *testing.T) {
	u := testUtility()
	r := Allocate(u, market.Lookup(u.ISO), 1000, 0.80, 1.0, 8)

	if r.RegulatoryLag != 1 {
		t.Errorf("year-8 lag = %v, want 1", r.RegulatoryLag)
	}
	// Fully unwound: the allocation is the weighted blend (clamped).
	want := r.WeightedBlend
	if want < AllocationFloor {
		want = AllocationFloor
	}
	if math.Abs(r.Allocation-want) > 1e-9 {
		t.Errorf("year-8 allocation = %v, want blend %v", r.Allocation, want)
	}
}

func TestAllocateDataCenterDilutesShares(t *testing.T) {
	u := testUtility()
	m := market.Lookup(u.ISO)

	without := Allocate(u, m, 0, 0.80, 1.0, 5)
	with := Allocate(u, m, 2000, 0.80, 1.0, 5)

	if with.VolumetricShare >= without.VolumetricShare {
		t.Errorf("dc energy should dilute volumetric share: %v >= %v",
			with.VolumetricShare, without.VolumetricShare)
	}
	if with.DemandShare >= without.DemandShare {
		t.Errorf("dc peak should dilute demand share: %v >= %v",
			with.DemandShare, without.DemandShare)
	}
}

func TestAllocateFirmDilutesDemandMoreThanFlex(t *testing.T) {
	u := testUtility()
	m := market.Lookup(u.ISO)

	firm := Allocate(u, m, 2000, 0.80, 1.0, 5)
	flex := Allocate(u, m, 2000, 0.95, 0.75, 5)

	// Firm coincidence adds more to system peak, so residential demand
	// share falls further.
	if firm.DemandShare >= flex.DemandShare {
		t.Errorf("firm demand share %v should be below flex %v", firm.DemandShare, flex.DemandShare)
	}
}

func TestAllocateBoundsUnderExtremes(t *testing.T) {
	u := testUtility()
	m := market.Lookup(u.ISO)

	cases := []struct {
		capacityMW, lf, pc float64
		years              int
	}{
		{0, 0, 0, 0},
		{100000, 1.0, 1.0, 40},
		{50, 0.1, 0.1, 3},
		{5000, 0.95, 0, 10},
	}
	for _, c := range cases {
		r := Allocate(u, m, c.capacityMW, c.lf, c.pc, c.years)
		if r.Allocation < AllocationFloor || r.Allocation > AllocationCeiling {
			t.Errorf("Allocate(%v MW, %v yr) = %v, outside [%v, %v]",
				c.capacityMW, c.years, r.Allocation, AllocationFloor, AllocationCeiling)
		}
	}
}

func TestAllocateERCOTBelowRegulated(t *testing.T) {
	u := testUtility()
	reg := Allocate(u, market.Lookup("regulated"), 1000, 0.80, 1.0, 5)

	uErcot := testUtility()
	uErcot.ISO = "ercot"
	ercot := Allocate(uErcot, market.Lookup("ercot"), 1000, 0.80, 1.0, 5)

	if ercot.Allocation >= reg.Allocation {
		t.Errorf("ercot allocation %v should be below regulated %v", ercot.Allocation, reg.Allocation)
	}
}

func TestAllocateBaseFallsBackToMarket(t *testing.T) {
	u := testUtility()
	u.BaseResidentialAllocation = 0
	m := market.Lookup("pjm")

	r := Allocate(u, m, 1000, 0.80, 1.0, 0)

	// Year zero at full lag weight on base: market base times the PJM
	// capacity-price adjustment.
	want := m.AdjustAllocation(m.BaseResidentialAllocation)
	if math.Abs(r.Allocation-want) > 1e-9 {
		t.Errorf("fallback allocation = %v, want %v", r.Allocation, want)
	}
}

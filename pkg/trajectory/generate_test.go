package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DougMackenzie/power-insight-sub001/pkg/allocation"
	"github.com/DougMackenzie/power-insight-sub001/pkg/impact"
	"github.com/DougMackenzie/power-insight-sub001/pkg/market"
	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
)

func testInputs() Inputs {
	return Inputs{
		Utility: spec.Utility{
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
		},
		DataCenter: spec.DataCenter{
			CapacityMW:          2000,
			FirmLoadFactor:      0.80,
			FirmPeakCoincidence: 1.0,
			FlexLoadFactor:      0.95,
			FlexPeakCoincidence: 0.75,
			OnsiteGenerationMW:  200,
			OnsiteAvailability:  1.0,
		},
		Market: market.Lookup("regulated"),
		Projection: spec.Projection{
			BaseYear:             2025,
			Years:                10,
			GeneralInflation:     0.025,
			AnnualUpgradePct:     0.015,
			GridModernizationPct: 0.005,
		},
	}
}

func TestGenerateBaselineCompounds(t *testing.T) {
	in := testInputs()
	tr := GenerateBaseline(in)

	require.Len(t, tr.Points, 11)
	assert.Equal(t, Baseline, tr.Scenario)
	assert.Equal(t, 2025, tr.Points[0].Year)
	assert.InDelta(t, 130.0, tr.Points[0].MonthlyBill, 1e-9)

	// 4.5% combined annual growth, compounded.
	rate := in.Projection.BaselineRate()
	assert.InDelta(t, 0.045, rate, 1e-12)
	for y, pt := range tr.Points {
		want := 130 * math.Pow(1+rate, float64(y))
		assert.InDelta(t, want, pt.MonthlyBill, 1e-6, "year %d", y)
		assert.InDelta(t, pt.MonthlyBill*12, pt.AnnualBill, 1e-6)
	}
}

func TestBaselineStrictlyIncreasing(t *testing.T) {
	tr := GenerateBaseline(testInputs())
	for i := 1; i < len(tr.Points); i++ {
		assert.Greater(t, tr.Points[i].MonthlyBill, tr.Points[i-1].MonthlyBill, "year %d", i)
	}
}

func TestScenariosTrackBaselineBeforeOnset(t *testing.T) {
	set := GenerateAll(testInputs())

	for _, sc := range []Scenario{Firm, Flexible, Dispatchable} {
		tr := set.ByScenario(sc)
		for y := 0; y < OnsetYear; y++ {
			pt := tr.Points[y]
			assert.Zero(t, pt.DCImpact, "%s year %d", sc, y)
			assert.InDelta(t, pt.BaselineBill, pt.MonthlyBill, 1e-12, "%s year %d", sc, y)
			assert.Nil(t, pt.Impact, "%s year %d", sc, y)
		}
		require.NotNil(t, tr.Points[OnsetYear].Impact, "%s onset year", sc)
	}
}

func TestOnsetYearHalfWeight(t *testing.T) {
	in := testInputs()
	tr := GenerateFirm(in)
	pt := tr.Points[OnsetYear]

	// The onset year carries half the full annual impact, with no
	// escalation yet applied.
	alloc := allocation.Allocate(&in.Utility, in.Market,
		in.DataCenter.CapacityMW, in.DataCenter.FirmLoadFactor, in.DataCenter.FirmPeakCoincidence, 0)
	res := impact.Compute(impact.Input{
		CapacityMW:            in.DataCenter.CapacityMW,
		LoadFactor:            in.DataCenter.FirmLoadFactor,
		PeakCoincidence:       in.DataCenter.FirmPeakCoincidence,
		ResidentialCustomers:  in.Utility.ResidentialCustomers,
		ResidentialAllocation: alloc.Allocation,
		Market:                in.Market,
	})

	assert.InDelta(t, res.PerCustomerMonthly*PartialYearWeight, pt.DCImpact, 1e-9)
	assert.InDelta(t, pt.BaselineBill+pt.DCImpact, pt.MonthlyBill, 1e-9)
}

func TestScenarioOrderingFromOnset(t *testing.T) {
	set := GenerateAll(testInputs())

	for y := OnsetYear; y <= 10; y++ {
		firm := set.Firm.Points[y].MonthlyBill
		flex := set.Flexible.Points[y].MonthlyBill
		disp := set.Dispatchable.Points[y].MonthlyBill

		// Curtailment can only help; onsite generation can only help more.
		assert.GreaterOrEqual(t, firm, flex, "year %d", y)
		assert.GreaterOrEqual(t, flex, disp, "year %d", y)
	}

	// A 2000 MW firm load on a 4000 MW system costs ratepayers.
	assert.Greater(t, set.Firm.FinalBill(), set.Baseline.FinalBill())
}

func TestDispatchableLowersAllocationCoincidence(t *testing.T) {
	set := GenerateAll(testInputs())

	flexAlloc := set.Flexible.Points[5].Allocation
	dispAlloc := set.Dispatchable.Points[5].Allocation
	require.NotNil(t, flexAlloc)
	require.NotNil(t, dispAlloc)

	// Onsite generation shrinks the peak contribution the allocation
	// methodology sees, so residential demand share stays higher.
	assert.GreaterOrEqual(t, dispAlloc.DemandShare, flexAlloc.DemandShare)
}

func TestGenerateAllDeterministic(t *testing.T) {
	in := testInputs()
	first := GenerateAll(in)
	second := GenerateAll(in)
	assert.Equal(t, first, second)
}

func TestFinalBillEmptyTrajectory(t *testing.T) {
	assert.Zero(t, Trajectory{}.FinalBill())
}

func TestBenefitEscalationCompoundsSlower(t *testing.T) {
	in := testInputs()
	set := GenerateAll(in)

	// Dispatchable runs at a net benefit here; verify the benefit deepens
	// over time but the impact magnitude stays bounded by inflation-rate
	// compounding of the onset-year impact.
	disp := set.Dispatchable
	require.Negative(t, disp.Points[OnsetYear].DCImpact)

	for y := OnsetYear + 1; y <= 10; y++ {
		assert.Less(t, disp.Points[y].DCImpact, 0.0, "year %d", y)
	}
}

package summary

import (
	"gonum.org/v1/gonum/floats"

	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
	"github.com/DougMackenzie/power-insight-sub001/pkg/trajectory"
)

// Stats is the derived, read-only aggregate over the four trajectories.
// Sign convention: a negative difference means the bill is lower than
// baseline, a net benefit to ratepayers.
type Stats struct {
	CurrentMonthlyBill float64 `json:"current_monthly_bill"`

	FinalYearBills map[trajectory.Scenario]float64 `json:"final_year_bills"`

	// FinalYearDifference is the final-year monthly bill delta vs
	// baseline, per data-center scenario.
	FinalYearDifference map[trajectory.Scenario]float64 `json:"final_year_difference"`

	// SavingsVsFirm is the final-year monthly bill saved relative to the
	// firm-load scenario.
	SavingsVsFirm map[trajectory.Scenario]float64 `json:"savings_vs_firm"`

	// CumulativeCosts sums annual bills over the whole horizon.
	CumulativeCosts map[trajectory.Scenario]float64 `json:"cumulative_costs"`

	// CommunitySavings scales the cumulative per-customer delta vs
	// baseline by the residential customer count.
	CommunitySavings map[trajectory.Scenario]float64 `json:"community_savings"`

	BenefitsRatepayers map[trajectory.Scenario]bool `json:"benefits_ratepayers"`
}

// Compute aggregates the four completed trajectories in a single pass per
// series. Recompute whenever any trajectory changes.
func Compute(set trajectory.Set, u *spec.Utility) Stats {
	stats := Stats{
		CurrentMonthlyBill:  u.AvgMonthlyBill,
		FinalYearBills:      make(map[trajectory.Scenario]float64, 4),
		FinalYearDifference: make(map[trajectory.Scenario]float64, 3),
		SavingsVsFirm:       make(map[trajectory.Scenario]float64, 2),
		CumulativeCosts:     make(map[trajectory.Scenario]float64, 4),
		CommunitySavings:    make(map[trajectory.Scenario]float64, 3),
		BenefitsRatepayers:  make(map[trajectory.Scenario]bool, 3),
	}

	baselineFinal := set.Baseline.FinalBill()
	firmFinal := set.Firm.FinalBill()
	baselineCumulative := cumulative(set.Baseline)

	for _, sc := range trajectory.Scenarios {
		t := set.ByScenario(sc)
		final := t.FinalBill()
		cum := cumulative(t)

		stats.FinalYearBills[sc] = final
		stats.CumulativeCosts[sc] = cum

		if sc == trajectory.Baseline {
			continue
		}

		diff := final - baselineFinal
		stats.FinalYearDifference[sc] = diff
		stats.BenefitsRatepayers[sc] = diff < 0
		stats.CommunitySavings[sc] = (baselineCumulative - cum) * float64(u.ResidentialCustomers)

		if sc != trajectory.Firm {
			stats.SavingsVsFirm[sc] = firmFinal - final
		}
	}

	return stats
}

// cumulative sums annual bills across a trajectory's horizon.
func cumulative(t trajectory.Trajectory) float64 {
	annual := make([]float64, len(t.Points))
	for i, p := range t.Points {
		annual[i] = p.MonthlyBill * 12
	}
	return floats.Sum(annual)
}

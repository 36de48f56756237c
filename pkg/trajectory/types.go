package trajectory

import (
	"github.com/DougMackenzie/power-insight-sub001/pkg/allocation"
	"github.com/DougMackenzie/power-insight-sub001/pkg/impact"
	"github.com/DougMackenzie/power-insight-sub001/pkg/market"
	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
	"github.com/DougMackenzie/power-insight-sub001/pkg/tariff"
)

// Scenario identifies one of the four operating strategies.
type Scenario string

const (
	Baseline     Scenario = "baseline"
	Firm         Scenario = "firm"
	Flexible     Scenario = "flexible"
	Dispatchable Scenario = "dispatchable"
)

// Scenarios lists the four strategies in canonical order.
var Scenarios = []Scenario{Baseline, Firm, Flexible, Dispatchable}

// Point is one projected year for one scenario. Points are produced fresh
// each year and never mutated after creation.
type Point struct {
	YearIndex    int     `json:"year_index"`
	Year         int     `json:"year"`
	MonthlyBill  float64 `json:"monthly_bill"`
	AnnualBill   float64 `json:"annual_bill"`
	BaselineBill float64 `json:"baseline_monthly_bill"`

	// DCImpact is the data-center share of the monthly bill: zero before
	// the load comes online.
	DCImpact float64 `json:"dc_impact_monthly"`

	// Operating parameters in effect this year; zero for baseline.
	LoadFactor      float64 `json:"load_factor,omitempty"`
	PeakCoincidence float64 `json:"peak_coincidence,omitempty"`

	// Underlying metrics, present from the onset year onward.
	Allocation *allocation.Result `json:"allocation,omitempty"`
	Impact     *impact.Result     `json:"impact,omitempty"`
}

// Trajectory is the ordered year-by-year bill series for one scenario,
// owned exclusively by the caller that requested it.
type Trajectory struct {
	Scenario Scenario `json:"scenario"`
	Points   []Point  `json:"points"`
}

// FinalBill returns the last projected monthly bill.
func (t Trajectory) FinalBill() float64 {
	if len(t.Points) == 0 {
		return 0
	}
	return t.Points[len(t.Points)-1].MonthlyBill
}

// Set holds the four trajectories of one projection run.
type Set struct {
	Baseline     Trajectory `json:"baseline"`
	Firm         Trajectory `json:"firm"`
	Flexible     Trajectory `json:"flexible"`
	Dispatchable Trajectory `json:"dispatchable"`
}

// ByScenario returns the trajectory for the given scenario tag.
func (s Set) ByScenario(sc Scenario) Trajectory {
	switch sc {
	case Firm:
		return s.Firm
	case Flexible:
		return s.Flexible
	case Dispatchable:
		return s.Dispatchable
	default:
		return s.Baseline
	}
}

// Inputs is the immutable snapshot a projection run operates on. Callers
// that mutate records asynchronously must hand each run its own copy.
type Inputs struct {
	Utility    spec.Utility
	DataCenter spec.DataCenter
	Market     market.Structure
	Tariff     *tariff.Tariff
	Projection spec.Projection
}

package trajectory

import (
	"math"

	"github.com/DougMackenzie/power-insight-sub001/pkg/allocation"
	"github.com/DougMackenzie/power-insight-sub001/pkg/impact"
)

// GenerateBaseline projects monthly bills with no data center: the current
// average bill compounded at inflation plus infrastructure upgrades plus
// grid modernization.
func GenerateBaseline(in Inputs) Trajectory {
	rate := in.Projection.BaselineRate()
	points := make([]Point, 0, in.Projection.Years+1)

	for year := 0; year <= in.Projection.Years; year++ {
		bill := in.Utility.AvgMonthlyBill * math.Pow(1+rate, float64(year))
		points = append(points, Point{
			YearIndex:    year,
			Year:         in.Projection.BaseYear + year,
			MonthlyBill:  bill,
			AnnualBill:   bill * 12,
			BaselineBill: bill,
		})
	}

	return Trajectory{Scenario: Baseline, Points: points}
}

// GenerateFirm projects the firm-load scenario: full peak coincidence, no
// curtailment credits, no onsite generation.
func GenerateFirm(in Inputs) Trajectory {
	return generateScenario(in, scenarioConfig{
		scenario:          Firm,
		loadFactor:        in.DataCenter.FirmLoadFactor,
		peakCoincidence:   in.DataCenter.FirmPeakCoincidence,
		benefitEscalation: FirmBenefitEscalation,
	})
}

// GenerateFlexible projects the flexible-load scenario: the load curtails
// during system peaks and earns demand-response capacity credits.
func GenerateFlexible(in Inputs) Trajectory {
	return generateScenario(in, scenarioConfig{
		scenario:          Flexible,
		loadFactor:        in.DataCenter.FlexLoadFactor,
		peakCoincidence:   in.DataCenter.FlexPeakCoincidence,
		capacityCredit:    true,
		benefitEscalation: FlexibleBenefitEscalation,
	})
}

// GenerateDispatchable projects the flexible-plus-generation scenario:
// curtailment as in the flexible case, with onsite generation further
// offsetting grid draw during peak.
func GenerateDispatchable(in Inputs) Trajectory {
	return generateScenario(in, scenarioConfig{
		scenario:          Dispatchable,
		loadFactor:        in.DataCenter.FlexLoadFactor,
		peakCoincidence:   in.DataCenter.FlexPeakCoincidence,
		capacityCredit:    true,
		onsiteGenMW:       in.DataCenter.EffectiveOnsiteMW(),
		benefitEscalation: DispatchableBenefitEscalation,
	})
}

// GenerateAll runs the four scenario generators over one input snapshot.
// The generators are independent; recomputing with identical inputs yields
// identical output.
func GenerateAll(in Inputs) Set {
	return Set{
		Baseline:     GenerateBaseline(in),
		Firm:         GenerateFirm(in),
		Flexible:     GenerateFlexible(in),
		Dispatchable: GenerateDispatchable(in),
	}
}

type scenarioConfig struct {
	scenario          Scenario
	loadFactor        float64
	peakCoincidence   float64
	capacityCredit    bool
	onsiteGenMW       float64
	benefitEscalation float64
}

// generateScenario is the shared skeleton for the three data-center
// scenarios: the baseline bill plus an impact term that is zero before the
// onset year, half weight during it, and full weight after, with the
// residential allocation recomputed every year as regulatory lag unwinds.
func generateScenario(in Inputs, cfg scenarioConfig) Trajectory {
	base := GenerateBaseline(in)
	points := make([]Point, 0, in.Projection.Years+1)

	for year := 0; year <= in.Projection.Years; year++ {
		baseBill := base.Points[year].MonthlyBill
		pt := Point{
			YearIndex:    year,
			Year:         in.Projection.BaseYear + year,
			MonthlyBill:  baseBill,
			BaselineBill: baseBill,
		}

		if year >= OnsetYear {
			phaseIn := 1.0
			if year == OnsetYear {
				phaseIn = PartialYearWeight
			}
			yearsOnline := year - OnsetYear

			// Onsite generation lowers the peak coincidence the rate
			// methodology sees, before cost allocation.
			allocCoincidence := cfg.peakCoincidence
			if cfg.onsiteGenMW > 0 && in.DataCenter.CapacityMW > 0 {
				allocCoincidence -= cfg.onsiteGenMW / in.DataCenter.CapacityMW
				if allocCoincidence < 0 {
					allocCoincidence = 0
				}
			}

			alloc := allocation.Allocate(&in.Utility, in.Market,
				in.DataCenter.CapacityMW, cfg.loadFactor, allocCoincidence, yearsOnline)

			res := impact.Compute(impact.Input{
				CapacityMW:             in.DataCenter.CapacityMW,
				LoadFactor:             cfg.loadFactor,
				PeakCoincidence:        cfg.peakCoincidence,
				ResidentialCustomers:   in.Utility.ResidentialCustomers,
				ResidentialAllocation:  alloc.Allocation,
				IncludeCapacityCredit:  cfg.capacityCredit,
				OnsiteGenerationMW:     cfg.onsiteGenMW,
				Tariff:                 in.Tariff,
				Market:                 in.Market,
				DemandChargePerMWMonth: in.DataCenter.DemandChargePerMWMonth,
				EnergyMarginPerMWh:     in.DataCenter.EnergyMarginPerMWh,
			})

			dcImpact := res.PerCustomerMonthly * phaseIn

			// Asymmetric compounding: costs escalate at full inflation,
			// benefits at the scenario's reduced rate.
			escalation := in.Projection.GeneralInflation
			if dcImpact <= 0 {
				escalation *= cfg.benefitEscalation
			}
			dcImpact *= math.Pow(1+escalation, float64(yearsOnline))

			pt.DCImpact = dcImpact
			pt.MonthlyBill = baseBill + dcImpact
			pt.LoadFactor = cfg.loadFactor
			pt.PeakCoincidence = cfg.peakCoincidence
			pt.Allocation = &alloc
			pt.Impact = &res
		}

		pt.AnnualBill = pt.MonthlyBill * 12
		points = append(points, pt)
	}

	return Trajectory{Scenario: cfg.scenario, Points: points}
}

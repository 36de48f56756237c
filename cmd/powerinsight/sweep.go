package main

import (
	"fmt"

	pb "gopkg.in/cheggaaa/pb.v1"

	"github.com/DougMackenzie/power-insight-sub001/pkg/catalog"
	"github.com/DougMackenzie/power-insight-sub001/pkg/market"
	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
	"github.com/DougMackenzie/power-insight-sub001/pkg/summary"
	"github.com/DougMackenzie/power-insight-sub001/pkg/trajectory"
)

type sweepRow struct {
	profile catalog.Profile
	stats   summary.Stats
}

// runSweep projects every catalog utility under the same proposed load and
// prints a comparison. capacityMW of 0 uses each profile's own default.
func runSweep(capacityMW float64, years int) error {
	profiles := catalog.Utilities()
	rows := make([]sweepRow, 0, len(profiles))

	bar := pb.StartNew(len(profiles))
	for _, p := range profiles {
		dc := catalog.DefaultDataCenter()
		if capacityMW > 0 {
			dc.CapacityMW = capacityMW
		} else if p.DefaultDataCenterMW > 0 {
			dc.CapacityMW = p.DefaultDataCenterMW
		}

		in := trajectory.Inputs{
			Utility:    p.Utility,
			DataCenter: dc,
			Market:     market.Lookup(p.Utility.ISO),
			Projection: spec.Projection{
				BaseYear:             spec.DefaultBaseYear,
				Years:                years,
				GeneralInflation:     spec.DefaultGeneralInflation,
				AnnualUpgradePct:     spec.DefaultAnnualUpgradePct,
				GridModernizationPct: spec.DefaultGridModernizationPct,
			},
		}

		set := trajectory.GenerateAll(in)
		rows = append(rows, sweepRow{
			profile: p,
			stats:   summary.Compute(set, &in.Utility),
		})
		bar.Increment()
	}
	bar.Finish()

	fmt.Println()
	fmt.Printf("%-22s %-10s %10s %14s %14s %14s\n",
		"Utility", "Market", "DC MW", "Firm Delta", "Flex Delta", "Flex+Gen Delta")

	for _, row := range rows {
		mw := capacityMW
		if mw == 0 {
			mw = row.profile.DefaultDataCenterMW
			if mw == 0 {
				mw = catalog.DefaultDataCenter().CapacityMW
			}
		}
		fmt.Printf("%-22s %-10s %10.0f %14s %14s %14s\n",
			row.profile.ShortName,
			row.profile.Utility.ISO,
			mw,
			moneySigned(row.stats.FinalYearDifference[trajectory.Firm]),
			moneySigned(row.stats.FinalYearDifference[trajectory.Flexible]),
			moneySigned(row.stats.FinalYearDifference[trajectory.Dispatchable]))
	}

	fmt.Println()
	fmt.Println("Deltas are final-year monthly bill vs the no-data-center baseline.")
	return nil
}

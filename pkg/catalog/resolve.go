package catalog

import (
	"fmt"

	"github.com/DougMackenzie/power-insight-sub001/pkg/market"
	"github.com/DougMackenzie/power-insight-sub001/pkg/spec"
	"github.com/DougMackenzie/power-insight-sub001/pkg/trajectory"
)

// ResolveProject fills catalog references in a project spec and returns the
// immutable input snapshot for a projection run.
//
// A utility_id replaces the inline utility record; with neither, the
// representative default is used. A tariff_id attaches a built-in tariff;
// an empty id means the no-tariff fallback path.
func ResolveProject(ps *spec.ProjectSpec) (trajectory.Inputs, error) {
	in := trajectory.Inputs{
		Utility:    ps.Utility,
		DataCenter: ps.DataCenter,
		Projection: ps.Projection,
	}

	if ps.UtilityID != "" {
		profile, ok := UtilityByID(ps.UtilityID)
		if !ok {
			return trajectory.Inputs{}, fmt.Errorf("unknown utility id %q", ps.UtilityID)
		}
		in.Utility = profile.Utility
		if in.DataCenter.CapacityMW == 0 {
			in.DataCenter.CapacityMW = profile.DefaultDataCenterMW
		}
	} else if in.Utility.ResidentialCustomers == 0 {
		in.Utility = DefaultUtility()
	}

	if in.DataCenter.CapacityMW == 0 {
		in.DataCenter = DefaultDataCenter()
	}

	if ps.TariffID != "" {
		t, ok := TariffByID(ps.TariffID)
		if !ok {
			return trajectory.Inputs{}, fmt.Errorf("unknown tariff id %q", ps.TariffID)
		}
		in.Tariff = t
	}

	in.Market = market.Lookup(in.Utility.ISO)

	return in, nil
}

package allocation

// Cost-causation blend weights and phase-in windows.
const (
	VolumetricWeight = 0.40
	DemandWeight     = 0.40
	CustomerWeight   = 0.20

	// ResidentialPeakShare is the residential contribution to system peak.
	ResidentialPeakShare = 0.45

	// EnergyPhaseInYears is how long the load takes to reach full annual
	// consumption once online.
	EnergyPhaseInYears = 3.0

	// RegulatoryLagYears models the delay of rate-case proceedings before
	// the computed allocation fully displaces the base allocation.
	RegulatoryLagYears = 5.0

	// Canonical allocation clamp, applied uniformly at every call site.
	// See DESIGN.md for the divergent bounds in the reference material.
	AllocationFloor   = 0.20
	AllocationCeiling = 0.55
)

package trajectory

// Onset timing for the data-center impact term.
const (
	// OnsetYear is the first projection year with any data-center impact;
	// years before it cover construction and interconnection.
	OnsetYear = 2

	// PartialYearWeight phases the impact in at half weight during the
	// onset year.
	PartialYearWeight = 0.5
)

// Benefit escalation factors. A cost impact compounds at full general
// inflation; a benefit compounds at a reduced rate, reflecting the more
// conservative growth of captured benefits. The discount narrows as the
// operating strategy hardens the benefit.
const (
	FirmBenefitEscalation         = 0.80
	FlexibleBenefitEscalation     = 0.90
	DispatchableBenefitEscalation = 0.95
)

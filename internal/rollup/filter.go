package rollup

// Health flag names accepted as list filters. The HTTP layer rejects
// anything else before it reaches the evaluator.
const (
	FlagOverBudget      = "over_budget"
	FlagOverExpected    = "over_expected"
	FlagMissingLead     = "missing_lead"
	FlagMissingEstimate = "missing_estimate"
	FlagOverassigned    = "overassigned"
)

// HealthFlags exposes the deliverable's boolean indicators by filter name.
func (r DeliverableRollup) HealthFlags() map[string]bool {
	return map[string]bool{
		FlagOverExpected:    r.IsOverExpected,
		FlagMissingLead:     r.IsMissingLead,
		FlagMissingEstimate: r.IsMissingEstimate,
	}
}

// HealthFlags exposes the contract's boolean indicators by filter name.
func (r ContractRollup) HealthFlags() map[string]bool {
	return map[string]bool{
		FlagOverBudget:   r.IsOverBudget,
		FlagOverExpected: r.IsOverExpected,
		FlagOverassigned: r.IsOverassigned,
	}
}

// MatchesFlag reports whether a computed flag set satisfies one requested
// filter. Flags the entity does not define never match.
func MatchesFlag(flags map[string]bool, name string, want bool) bool {
	value, ok := flags[name]
	return ok && value == want
}

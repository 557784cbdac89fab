package rollup

import "testing"

func TestMatchesFlag(t *testing.T) {
	r := DeliverableRollup{IsOverExpected: true, IsMissingLead: false, IsMissingEstimate: true}
	flags := r.HealthFlags()

	tests := []struct {
		name string
		flag string
		want bool
		keep bool
	}{
		{"over_expected true matches", FlagOverExpected, true, true},
		{"over_expected false rejects", FlagOverExpected, false, false},
		{"missing_lead false matches", FlagMissingLead, false, true},
		{"missing_estimate true matches", FlagMissingEstimate, true, true},
		{"contract-only flag never matches deliverables", FlagOverBudget, true, false},
		{"contract-only flag never matches, either polarity", FlagOverBudget, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesFlag(flags, tt.flag, tt.want); got != tt.keep {
				t.Errorf("MatchesFlag(%q, %v) = %v, want %v", tt.flag, tt.want, got, tt.keep)
			}
		})
	}
}

// Filtering by flag=true then flag=false must partition the candidate set.
func TestFlagFilterPartitionsCandidates(t *testing.T) {
	candidates := []DeliverableRollup{
		{IsOverExpected: true},
		{IsOverExpected: false},
		{IsOverExpected: true},
		{IsOverExpected: false},
		{IsOverExpected: false},
	}

	var hot, cold int
	for _, r := range candidates {
		if MatchesFlag(r.HealthFlags(), FlagOverExpected, true) {
			hot++
		}
		if MatchesFlag(r.HealthFlags(), FlagOverExpected, false) {
			cold++
		}
		both := MatchesFlag(r.HealthFlags(), FlagOverExpected, true) &&
			MatchesFlag(r.HealthFlags(), FlagOverExpected, false)
		if both {
			t.Fatal("a rollup matched both polarities")
		}
	}
	if hot+cold != len(candidates) {
		t.Errorf("partition dropped candidates: %d + %d != %d", hot, cold, len(candidates))
	}
}

func TestContractHealthFlags(t *testing.T) {
	r := ContractRollup{IsOverBudget: true, IsOverExpected: false, IsOverassigned: true}
	flags := r.HealthFlags()
	if !MatchesFlag(flags, FlagOverBudget, true) {
		t.Error("over_budget=true should match")
	}
	if !MatchesFlag(flags, FlagOverExpected, false) {
		t.Error("over_expected=false should match")
	}
	if !MatchesFlag(flags, FlagOverassigned, true) {
		t.Error("overassigned=true should match")
	}
	if MatchesFlag(flags, FlagMissingLead, true) || MatchesFlag(flags, FlagMissingLead, false) {
		t.Error("missing_lead is not a contract flag")
	}
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/rollup"
)

// HealthFilter is one requested computed-flag predicate, e.g.
// over_budget=true. Parsed and validated by the HTTP layer.
type HealthFilter struct {
	Name string
	Want bool
}

// rollupInputs assembles per-deliverable calculator inputs for a page of
// deliverables with three batched queries, keeping cost O(page size).
// Status updates are only loaded when a caller needs latest_status_update;
// contract aggregation does not.
func rollupInputs(
	ctx context.Context,
	store RollupStore,
	deliverables []model.Deliverable,
	contracts map[uuid.UUID]model.Contract,
	withStatusUpdates bool,
) (map[uuid.UUID]rollup.DeliverableInput, error) {
	ids := make([]uuid.UUID, len(deliverables))
	for i, d := range deliverables {
		ids[i] = d.ID
	}

	assignments, err := store.AssignmentsByDeliverable(ctx, ids)
	if err != nil {
		return nil, err
	}
	entries, err := store.TimeEntriesByDeliverable(ctx, ids)
	if err != nil {
		return nil, err
	}
	var updates map[uuid.UUID][]model.StatusUpdate
	if withStatusUpdates {
		updates, err = store.StatusUpdatesByDeliverable(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	inputs := make(map[uuid.UUID]rollup.DeliverableInput, len(deliverables))
	for _, d := range deliverables {
		in := rollup.DeliverableInput{
			Deliverable: d,
			Contract:    contracts[d.ContractID],
			Assignments: assignments[d.ID],
			TimeEntries: entries[d.ID],
		}
		if withStatusUpdates {
			in.StatusUpdates = updates[d.ID]
		}
		inputs[d.ID] = in
	}
	return inputs, nil
}

func computeContractRollup(
	ctx context.Context,
	store RollupStore,
	contract model.Contract,
	deliverables []model.Deliverable,
	today time.Time,
) (rollup.ContractRollup, error) {
	inputs, err := rollupInputs(ctx, store, deliverables,
		map[uuid.UUID]model.Contract{contract.ID: contract}, false)
	if err != nil {
		return rollup.ContractRollup{}, err
	}

	children := make([]rollup.DeliverableRollup, 0, len(deliverables))
	for _, d := range deliverables {
		children = append(children, rollup.ComputeDeliverable(inputs[d.ID], today))
	}
	return rollup.ComputeContract(contract, children, today), nil
}

// matchesHealthFilters applies the post-computation predicates. All
// requested filters must match for the candidate to survive.
func matchesHealthFilters(flags map[string]bool, filters []HealthFilter) bool {
	for _, f := range filters {
		if !rollup.MatchesFlag(flags, f.Name, f.Want) {
			return false
		}
	}
	return true
}

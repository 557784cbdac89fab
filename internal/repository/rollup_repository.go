package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
)

// RollupRepository batch-loads the child records the rollup calculators
// need. Each method issues one query regardless of how many deliverables a
// page contains; the engine itself never touches the database.
type RollupRepository struct {
	db *gorm.DB
}

func NewRollupRepository(db *gorm.DB) *RollupRepository {
	return &RollupRepository{db: db}
}

func (r *RollupRepository) AssignmentsByDeliverable(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.Assignment, error) {
	grouped := make(map[uuid.UUID][]model.Assignment, len(deliverableIDs))
	if len(deliverableIDs) == 0 {
		return grouped, nil
	}

	var assignments []model.Assignment
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, deliverable_id, staff_id, expected_hours, is_lead, created_at
		FROM deliverable_assignments
		WHERE deliverable_id = ANY(?)
		ORDER BY created_at ASC
	`, deliverableIDs).Scan(&assignments).Error
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		grouped[a.DeliverableID] = append(grouped[a.DeliverableID], a)
	}
	return grouped, nil
}

func (r *RollupRepository) TimeEntriesByDeliverable(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.TimeEntry, error) {
	grouped := make(map[uuid.UUID][]model.TimeEntry, len(deliverableIDs))
	if len(deliverableIDs) == 0 {
		return grouped, nil
	}

	var entries []model.TimeEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, deliverable_id, staff_id, entry_date, hours, note,
			external_source, external_id, created_at, updated_at
		FROM time_entries
		WHERE deliverable_id = ANY(?)
		ORDER BY entry_date ASC, id ASC
	`, deliverableIDs).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		grouped[e.DeliverableID] = append(grouped[e.DeliverableID], e)
	}
	return grouped, nil
}

func (r *RollupRepository) StatusUpdatesByDeliverable(ctx context.Context, deliverableIDs []uuid.UUID) (map[uuid.UUID][]model.StatusUpdate, error) {
	grouped := make(map[uuid.UUID][]model.StatusUpdate, len(deliverableIDs))
	if len(deliverableIDs) == 0 {
		return grouped, nil
	}

	var updates []model.StatusUpdate
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, deliverable_id, period_end, status, summary, created_by_id, created_at
		FROM status_updates
		WHERE deliverable_id = ANY(?)
		ORDER BY period_end DESC, created_at DESC, id DESC
	`, deliverableIDs).Scan(&updates).Error
	if err != nil {
		return nil, err
	}
	for _, u := range updates {
		grouped[u.DeliverableID] = append(grouped[u.DeliverableID], u)
	}
	return grouped, nil
}

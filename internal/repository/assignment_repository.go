package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

type AssignmentFilter struct {
	ContractID    *uuid.UUID
	DeliverableID *uuid.UUID
	StaffID       *uuid.UUID
	LeadOnly      *bool
}

const assignmentColumns = `
	a.id, a.deliverable_id, a.staff_id, a.expected_hours, a.is_lead, a.created_at
`

func (r *AssignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]model.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM deliverable_assignments a
		JOIN deliverables d ON d.id = a.deliverable_id
		WHERE 1=1
	`
	var args []interface{}

	if filter.ContractID != nil {
		query += " AND d.contract_id = ?"
		args = append(args, *filter.ContractID)
	}
	if filter.DeliverableID != nil {
		query += " AND a.deliverable_id = ?"
		args = append(args, *filter.DeliverableID)
	}
	if filter.StaffID != nil {
		query += " AND a.staff_id = ?"
		args = append(args, *filter.StaffID)
	}
	if filter.LeadOnly != nil {
		query += " AND a.is_lead = ?"
		args = append(args, *filter.LeadOnly)
	}
	query += " ORDER BY a.created_at DESC"

	var assignments []model.Assignment
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *AssignmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+assignmentColumns+`
		FROM deliverable_assignments a
		WHERE a.id = ?
		LIMIT 1
	`, id).Scan(&assignment).Error
	if err != nil {
		return nil, err
	}
	if assignment.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &assignment, nil
}

func (r *AssignmentRepository) Create(ctx context.Context, a model.Assignment) (*model.Assignment, error) {
	var saved model.Assignment
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO deliverable_assignments (deliverable_id, staff_id, expected_hours, is_lead)
		VALUES (?, ?, ?, ?)
		RETURNING id, deliverable_id, staff_id, expected_hours, is_lead, created_at
	`, a.DeliverableID, a.StaffID, a.ExpectedHours, a.IsLead).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *AssignmentRepository) Update(ctx context.Context, a model.Assignment) (*model.Assignment, error) {
	var saved model.Assignment
	err := r.db.WithContext(ctx).Raw(`
		UPDATE deliverable_assignments
		SET expected_hours = ?, is_lead = ?
		WHERE id = ?
		RETURNING id, deliverable_id, staff_id, expected_hours, is_lead, created_at
	`, a.ExpectedHours, a.IsLead, a.ID).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM deliverable_assignments WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
)

type DeliverableRepository struct {
	db *gorm.DB
}

func NewDeliverableRepository(db *gorm.DB) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

type DeliverableFilter struct {
	ContractID     *uuid.UUID
	Status         string
	StaffID        *uuid.UUID
	LeadOnly       *bool
	HasAssignments *bool
	DueDateFrom    *time.Time
	DueDateTo      *time.Time
	Query          string
	OrderBy        string
	OrderDir       string
}

var deliverableOrderColumns = map[string]string{
	"id":         "d.id",
	"start_date": "d.start_date",
	"due_date":   "d.due_date",
}

const deliverableColumns = `
	d.id, d.contract_id, d.name, d.budget_hours, d.start_date, d.due_date, d.status, d.created_at, d.updated_at
`

func (r *DeliverableRepository) List(ctx context.Context, filter DeliverableFilter) ([]model.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables d WHERE 1=1`
	var args []interface{}

	if filter.ContractID != nil {
		query += " AND d.contract_id = ?"
		args = append(args, *filter.ContractID)
	}
	if filter.Status != "" {
		query += " AND d.status = ?"
		args = append(args, filter.Status)
	}
	if filter.StaffID != nil {
		query += ` AND EXISTS (
			SELECT 1 FROM deliverable_assignments a
			WHERE a.deliverable_id = d.id AND a.staff_id = ?
		)`
		args = append(args, *filter.StaffID)
	}
	if filter.LeadOnly != nil {
		clause := ` EXISTS (
			SELECT 1 FROM deliverable_assignments a
			WHERE a.deliverable_id = d.id AND a.is_lead
		)`
		if *filter.LeadOnly {
			query += " AND" + clause
		} else {
			query += " AND NOT" + clause
		}
	}
	if filter.HasAssignments != nil {
		clause := ` EXISTS (
			SELECT 1 FROM deliverable_assignments a
			WHERE a.deliverable_id = d.id
		)`
		if *filter.HasAssignments {
			query += " AND" + clause
		} else {
			query += " AND NOT" + clause
		}
	}
	if filter.DueDateFrom != nil {
		query += " AND d.due_date >= ?"
		args = append(args, *filter.DueDateFrom)
	}
	if filter.DueDateTo != nil {
		query += " AND d.due_date <= ?"
		args = append(args, *filter.DueDateTo)
	}
	if filter.Query != "" {
		query += " AND d.name ILIKE ?"
		args = append(args, "%"+filter.Query+"%")
	}

	query += orderClause(deliverableOrderColumns, filter.OrderBy, filter.OrderDir, "d.created_at DESC")

	var deliverables []model.Deliverable
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&deliverables).Error; err != nil {
		return nil, err
	}
	return deliverables, nil
}

func (r *DeliverableRepository) ListByContract(ctx context.Context, contractID uuid.UUID) ([]model.Deliverable, error) {
	var deliverables []model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+deliverableColumns+`
		FROM deliverables d
		WHERE d.contract_id = ?
		ORDER BY d.created_at ASC
	`, contractID).Scan(&deliverables).Error
	if err != nil {
		return nil, err
	}
	return deliverables, nil
}

// ListByContracts batch-loads deliverables for a page of contracts in one
// query so contract rollups stay O(page size).
func (r *DeliverableRepository) ListByContracts(ctx context.Context, contractIDs []uuid.UUID) (map[uuid.UUID][]model.Deliverable, error) {
	grouped := make(map[uuid.UUID][]model.Deliverable, len(contractIDs))
	if len(contractIDs) == 0 {
		return grouped, nil
	}

	var deliverables []model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+deliverableColumns+`
		FROM deliverables d
		WHERE d.contract_id = ANY(?)
		ORDER BY d.created_at ASC
	`, contractIDs).Scan(&deliverables).Error
	if err != nil {
		return nil, err
	}
	for _, d := range deliverables {
		grouped[d.ContractID] = append(grouped[d.ContractID], d)
	}
	return grouped, nil
}

func (r *DeliverableRepository) Get(ctx context.Context, id uuid.UUID) (*model.Deliverable, error) {
	var deliverable model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+deliverableColumns+`
		FROM deliverables d
		WHERE d.id = ?
		LIMIT 1
	`, id).Scan(&deliverable).Error
	if err != nil {
		return nil, err
	}
	if deliverable.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &deliverable, nil
}

func (r *DeliverableRepository) Create(ctx context.Context, d model.Deliverable) (*model.Deliverable, error) {
	var saved model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO deliverables (contract_id, name, budget_hours, start_date, due_date, status)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, contract_id, name, budget_hours, start_date, due_date, status, created_at, updated_at
	`, d.ContractID, d.Name, d.BudgetHours, d.StartDate, d.DueDate, d.Status).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *DeliverableRepository) Update(ctx context.Context, d model.Deliverable) (*model.Deliverable, error) {
	var saved model.Deliverable
	err := r.db.WithContext(ctx).Raw(`
		UPDATE deliverables
		SET name = ?, budget_hours = ?, start_date = ?, due_date = ?, status = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING id, contract_id, name, budget_hours, start_date, due_date, status, created_at, updated_at
	`, d.Name, d.BudgetHours, d.StartDate, d.DueDate, d.Status, d.ID).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *DeliverableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM deliverables WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

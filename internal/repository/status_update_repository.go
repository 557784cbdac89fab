package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
)

type StatusUpdateRepository struct {
	db *gorm.DB
}

func NewStatusUpdateRepository(db *gorm.DB) *StatusUpdateRepository {
	return &StatusUpdateRepository{db: db}
}

type StatusUpdateFilter struct {
	ContractID    *uuid.UUID
	DeliverableID *uuid.UUID
	Status        string
	PeriodEndFrom *time.Time
	PeriodEndTo   *time.Time
}

const statusUpdateColumns = `
	u.id, u.deliverable_id, u.period_end, u.status, u.summary, u.created_by_id, u.created_at
`

func (r *StatusUpdateRepository) List(ctx context.Context, filter StatusUpdateFilter) ([]model.StatusUpdate, error) {
	query := `
		SELECT ` + statusUpdateColumns + `
		FROM status_updates u
		JOIN deliverables d ON d.id = u.deliverable_id
		WHERE 1=1
	`
	var args []interface{}

	if filter.ContractID != nil {
		query += " AND d.contract_id = ?"
		args = append(args, *filter.ContractID)
	}
	if filter.DeliverableID != nil {
		query += " AND u.deliverable_id = ?"
		args = append(args, *filter.DeliverableID)
	}
	if filter.Status != "" {
		query += " AND u.status = ?"
		args = append(args, filter.Status)
	}
	if filter.PeriodEndFrom != nil {
		query += " AND u.period_end >= ?"
		args = append(args, *filter.PeriodEndFrom)
	}
	if filter.PeriodEndTo != nil {
		query += " AND u.period_end <= ?"
		args = append(args, *filter.PeriodEndTo)
	}
	query += " ORDER BY u.period_end DESC, u.created_at DESC, u.id DESC"

	var updates []model.StatusUpdate
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

func (r *StatusUpdateRepository) Get(ctx context.Context, id uuid.UUID) (*model.StatusUpdate, error) {
	var update model.StatusUpdate
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+statusUpdateColumns+`
		FROM status_updates u
		WHERE u.id = ?
		LIMIT 1
	`, id).Scan(&update).Error
	if err != nil {
		return nil, err
	}
	if update.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &update, nil
}

func (r *StatusUpdateRepository) Create(ctx context.Context, u model.StatusUpdate) (*model.StatusUpdate, error) {
	var saved model.StatusUpdate
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO status_updates (deliverable_id, period_end, status, summary, created_by_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, deliverable_id, period_end, status, summary, created_by_id, created_at
	`, u.DeliverableID, u.PeriodEnd, u.Status, u.Summary, u.CreatedByID).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *StatusUpdateRepository) Update(ctx context.Context, u model.StatusUpdate) (*model.StatusUpdate, error) {
	var saved model.StatusUpdate
	err := r.db.WithContext(ctx).Raw(`
		UPDATE status_updates
		SET period_end = ?, status = ?, summary = ?
		WHERE id = ?
		RETURNING id, deliverable_id, period_end, status, summary, created_by_id, created_at
	`, u.PeriodEnd, u.Status, u.Summary, u.ID).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *StatusUpdateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM status_updates WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

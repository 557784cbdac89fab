package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// ContractFilter holds the canonical list query params. Health-flag filters
// are not here: those are applied by the service after rollups are computed.
type ContractFilter struct {
	Status        string
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	EndDateFrom   *time.Time
	EndDateTo     *time.Time
	Query         string
	OrderBy       string
	OrderDir      string
}

var contractOrderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"start_date": "start_date",
	"end_date":   "end_date",
}

func (r *ContractRepository) List(ctx context.Context, filter ContractFilter) ([]model.Contract, error) {
	query := `
		SELECT id, name, client_name, start_date, end_date, budget_hours, status, created_at, updated_at
		FROM contracts
		WHERE 1=1
	`
	var args []interface{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.StartDateFrom != nil {
		query += " AND start_date >= ?"
		args = append(args, *filter.StartDateFrom)
	}
	if filter.StartDateTo != nil {
		query += " AND start_date <= ?"
		args = append(args, *filter.StartDateTo)
	}
	if filter.EndDateFrom != nil {
		query += " AND end_date >= ?"
		args = append(args, *filter.EndDateFrom)
	}
	if filter.EndDateTo != nil {
		query += " AND end_date <= ?"
		args = append(args, *filter.EndDateTo)
	}
	if filter.Query != "" {
		query += " AND (name ILIKE ? OR client_name ILIKE ?)"
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}

	query += orderClause(contractOrderColumns, filter.OrderBy, filter.OrderDir, "created_at DESC")

	var contracts []model.Contract
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// ListByIDs batch-loads contracts for a page of deliverables so the rollup
// date fallback does not query per row.
func (r *ContractRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Contract, error) {
	byID := make(map[uuid.UUID]model.Contract, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, client_name, start_date, end_date, budget_hours, status, created_at, updated_at
		FROM contracts
		WHERE id = ANY(?)
	`, ids).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	for _, c := range contracts {
		byID[c.ID] = c
	}
	return byID, nil
}

func (r *ContractRepository) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, client_name, start_date, end_date, budget_hours, status, created_at, updated_at
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *ContractRepository) Create(ctx context.Context, c model.Contract) (*model.Contract, error) {
	var saved model.Contract
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts (name, client_name, start_date, end_date, budget_hours, status)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, name, client_name, start_date, end_date, budget_hours, status, created_at, updated_at
	`, c.Name, c.ClientName, c.StartDate, c.EndDate, c.BudgetHours, c.Status).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ContractRepository) Update(ctx context.Context, c model.Contract) (*model.Contract, error) {
	var saved model.Contract
	err := r.db.WithContext(ctx).Raw(`
		UPDATE contracts
		SET name = ?, client_name = ?, start_date = ?, end_date = ?, budget_hours = ?, status = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING id, name, client_name, start_date, end_date, budget_hours, status, created_at, updated_at
	`, c.Name, c.ClientName, c.StartDate, c.EndDate, c.BudgetHours, c.Status, c.ID).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM contracts WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContractRepository) CountDeliverables(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM deliverables WHERE contract_id = ?
	`, id).Scan(&count).Error
	return count, err
}

// orderClause builds a safe ORDER BY from whitelisted columns.
func orderClause(columns map[string]string, orderBy, orderDir, fallback string) string {
	column, ok := columns[orderBy]
	if !ok {
		return " ORDER BY " + fallback
	}
	dir := "ASC"
	if strings.EqualFold(orderDir, "desc") {
		dir = "DESC"
	}
	return " ORDER BY " + column + " " + dir
}

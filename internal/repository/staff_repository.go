package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

type StaffFilter struct {
	Status string
	Role   string
	Query  string
}

const staffColumns = `
	id, email, first_name, last_name, role, status, expected_hours_per_week, created_at, updated_at
`

func (r *StaffRepository) List(ctx context.Context, filter StaffFilter) ([]model.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Role != "" {
		query += " AND role = ?"
		args = append(args, filter.Role)
	}
	if filter.Query != "" {
		query += " AND (email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?)"
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += " ORDER BY last_name ASC, first_name ASC"

	var staff []model.Staff
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepository) Get(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	var member model.Staff
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+staffColumns+`
		FROM staff
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&member).Error
	if err != nil {
		return nil, err
	}
	if member.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &member, nil
}

func (r *StaffRepository) Create(ctx context.Context, s model.Staff) (*model.Staff, error) {
	var saved model.Staff
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO staff (email, first_name, last_name, role, status, expected_hours_per_week)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, email, first_name, last_name, role, status, expected_hours_per_week, created_at, updated_at
	`, s.Email, s.FirstName, s.LastName, s.Role, s.Status, s.ExpectedHoursPerWeek).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *StaffRepository) Update(ctx context.Context, s model.Staff) (*model.Staff, error) {
	var saved model.Staff
	err := r.db.WithContext(ctx).Raw(`
		UPDATE staff
		SET email = ?, first_name = ?, last_name = ?, role = ?, status = ?, expected_hours_per_week = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING id, email, first_name, last_name, role, status, expected_hours_per_week, created_at, updated_at
	`, s.Email, s.FirstName, s.LastName, s.Role, s.Status, s.ExpectedHoursPerWeek, s.ID).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *StaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM staff WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

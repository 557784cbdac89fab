package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danebr/trackops/internal/model"
)

type TimeEntryRepository struct {
	db *gorm.DB
}

func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

type TimeEntryFilter struct {
	ContractID    *uuid.UUID
	DeliverableID *uuid.UUID
	StaffID       *uuid.UUID
	EntryDateFrom *time.Time
	EntryDateTo   *time.Time
	OrderBy       string
	OrderDir      string
}

var timeEntryOrderColumns = map[string]string{
	"id":         "e.id",
	"entry_date": "e.entry_date",
}

const timeEntryColumns = `
	e.id, e.deliverable_id, e.staff_id, e.entry_date, e.hours, e.note,
	e.external_source, e.external_id, e.created_at, e.updated_at
`

func (r *TimeEntryRepository) List(ctx context.Context, filter TimeEntryFilter) ([]model.TimeEntry, error) {
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries e
		JOIN deliverables d ON d.id = e.deliverable_id
		WHERE 1=1
	`
	var args []interface{}

	if filter.ContractID != nil {
		query += " AND d.contract_id = ?"
		args = append(args, *filter.ContractID)
	}
	if filter.DeliverableID != nil {
		query += " AND e.deliverable_id = ?"
		args = append(args, *filter.DeliverableID)
	}
	if filter.StaffID != nil {
		query += " AND e.staff_id = ?"
		args = append(args, *filter.StaffID)
	}
	if filter.EntryDateFrom != nil {
		query += " AND e.entry_date >= ?"
		args = append(args, *filter.EntryDateFrom)
	}
	if filter.EntryDateTo != nil {
		query += " AND e.entry_date <= ?"
		args = append(args, *filter.EntryDateTo)
	}

	query += orderClause(timeEntryOrderColumns, filter.OrderBy, filter.OrderDir, "e.entry_date ASC, e.id ASC")

	var entries []model.TimeEntry
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListForExport joins staff, deliverable and contract names for the
// spreadsheet export.
func (r *TimeEntryRepository) ListForExport(ctx context.Context, filter TimeEntryFilter) ([]model.TimeEntryExportRow, error) {
	query := `
		SELECT
			e.entry_date,
			e.hours,
			e.note,
			s.first_name || ' ' || s.last_name AS staff_name,
			d.name AS deliverable_name,
			c.name AS contract_name
		FROM time_entries e
		JOIN deliverables d ON d.id = e.deliverable_id
		JOIN contracts c ON c.id = d.contract_id
		JOIN staff s ON s.id = e.staff_id
		WHERE 1=1
	`
	var args []interface{}

	if filter.ContractID != nil {
		query += " AND d.contract_id = ?"
		args = append(args, *filter.ContractID)
	}
	if filter.DeliverableID != nil {
		query += " AND e.deliverable_id = ?"
		args = append(args, *filter.DeliverableID)
	}
	if filter.StaffID != nil {
		query += " AND e.staff_id = ?"
		args = append(args, *filter.StaffID)
	}
	if filter.EntryDateFrom != nil {
		query += " AND e.entry_date >= ?"
		args = append(args, *filter.EntryDateFrom)
	}
	if filter.EntryDateTo != nil {
		query += " AND e.entry_date <= ?"
		args = append(args, *filter.EntryDateTo)
	}
	query += " ORDER BY e.entry_date ASC, e.id ASC"

	var rows []model.TimeEntryExportRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TimeEntryRepository) Get(ctx context.Context, id uuid.UUID) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+timeEntryColumns+`
		FROM time_entries e
		WHERE e.id = ?
		LIMIT 1
	`, id).Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &entry, nil
}

// FindExternal looks up an entry by its idempotency pair so integrations
// can re-send without duplicating.
func (r *TimeEntryRepository) FindExternal(ctx context.Context, source, externalID string) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+timeEntryColumns+`
		FROM time_entries e
		WHERE e.external_source = ? AND e.external_id = ?
		LIMIT 1
	`, source, externalID).Scan(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &entry, nil
}

func (r *TimeEntryRepository) Create(ctx context.Context, e model.TimeEntry) (*model.TimeEntry, error) {
	var saved model.TimeEntry
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO time_entries (deliverable_id, staff_id, entry_date, hours, note, external_source, external_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id, deliverable_id, staff_id, entry_date, hours, note,
			external_source, external_id, created_at, updated_at
	`, e.DeliverableID, e.StaffID, e.EntryDate, e.Hours, e.Note, e.ExternalSource, e.ExternalID).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TimeEntryRepository) Update(ctx context.Context, e model.TimeEntry) (*model.TimeEntry, error) {
	var saved model.TimeEntry
	err := r.db.WithContext(ctx).Raw(`
		UPDATE time_entries
		SET entry_date = ?, hours = ?, note = ?, updated_at = NOW()
		WHERE id = ?
		RETURNING id, deliverable_id, staff_id, entry_date, hours, note,
			external_source, external_id, created_at, updated_at
	`, e.EntryDate, e.Hours, e.Note, e.ID).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *TimeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM time_entries WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

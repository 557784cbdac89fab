package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_status') THEN
			CREATE TYPE contract_status AS ENUM ('draft', 'active', 'closed');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'deliverable_status') THEN
			CREATE TYPE deliverable_status AS ENUM ('planned', 'in_progress', 'complete', 'blocked');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'update_status') THEN
			CREATE TYPE update_status AS ENUM ('on_track', 'at_risk', 'off_track');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'task_status') THEN
			CREATE TYPE task_status AS ENUM ('todo', 'in_progress', 'done', 'blocked');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'staff_role') THEN
			CREATE TYPE staff_role AS ENUM ('staff', 'manager', 'admin');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'staff_status') THEN
			CREATE TYPE staff_status AS ENUM ('active', 'inactive');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS staff (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(254) NOT NULL UNIQUE,
		first_name VARCHAR(150) NOT NULL,
		last_name VARCHAR(150) NOT NULL,
		role staff_role NOT NULL DEFAULT 'staff',
		status staff_status NOT NULL DEFAULT 'active',
		expected_hours_per_week NUMERIC(10,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL DEFAULT '',
		client_name VARCHAR(255) NOT NULL DEFAULT '',
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		budget_hours NUMERIC(10,2) NOT NULL CHECK (budget_hours >= 0),
		status contract_status NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT contract_end_after_start CHECK (end_date >= start_date)
	);`,
	`CREATE TABLE IF NOT EXISTS deliverables (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES contracts(id) ON DELETE RESTRICT,
		name VARCHAR(255) NOT NULL DEFAULT '',
		budget_hours NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (budget_hours >= 0),
		start_date DATE,
		due_date DATE,
		status deliverable_status NOT NULL DEFAULT 'planned',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT deliverable_due_after_start CHECK (
			due_date IS NULL OR start_date IS NULL OR due_date >= start_date
		)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_deliverables_contract_id ON deliverables (contract_id);`,
	`CREATE TABLE IF NOT EXISTS deliverable_assignments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		deliverable_id UUID NOT NULL REFERENCES deliverables(id) ON DELETE CASCADE,
		staff_id UUID NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
		expected_hours NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (expected_hours >= 0),
		is_lead BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uniq_deliverable_staff_assignment UNIQUE (deliverable_id, staff_id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_deliverable_id ON deliverable_assignments (deliverable_id);`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_staff_id ON deliverable_assignments (staff_id);`,
	`CREATE TABLE IF NOT EXISTS time_entries (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		deliverable_id UUID NOT NULL REFERENCES deliverables(id) ON DELETE CASCADE,
		staff_id UUID NOT NULL REFERENCES staff(id) ON DELETE RESTRICT,
		entry_date DATE NOT NULL,
		hours NUMERIC(10,2) NOT NULL CHECK (hours > 0),
		note TEXT NOT NULL DEFAULT '',
		external_source VARCHAR(100) NOT NULL DEFAULT '',
		external_id VARCHAR(200) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_deliverable_date ON time_entries (deliverable_id, entry_date);`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_staff_date ON time_entries (staff_id, entry_date);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_external_time_entry
		ON time_entries (external_source, external_id)
		WHERE external_source > '';`,
	`CREATE TABLE IF NOT EXISTS status_updates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		deliverable_id UUID NOT NULL REFERENCES deliverables(id) ON DELETE CASCADE,
		period_end DATE NOT NULL,
		status update_status NOT NULL,
		summary TEXT NOT NULL DEFAULT '',
		created_by_id UUID REFERENCES staff(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uniq_deliverable_period_end UNIQUE (deliverable_id, period_end)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_status_updates_deliverable_period ON status_updates (deliverable_id, period_end);`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		deliverable_id UUID NOT NULL REFERENCES deliverables(id) ON DELETE CASCADE,
		assignee_id UUID REFERENCES staff(id) ON DELETE SET NULL,
		title VARCHAR(255) NOT NULL,
		budget_hours NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (budget_hours >= 0),
		status task_status NOT NULL DEFAULT 'todo',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_deliverable_id ON tasks (deliverable_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

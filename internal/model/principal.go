package model

import "github.com/google/uuid"

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	StaffID uuid.UUID
	Role    StaffRole
}

func (p Principal) IsAdmin() bool   { return p.Role == StaffRoleAdmin }
func (p Principal) IsManager() bool { return p.Role == StaffRoleManager }
func (p Principal) IsStaff() bool   { return p.Role == StaffRoleStaff }

// CanWrite reports whether the principal may mutate records. Staff members
// are read-only across the API apart from their own time entries and tasks.
func (p Principal) CanWrite() bool {
	return p.Role == StaffRoleAdmin || p.Role == StaffRoleManager
}

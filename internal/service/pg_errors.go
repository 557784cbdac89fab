package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation detects unique-constraint failures surfaced either as
// gorm's translated error or as the raw postgres message.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}

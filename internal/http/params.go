package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/service"
)

func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id", service.ErrInvalidInput)
	}
	return id, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}

// parseBool accepts the same spellings the query API documents:
// true/1/yes and false/0/no, case-insensitive.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, service.ErrInvalidInput
	}
}

func queryUUIDPtr(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", service.ErrInvalidInput, name)
	}
	return &id, nil
}

func queryDatePtr(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	parsed, err := parseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", service.ErrInvalidInput, name)
	}
	return &parsed, nil
}

func queryBoolPtr(c *gin.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	parsed, err := parseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", service.ErrInvalidInput, name)
	}
	return &parsed, nil
}

// healthFilters collects the computed-flag query params a listing supports.
// Only params that are present become filters; everything else is left to
// the base query.
func healthFilters(c *gin.Context, names ...string) ([]service.HealthFilter, error) {
	var filters []service.HealthFilter
	for _, name := range names {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			continue
		}
		want, err := parseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid %s", service.ErrInvalidInput, name)
		}
		filters = append(filters, service.HealthFilter{Name: name, Want: want})
	}
	return filters, nil
}

package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danebr/trackops/internal/rollup"
)

func TestParseBool(t *testing.T) {
	truthy := []string{"true", "1", "yes", "TRUE", " Yes "}
	for _, raw := range truthy {
		got, err := parseBool(raw)
		if err != nil || !got {
			t.Errorf("parseBool(%q) = %v, %v, want true", raw, got, err)
		}
	}

	falsy := []string{"false", "0", "no", "False"}
	for _, raw := range falsy {
		got, err := parseBool(raw)
		if err != nil || got {
			t.Errorf("parseBool(%q) = %v, %v, want false", raw, got, err)
		}
	}

	for _, raw := range []string{"", "maybe", "2", "on"} {
		if _, err := parseBool(raw); err == nil {
			t.Errorf("parseBool(%q) accepted an invalid value", raw)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2026-03-02", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"2026-03-02T10:30:00", time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)},
		{"2026-03-02T10:30:00Z", time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.raw)
		if err != nil {
			t.Errorf("parseDate(%q) returned error: %v", tt.raw, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	for _, raw := range []string{"", "03/02/2026", "not-a-date"} {
		if _, err := parseDate(raw); err == nil {
			t.Errorf("parseDate(%q) accepted an invalid value", raw)
		}
	}
}

func TestHealthFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/contracts?over_budget=true&over_expected=no&unrelated=1", nil)

	filters, err := healthFilters(c, rollup.FlagOverBudget, rollup.FlagOverExpected, rollup.FlagOverassigned)
	if err != nil {
		t.Fatalf("healthFilters returned error: %v", err)
	}
	if len(filters) != 2 {
		t.Fatalf("got %d filters, want 2", len(filters))
	}
	if filters[0].Name != rollup.FlagOverBudget || !filters[0].Want {
		t.Errorf("first filter = %+v, want over_budget=true", filters[0])
	}
	if filters[1].Name != rollup.FlagOverExpected || filters[1].Want {
		t.Errorf("second filter = %+v, want over_expected=false", filters[1])
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/contracts?over_budget=maybe", nil)
	if _, err := healthFilters(c, rollup.FlagOverBudget); err == nil {
		t.Error("healthFilters accepted an invalid flag value")
	}
}

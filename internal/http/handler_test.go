package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/danebr/trackops/internal/service"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{log: zerolog.Nop()}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"permission denied", service.ErrPermissionDenied, http.StatusForbidden},
		{"invalid input", service.ErrInvalidInput, http.StatusBadRequest},
		{"wrapped invalid input", fmt.Errorf("%w: hours must be positive", service.ErrInvalidInput), http.StatusBadRequest},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"conflict", fmt.Errorf("%w: contract has 2 deliverables", service.ErrConflict), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			h.handleError(c, tt.err)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/http/middleware"
	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
	"github.com/danebr/trackops/internal/service"
)

type staffRequest struct {
	Email                string  `json:"email" binding:"required"`
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	Role                 string  `json:"role"`
	Status               string  `json:"status"`
	ExpectedHoursPerWeek float64 `json:"expected_hours_per_week"`
}

func (h *Handler) listStaff(c *gin.Context) {
	filter := repository.StaffFilter{
		Status: strings.TrimSpace(c.Query("status")),
		Role:   strings.TrimSpace(c.Query("role")),
		Query:  strings.TrimSpace(c.Query("q")),
	}

	members, err := h.staff.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": members})
}

func (h *Handler) getStaff(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	member, err := h.staff.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *Handler) createStaff(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	member, err := bindStaff(c, uuid.Nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.staff.Create(c.Request.Context(), service.StaffInput{Staff: *member, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateStaff(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	member, err := bindStaff(c, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	updated, err := h.staff.Update(c.Request.Context(), service.StaffInput{Staff: *member, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteStaff(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if err := h.staff.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindStaff(c *gin.Context, id uuid.UUID) (*model.Staff, error) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, service.ErrInvalidInput
	}

	return &model.Staff{
		ID:                   id,
		Email:                strings.TrimSpace(req.Email),
		FirstName:            strings.TrimSpace(req.FirstName),
		LastName:             strings.TrimSpace(req.LastName),
		Role:                 model.StaffRole(strings.TrimSpace(req.Role)),
		Status:               model.StaffStatus(strings.TrimSpace(req.Status)),
		ExpectedHoursPerWeek: req.ExpectedHoursPerWeek,
	}, nil
}

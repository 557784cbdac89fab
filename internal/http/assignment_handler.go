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

type assignmentRequest struct {
	DeliverableID string  `json:"deliverable_id" binding:"required"`
	StaffID       string  `json:"staff_id" binding:"required"`
	ExpectedHours float64 `json:"expected_hours"`
	IsLead        bool    `json:"is_lead"`
}

func (h *Handler) listAssignments(c *gin.Context) {
	var filter repository.AssignmentFilter
	var err error
	if filter.ContractID, err = queryUUIDPtr(c, "contract_id"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.DeliverableID, err = queryUUIDPtr(c, "deliverable_id"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.StaffID, err = queryUUIDPtr(c, "staff_id"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.LeadOnly, err = queryBoolPtr(c, "lead_only"); err != nil {
		h.handleError(c, err)
		return
	}

	assignments, err := h.assignments.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

func (h *Handler) getAssignment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	assignment, err := h.assignments.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *Handler) createAssignment(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	assignment, err := bindAssignment(c, uuid.Nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.assignments.Create(c.Request.Context(), service.AssignmentInput{Assignment: *assignment, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateAssignment(c *gin.Context) {
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
	assignment, err := bindAssignment(c, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	updated, err := h.assignments.Update(c.Request.Context(), service.AssignmentInput{Assignment: *assignment, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteAssignment(c *gin.Context) {
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
	if err := h.assignments.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindAssignment(c *gin.Context, id uuid.UUID) (*model.Assignment, error) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, service.ErrInvalidInput
	}

	deliverableID, err := uuid.Parse(strings.TrimSpace(req.DeliverableID))
	if err != nil {
		return nil, service.ErrInvalidInput
	}
	staffID, err := uuid.Parse(strings.TrimSpace(req.StaffID))
	if err != nil {
		return nil, service.ErrInvalidInput
	}

	return &model.Assignment{
		ID:            id,
		DeliverableID: deliverableID,
		StaffID:       staffID,
		ExpectedHours: req.ExpectedHours,
		IsLead:        req.IsLead,
	}, nil
}

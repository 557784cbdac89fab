package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/http/middleware"
	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
	"github.com/danebr/trackops/internal/rollup"
	"github.com/danebr/trackops/internal/service"
)

type deliverableRequest struct {
	ContractID  string  `json:"contract_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	BudgetHours float64 `json:"budget_hours"`
	StartDate   string  `json:"start_date"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
}

func (h *Handler) listDeliverables(c *gin.Context) {
	filter := repository.DeliverableFilter{
		Status:   strings.TrimSpace(c.Query("status")),
		Query:    strings.TrimSpace(c.Query("q")),
		OrderBy:  strings.TrimSpace(c.Query("order_by")),
		OrderDir: strings.TrimSpace(c.Query("order_dir")),
	}

	var err error
	if filter.ContractID, err = queryUUIDPtr(c, "contract_id"); err != nil {
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
	if filter.HasAssignments, err = queryBoolPtr(c, "has_assignments"); err != nil {
		h.handleError(c, err)
		return
	}
	// unassigned=true is shorthand for has_assignments=false.
	unassigned, err := queryBoolPtr(c, "unassigned")
	if err != nil {
		h.handleError(c, err)
		return
	}
	if unassigned != nil && filter.HasAssignments == nil {
		inverse := !*unassigned
		filter.HasAssignments = &inverse
	}
	if filter.DueDateFrom, err = queryDatePtr(c, "due_date_from"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.DueDateTo, err = queryDatePtr(c, "due_date_to"); err != nil {
		h.handleError(c, err)
		return
	}

	health, err := healthFilters(c, rollup.FlagOverExpected, rollup.FlagMissingLead, rollup.FlagMissingEstimate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	deliverables, err := h.deliverables.List(c.Request.Context(), service.DeliverableListInput{Filter: filter, Health: health})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliverables": deliverables})
}

func (h *Handler) getDeliverable(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	deliverable, err := h.deliverables.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliverable)
}

func (h *Handler) createDeliverable(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	deliverable, err := bindDeliverable(c, uuid.Nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.deliverables.Create(c.Request.Context(), service.DeliverableInput{Deliverable: *deliverable, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateDeliverable(c *gin.Context) {
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
	deliverable, err := bindDeliverable(c, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	updated, err := h.deliverables.Update(c.Request.Context(), service.DeliverableInput{Deliverable: *deliverable, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteDeliverable(c *gin.Context) {
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
	if err := h.deliverables.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindDeliverable(c *gin.Context, id uuid.UUID) (*model.Deliverable, error) {
	var req deliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, service.ErrInvalidInput
	}

	contractID, err := uuid.Parse(strings.TrimSpace(req.ContractID))
	if err != nil {
		return nil, service.ErrInvalidInput
	}

	var start, due *time.Time
	if strings.TrimSpace(req.StartDate) != "" {
		parsed, err := parseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		start = &parsed
	}
	if strings.TrimSpace(req.DueDate) != "" {
		parsed, err := parseDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		due = &parsed
	}

	return &model.Deliverable{
		ID:          id,
		ContractID:  contractID,
		Name:        strings.TrimSpace(req.Name),
		BudgetHours: req.BudgetHours,
		StartDate:   start,
		DueDate:     due,
		Status:      model.DeliverableStatus(strings.TrimSpace(req.Status)),
	}, nil
}

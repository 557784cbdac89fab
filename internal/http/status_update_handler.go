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

type statusUpdateRequest struct {
	DeliverableID string `json:"deliverable_id" binding:"required"`
	PeriodEnd     string `json:"period_end" binding:"required"`
	Status        string `json:"status" binding:"required"`
	Summary       string `json:"summary"`
}

func (h *Handler) listStatusUpdates(c *gin.Context) {
	filter := repository.StatusUpdateFilter{
		Status: strings.TrimSpace(c.Query("status")),
	}

	var err error
	if filter.ContractID, err = queryUUIDPtr(c, "contract_id"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.DeliverableID, err = queryUUIDPtr(c, "deliverable_id"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.PeriodEndFrom, err = queryDatePtr(c, "period_end_from"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.PeriodEndTo, err = queryDatePtr(c, "period_end_to"); err != nil {
		h.handleError(c, err)
		return
	}

	updates, err := h.statusUpdates.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status_updates": updates})
}

func (h *Handler) getStatusUpdate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	update, err := h.statusUpdates.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

func (h *Handler) createStatusUpdate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	update, err := bindStatusUpdate(c, uuid.Nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.statusUpdates.Create(c.Request.Context(), service.StatusUpdateInput{Update: *update, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateStatusUpdate(c *gin.Context) {
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
	update, err := bindStatusUpdate(c, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	updated, err := h.statusUpdates.Update(c.Request.Context(), service.StatusUpdateInput{Update: *update, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteStatusUpdate(c *gin.Context) {
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
	if err := h.statusUpdates.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindStatusUpdate(c *gin.Context, id uuid.UUID) (*model.StatusUpdate, error) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, service.ErrInvalidInput
	}

	deliverableID, err := uuid.Parse(strings.TrimSpace(req.DeliverableID))
	if err != nil {
		return nil, service.ErrInvalidInput
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	return &model.StatusUpdate{
		ID:            id,
		DeliverableID: deliverableID,
		PeriodEnd:     periodEnd,
		Status:        model.UpdateStatus(strings.TrimSpace(req.Status)),
		Summary:       strings.TrimSpace(req.Summary),
	}, nil
}

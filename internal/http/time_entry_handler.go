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

type timeEntryRequest struct {
	DeliverableID  string  `json:"deliverable_id" binding:"required"`
	StaffID        string  `json:"staff_id" binding:"required"`
	EntryDate      string  `json:"entry_date" binding:"required"`
	Hours          float64 `json:"hours"`
	Note           string  `json:"note"`
	ExternalSource string  `json:"external_source"`
	ExternalID     string  `json:"external_id"`
}

func (h *Handler) listTimeEntries(c *gin.Context) {
	filter, err := timeEntryFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	entries, err := h.timeEntries.List(c.Request.Context(), *filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"time_entries": entries})
}

func (h *Handler) getTimeEntry(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	entry, err := h.timeEntries.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) createTimeEntry(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	entry, err := bindTimeEntry(c, uuid.Nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.timeEntries.Create(c.Request.Context(), service.TimeEntryInput{Entry: *entry, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateTimeEntry(c *gin.Context) {
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
	entry, err := bindTimeEntry(c, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	updated, err := h.timeEntries.Update(c.Request.Context(), service.TimeEntryInput{Entry: *entry, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteTimeEntry(c *gin.Context) {
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
	if err := h.timeEntries.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func timeEntryFilter(c *gin.Context) (*repository.TimeEntryFilter, error) {
	filter := repository.TimeEntryFilter{
		OrderBy:  strings.TrimSpace(c.Query("order_by")),
		OrderDir: strings.TrimSpace(c.Query("order_dir")),
	}

	var err error
	if filter.ContractID, err = queryUUIDPtr(c, "contract_id"); err != nil {
		return nil, err
	}
	if filter.DeliverableID, err = queryUUIDPtr(c, "deliverable_id"); err != nil {
		return nil, err
	}
	if filter.StaffID, err = queryUUIDPtr(c, "staff_id"); err != nil {
		return nil, err
	}
	if filter.EntryDateFrom, err = queryDatePtr(c, "entry_date_from"); err != nil {
		return nil, err
	}
	if filter.EntryDateTo, err = queryDatePtr(c, "entry_date_to"); err != nil {
		return nil, err
	}
	return &filter, nil
}

func bindTimeEntry(c *gin.Context, id uuid.UUID) (*model.TimeEntry, error) {
	var req timeEntryRequest
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
	entryDate, err := parseDate(req.EntryDate)
	if err != nil {
		return nil, err
	}

	return &model.TimeEntry{
		ID:             id,
		DeliverableID:  deliverableID,
		StaffID:        staffID,
		EntryDate:      entryDate,
		Hours:          req.Hours,
		Note:           strings.TrimSpace(req.Note),
		ExternalSource: strings.TrimSpace(req.ExternalSource),
		ExternalID:     strings.TrimSpace(req.ExternalID),
	}, nil
}

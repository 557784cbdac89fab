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

type taskRequest struct {
	DeliverableID string  `json:"deliverable_id" binding:"required"`
	AssigneeID    string  `json:"assignee_id"`
	Title         string  `json:"title" binding:"required"`
	BudgetHours   float64 `json:"budget_hours"`
	Status        string  `json:"status"`
}

func (h *Handler) listTasks(c *gin.Context) {
	filter := repository.TaskFilter{
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
	if filter.DeliverableID, err = queryUUIDPtr(c, "deliverable_id"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.AssigneeID, err = queryUUIDPtr(c, "assignee_id"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.Unassigned, err = queryBoolPtr(c, "unassigned"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.DueDateFrom, err = queryDatePtr(c, "due_date_from"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.DueDateTo, err = queryDatePtr(c, "due_date_to"); err != nil {
		h.handleError(c, err)
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) getTask(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	task, err := h.tasks.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) createTask(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	task, err := bindTask(c, uuid.Nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.tasks.Create(c.Request.Context(), service.TaskInput{Task: *task, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateTask(c *gin.Context) {
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
	task, err := bindTask(c, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	updated, err := h.tasks.Update(c.Request.Context(), service.TaskInput{Task: *task, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteTask(c *gin.Context) {
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
	if err := h.tasks.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindTask(c *gin.Context, id uuid.UUID) (*model.Task, error) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, service.ErrInvalidInput
	}

	deliverableID, err := uuid.Parse(strings.TrimSpace(req.DeliverableID))
	if err != nil {
		return nil, service.ErrInvalidInput
	}
	var assigneeID *uuid.UUID
	if trimmed := strings.TrimSpace(req.AssigneeID); trimmed != "" {
		parsed, err := uuid.Parse(trimmed)
		if err != nil {
			return nil, service.ErrInvalidInput
		}
		assigneeID = &parsed
	}

	return &model.Task{
		ID:            id,
		DeliverableID: deliverableID,
		AssigneeID:    assigneeID,
		Title:         req.Title,
		BudgetHours:   req.BudgetHours,
		Status:        model.TaskStatus(strings.TrimSpace(req.Status)),
	}, nil
}

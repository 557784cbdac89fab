package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/http/middleware"
	"github.com/danebr/trackops/internal/model"
	"github.com/danebr/trackops/internal/repository"
	"github.com/danebr/trackops/internal/rollup"
	"github.com/danebr/trackops/internal/service"
)

type contractRequest struct {
	Name        string  `json:"name" binding:"required"`
	ClientName  string  `json:"client_name"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	BudgetHours float64 `json:"budget_hours"`
	Status      string  `json:"status"`
}

func (h *Handler) listContracts(c *gin.Context) {
	filter := repository.ContractFilter{
		Status:   strings.TrimSpace(c.Query("status")),
		Query:    strings.TrimSpace(c.Query("q")),
		OrderBy:  strings.TrimSpace(c.Query("order_by")),
		OrderDir: strings.TrimSpace(c.Query("order_dir")),
	}

	var err error
	if filter.StartDateFrom, err = queryDatePtr(c, "start_date_from"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.StartDateTo, err = queryDatePtr(c, "start_date_to"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.EndDateFrom, err = queryDatePtr(c, "end_date_from"); err != nil {
		h.handleError(c, err)
		return
	}
	if filter.EndDateTo, err = queryDatePtr(c, "end_date_to"); err != nil {
		h.handleError(c, err)
		return
	}

	health, err := healthFilters(c, rollup.FlagOverBudget, rollup.FlagOverExpected, rollup.FlagOverassigned)
	if err != nil {
		h.handleError(c, err)
		return
	}

	contracts, err := h.contracts.List(c.Request.Context(), service.ContractListInput{Filter: filter, Health: health})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}

func (h *Handler) getContract(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	contract, err := h.contracts.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) createContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	contract, err := bindContract(c, uuid.Nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.contracts.Create(c.Request.Context(), service.ContractInput{Contract: *contract, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateContract(c *gin.Context) {
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
	contract, err := bindContract(c, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	updated, err := h.contracts.Update(c.Request.Context(), service.ContractInput{Contract: *contract, Principal: principal})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteContract(c *gin.Context) {
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
	if err := h.contracts.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindContract(c *gin.Context, id uuid.UUID) (*model.Contract, error) {
	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, service.ErrInvalidInput
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	return &model.Contract{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		ClientName:  strings.TrimSpace(req.ClientName),
		StartDate:   start,
		EndDate:     end,
		BudgetHours: req.BudgetHours,
		Status:      model.ContractStatus(strings.TrimSpace(req.Status)),
	}, nil
}

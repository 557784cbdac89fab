package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) contractBurnReport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	report, err := h.reports.ContractBurn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) contractDeliverablesReport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	report, err := h.reports.ContractDeliverables(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) deliverableBurnReport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	report, err := h.reports.DeliverableBurn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) statusHistoryReport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	report, err := h.reports.DeliverableStatusHistory(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) staffTimeReport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	from, err := queryDatePtr(c, "from")
	if err != nil {
		h.handleError(c, err)
		return
	}
	to, err := queryDatePtr(c, "to")
	if err != nil {
		h.handleError(c, err)
		return
	}

	report, err := h.reports.StaffTime(c.Request.Context(), id, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

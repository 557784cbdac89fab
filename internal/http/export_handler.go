package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

func (h *Handler) exportTimeEntries(c *gin.Context) {
	filter, err := timeEntryFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.exports.TimeEntries(c.Request.Context(), *filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentTypeXLSX, result.Content)
}

func (h *Handler) exportContractSummary(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.exports.ContractSummary(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentTypePDF, result.Content)
}

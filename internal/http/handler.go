package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/danebr/trackops/internal/service"
)

type Services struct {
	Contracts     *service.ContractService
	Deliverables  *service.DeliverableService
	Assignments   *service.AssignmentService
	TimeEntries   *service.TimeEntryService
	StatusUpdates *service.StatusUpdateService
	Tasks         *service.TaskService
	Staff         *service.StaffService
	Reports       *service.ReportService
	Exports       *service.ExportService
}

type Handler struct {
	contracts     *service.ContractService
	deliverables  *service.DeliverableService
	assignments   *service.AssignmentService
	timeEntries   *service.TimeEntryService
	statusUpdates *service.StatusUpdateService
	tasks         *service.TaskService
	staff         *service.StaffService
	reports       *service.ReportService
	exports       *service.ExportService
	log           zerolog.Logger
}

func NewHandler(svc Services, log zerolog.Logger) *Handler {
	return &Handler{
		contracts:     svc.Contracts,
		deliverables:  svc.Deliverables,
		assignments:   svc.Assignments,
		timeEntries:   svc.TimeEntries,
		statusUpdates: svc.StatusUpdates,
		tasks:         svc.Tasks,
		staff:         svc.Staff,
		reports:       svc.Reports,
		exports:       svc.Exports,
		log:           log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api/v1")
	api.Use(authMiddleware)

	api.GET("/contracts", h.listContracts)
	api.POST("/contracts", h.createContract)
	api.GET("/contracts/:id", h.getContract)
	api.PUT("/contracts/:id", h.updateContract)
	api.DELETE("/contracts/:id", h.deleteContract)

	api.GET("/deliverables", h.listDeliverables)
	api.POST("/deliverables", h.createDeliverable)
	api.GET("/deliverables/:id", h.getDeliverable)
	api.PUT("/deliverables/:id", h.updateDeliverable)
	api.DELETE("/deliverables/:id", h.deleteDeliverable)

	api.GET("/assignments", h.listAssignments)
	api.POST("/assignments", h.createAssignment)
	api.GET("/assignments/:id", h.getAssignment)
	api.PUT("/assignments/:id", h.updateAssignment)
	api.DELETE("/assignments/:id", h.deleteAssignment)

	api.GET("/time-entries", h.listTimeEntries)
	api.POST("/time-entries", h.createTimeEntry)
	api.GET("/time-entries/:id", h.getTimeEntry)
	api.PUT("/time-entries/:id", h.updateTimeEntry)
	api.DELETE("/time-entries/:id", h.deleteTimeEntry)

	api.GET("/status-updates", h.listStatusUpdates)
	api.POST("/status-updates", h.createStatusUpdate)
	api.GET("/status-updates/:id", h.getStatusUpdate)
	api.PUT("/status-updates/:id", h.updateStatusUpdate)
	api.DELETE("/status-updates/:id", h.deleteStatusUpdate)

	api.GET("/tasks", h.listTasks)
	api.POST("/tasks", h.createTask)
	api.GET("/tasks/:id", h.getTask)
	api.PUT("/tasks/:id", h.updateTask)
	api.DELETE("/tasks/:id", h.deleteTask)

	api.GET("/staff", h.listStaff)
	api.POST("/staff", h.createStaff)
	api.GET("/staff/:id", h.getStaff)
	api.PUT("/staff/:id", h.updateStaff)
	api.DELETE("/staff/:id", h.deleteStaff)

	api.GET("/reports/contracts/:id/burn", h.contractBurnReport)
	api.GET("/reports/contracts/:id/deliverables", h.contractDeliverablesReport)
	api.GET("/reports/deliverables/:id/burn", h.deliverableBurnReport)
	api.GET("/reports/deliverables/:id/status-history", h.statusHistoryReport)
	api.GET("/reports/staff/:id/time", h.staffTimeReport)

	api.GET("/exports/time-entries.xlsx", h.exportTimeEntries)
	api.GET("/exports/contracts/:id/summary.pdf", h.exportContractSummary)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/danebr/trackops/internal/auth"
	"github.com/danebr/trackops/internal/config"
	"github.com/danebr/trackops/internal/db"
	"github.com/danebr/trackops/internal/excel"
	httphandler "github.com/danebr/trackops/internal/http"
	"github.com/danebr/trackops/internal/http/middleware"
	"github.com/danebr/trackops/internal/logger"
	"github.com/danebr/trackops/internal/pdf"
	"github.com/danebr/trackops/internal/repository"
	"github.com/danebr/trackops/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	contractRepo := repository.NewContractRepository(database)
	deliverableRepo := repository.NewDeliverableRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)
	timeEntryRepo := repository.NewTimeEntryRepository(database)
	statusUpdateRepo := repository.NewStatusUpdateRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	staffRepo := repository.NewStaffRepository(database)
	rollupRepo := repository.NewRollupRepository(database)

	clock := service.SystemClock
	excelGenerator := excel.NewGenerator()
	pdfGenerator := pdf.NewGenerator()

	services := httphandler.Services{
		Contracts:     service.NewContractService(contractRepo, deliverableRepo, rollupRepo, clock),
		Deliverables:  service.NewDeliverableService(deliverableRepo, contractRepo, rollupRepo, clock),
		Assignments:   service.NewAssignmentService(assignmentRepo, deliverableRepo, staffRepo),
		TimeEntries:   service.NewTimeEntryService(timeEntryRepo, deliverableRepo),
		StatusUpdates: service.NewStatusUpdateService(statusUpdateRepo, deliverableRepo),
		Tasks:         service.NewTaskService(taskRepo, deliverableRepo, staffRepo),
		Staff:         service.NewStaffService(staffRepo),
		Reports: service.NewReportService(
			contractRepo, deliverableRepo, rollupRepo, timeEntryRepo, statusUpdateRepo, staffRepo, clock,
		),
		Exports: service.NewExportService(
			contractRepo, deliverableRepo, rollupRepo, timeEntryRepo, excelGenerator, pdfGenerator, clock,
		),
	}

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(services, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting trackops service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

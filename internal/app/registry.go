package app

import (
	"net/http"
	"time"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/config"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/csvreader"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/department"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/hiredate"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/hiredemployee"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/ingest"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/job"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/messaging/kafka"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/middleware"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/reconcile"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthMessage = "The server is running correctly!"

func newReportService(gormDB *gorm.DB, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) report.Service {
	return report.NewService(report.NewRepository(gormDB), rdb, ttl, logger)
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	deps *infra,
	logger *zap.Logger,
) {
	router.Use(middleware.RequestID())

	// --- Repositories ---
	departmentRepo := department.NewRepository(deps.gormDB)
	jobRepo := job.NewRepository(deps.gormDB)
	hiredEmployeeRepo := hiredemployee.NewRepository(deps.gormDB)
	outboxRepo := kafka.NewOutboxRepository(deps.sqlDB)

	// --- Reconcilers ---
	writers := ingest.Writers{
		Departments: reconcile.New[department.Department](department.Kind, deps.sqlDB, departmentRepo, department.Replace, logger).
			WithOutbox(outboxRepo),
		Jobs: reconcile.New[job.Job](job.Kind, deps.sqlDB, jobRepo, job.Replace, logger).
			WithOutbox(outboxRepo),
		HiredEmployees: reconcile.New[hiredemployee.HiredEmployee](hiredemployee.Kind, deps.sqlDB, hiredEmployeeRepo, hiredemployee.Replace, logger).
			WithOutbox(outboxRepo),
	}

	// --- Services ---
	dates := hiredate.NewNormalizer(logger)
	reportService := newReportService(deps.gormDB, deps.rdb, cfg.ReportCacheTTL, logger)
	ingestService := ingest.NewService(
		csvreader.NewReader(dates, logger),
		dates,
		writers,
		reportService,
		cfg.DateErrorPolicy,
		logger,
	)
	departmentService := department.NewService(departmentRepo)
	jobService := job.NewService(jobRepo)
	hiredEmployeeService := hiredemployee.NewService(hiredEmployeeRepo)

	// --- Handlers ---
	ingestHandler := ingest.NewHandler(ingestService, cfg.UploadDir, logger)
	reportHandler := report.NewHandler(reportService, cfg.ReportYear, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	jobHandler := job.NewHandler(jobService, logger)
	hiredEmployeeHandler := hiredemployee.NewHandler(hiredEmployeeService, logger)

	// --- Routes Registration ---
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, healthMessage)
	})
	router.GET("/healthz", func(c *gin.Context) {
		if err := deps.sqlDB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		ingest.RegisterRoutes(api, ingestHandler, logger, deps.rdb)
		report.RegisterRoutes(api, reportHandler, logger)
		department.RegisterRoutes(api, departmentHandler, logger)
		job.RegisterRoutes(api, jobHandler, logger)
		hiredemployee.RegisterRoutes(api, hiredEmployeeHandler, logger)
	}
}

package app

import (
	"database/sql"
	"path/filepath"

	"go-pontaj/internal/absencetype"
	"go-pontaj/internal/delegation"
	"go-pontaj/internal/employee"
	"go-pontaj/internal/messaging/kafka"
	"go-pontaj/internal/rbac"
	"go-pontaj/internal/rbac/infra"
	"go-pontaj/internal/report"
	"go-pontaj/internal/shared/counter"
	"go-pontaj/internal/store"
	"go-pontaj/internal/timesheet"
	"go-pontaj/internal/zone"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	absenceTypeRepo := absencetype.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	delegationRepo := delegation.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	reportRepo := report.NewRepository(gormDB)
	storeRepo := store.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	zoneRepo := zone.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	absenceTypeService := absencetype.NewService(db, absenceTypeRepo, rdb)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo)
	delegationService := delegation.NewService(db, delegationRepo, employeeService)
	reportService := report.NewService(reportRepo)
	storeService := store.NewService(db, storeRepo)
	timesheetService := timesheet.NewServiceWithOutbox(db, timesheetRepo, delegationService, outboxRepo)
	zoneService := zone.NewService(zoneRepo)

	// --- Handlers ---
	absenceTypeHandler := absencetype.NewHandler(absenceTypeService)
	delegationHandler := delegation.NewHandler(delegationService)
	employeeHandler := employee.NewHandler(employeeService)
	rbacHandler := rbac.NewHandler(rbacService)
	reportHandler := report.NewHandler(reportService)
	storeHandler := store.NewHandler(storeService)
	timesheetHandler := timesheet.NewHandler(timesheetService)
	zoneHandler := zone.NewHandler(zoneService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		absencetype.RegisterRoutes(api, absenceTypeHandler, rbacService)
		delegation.RegisterRoutes(api, delegationHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		store.RegisterRoutes(api, storeHandler, rbacService)
		timesheet.RegisterRoutes(api, timesheetHandler, rbacService)
		zone.RegisterRoutes(api, zoneHandler, rbacService)
	}

	rbac.RegisterRoutes(router, rbacHandler)

	return nil
}

package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/JGuylherme/Service-POS/internal/audit"
	"github.com/JGuylherme/Service-POS/internal/config"
	"github.com/JGuylherme/Service-POS/internal/handlers"
	infraRepo "github.com/JGuylherme/Service-POS/internal/infra/repository"
	"github.com/JGuylherme/Service-POS/internal/middleware"
	ucVisit "github.com/JGuylherme/Service-POS/internal/usecase/visit"
	"github.com/JGuylherme/Service-POS/internal/validators"
)

// NewEngine builds a gin engine with the global middleware chain.
func NewEngine(metrics *middleware.HTTPMetrics) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())
	if metrics != nil {
		r.Use(metrics.Handler())
	}

	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, auditDispatcher *audit.Dispatcher) {
	validators.Register()

	// ======================================================
	// INFRA
	// ======================================================
	customerRepo := infraRepo.NewCustomerGormRepository(db)
	employeeRepo := infraRepo.NewEmployeeGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)
	timeTrackingRepo := infraRepo.NewTimeTrackingGormRepository(db)
	assignmentRepo := infraRepo.NewEmployeeServiceGormRepository(db)
	unitOfWork := infraRepo.NewGormUnitOfWork(db)

	// ======================================================
	// USE CASES
	// ======================================================
	recordVisitUC := ucVisit.NewRecordVisit(unitOfWork, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	legacy := handlers.WithEmptyOnMissing(cfg.LegacyEmptyLookup)

	healthHandler := handlers.NewHealthHandler(db)
	customerHandler := handlers.NewCustomerHandler(customerRepo, auditDispatcher)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, auditDispatcher, legacy)
	paymentHandler := handlers.NewPaymentHandler(paymentRepo, auditDispatcher, legacy)
	timeTrackingHandler := handlers.NewTimeTrackingHandler(timeTrackingRepo, auditDispatcher)
	employeeServicesHandler := handlers.NewEmployeeServicesHandler(
		employeeRepo,
		serviceRepo,
		assignmentRepo,
		auditDispatcher,
	)
	visitHandler := handlers.NewVisitHandler(recordVisitUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PROBES / DOCS
	// ======================================================
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		customerHandler.Register(api.Group("/customers"))

		employees := api.Group("/employees")
		employeeHandler.Register(employees)
		employees.GET("/:id/services", employeeServicesHandler.ListServices)
		employees.PUT("/:id/services/:service_id", employeeServicesHandler.Assign)
		employees.DELETE("/:id/services/:service_id", employeeServicesHandler.Unassign)

		services := api.Group("/services")
		serviceHandler.Register(services)
		services.GET("/:id/employees", employeeServicesHandler.ListEmployees)

		appointmentHandler.Register(api.Group("/appointments"))
		paymentHandler.Register(api.Group("/payments"))
		timeTrackingHandler.Register(api.Group("/time-tracking"))

		api.POST("/visits", visitHandler.Record)
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clinicware/clinic-scheduler/internal/audit"
	"github.com/clinicware/clinic-scheduler/internal/cache"
	"github.com/clinicware/clinic-scheduler/internal/config"
	"github.com/clinicware/clinic-scheduler/internal/handlers"
	infraRepo "github.com/clinicware/clinic-scheduler/internal/infra/repository"
	"github.com/clinicware/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/clinicware/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	scheduleCache := cache.New(rdb, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		scheduleCache,
		auditDispatcher,
	)

	editAppointmentUC := ucAppointment.NewEditAppointment(
		appointmentRepo,
		scheduleCache,
		auditDispatcher,
	)

	setStatusUC := ucAppointment.NewSetAppointmentStatus(
		appointmentRepo,
		scheduleCache,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		scheduleCache,
		auditDispatcher,
	)

	listDayScheduleUC := ucAppointment.NewListDaySchedule(
		appointmentRepo,
		scheduleCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, appointmentRepo)

	patientHandler := handlers.NewPatientHandler(db, appointmentRepo)
	professionalHandler := handlers.NewProfessionalHandler(db)

	scheduleHandler := handlers.NewScheduleHandler(listDayScheduleUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		editAppointmentUC,
		setStatusUC,
		deleteAppointmentUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/patients", patientHandler.List)
			secured.POST("/me/patients", patientHandler.Create)

			secured.GET("/me/professionals", professionalHandler.List)
			secured.POST("/me/professionals", professionalHandler.Create)

			// ------------------------------
			// SCHEDULE
			// ------------------------------
			secured.GET("/me/schedule", scheduleHandler.GetDay)

			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.PUT("/me/appointments/:id", appointmentHandler.Edit)
			secured.PUT("/me/appointments/:id/status", appointmentHandler.SetStatus)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}

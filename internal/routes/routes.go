package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/agendavivo/agenda-api/internal/audit"
	authpkg "github.com/agendavivo/agenda-api/internal/auth"
	"github.com/agendavivo/agenda-api/internal/config"
	"github.com/agendavivo/agenda-api/internal/handlers"
	infraRepo "github.com/agendavivo/agenda-api/internal/infra/repository"
	"github.com/agendavivo/agenda-api/internal/middleware"
	"github.com/agendavivo/agenda-api/internal/models"
	"github.com/agendavivo/agenda-api/internal/stats"
	ucAppointment "github.com/agendavivo/agenda-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *slog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	statsRepo := infraRepo.NewStatsGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	revocation := authpkg.NewRevocationList(rdb, logger)

	statsService := stats.NewService(statsRepo)

	// ======================================================
	// USE CASES: AGENDAMENTOS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, revocation, logger)
	meHandler := handlers.NewMeHandler(db)

	establishmentHandler := handlers.NewEstablishmentHandler(db, logger)
	clientHandler := handlers.NewClientHandler(db, auditDispatcher, logger)
	professionalHandler := handlers.NewProfessionalHandler(db, auditDispatcher, logger)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher, logger)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(statsService, logger)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROTAS
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg, revocation))
	{
		secured.POST("/auth/logout", authHandler.Logout)
		secured.GET("/me", meHandler.GetMe)

		// ------------------------------
		// ESTABELECIMENTOS
		// ------------------------------
		secured.GET("/estabelecimentos", establishmentHandler.List)
		secured.POST("/estabelecimentos",
			middleware.RequireRole(models.RoleAdmin),
			establishmentHandler.Create,
		)

		// ------------------------------
		// CLIENTES
		// ------------------------------
		secured.GET("/clientes", clientHandler.List)
		secured.POST("/clientes", clientHandler.Create)
		secured.PUT("/clientes/:id", clientHandler.Update)
		secured.DELETE("/clientes/:id", clientHandler.SoftDelete)

		// ------------------------------
		// PROFISSIONAIS
		// ------------------------------
		secured.GET("/profissionais", professionalHandler.List)
		secured.POST("/profissionais",
			middleware.RequireRole(models.RoleAdmin, models.RoleGerente),
			professionalHandler.Create,
		)
		secured.PUT("/profissionais/:id",
			middleware.RequireRole(models.RoleAdmin, models.RoleGerente),
			professionalHandler.Update,
		)
		secured.DELETE("/profissionais/:id",
			middleware.RequireRole(models.RoleAdmin, models.RoleGerente),
			professionalHandler.SoftDelete,
		)

		// ------------------------------
		// SERVICOS
		// ------------------------------
		secured.GET("/servicos", serviceHandler.List)
		secured.POST("/servicos",
			middleware.RequireRole(models.RoleAdmin, models.RoleGerente),
			serviceHandler.Create,
		)
		secured.PUT("/servicos/:id",
			middleware.RequireRole(models.RoleAdmin, models.RoleGerente),
			serviceHandler.Update,
		)
		secured.DELETE("/servicos/:id",
			middleware.RequireRole(models.RoleAdmin, models.RoleGerente),
			serviceHandler.SoftDelete,
		)

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		secured.GET("/agendamentos", appointmentHandler.List)
		secured.POST("/agendamentos", appointmentHandler.Create)
		secured.PUT("/agendamentos/:id", appointmentHandler.Update)
		secured.DELETE("/agendamentos/:id",
			middleware.RequireRole(models.RoleAdmin, models.RoleGerente),
			appointmentHandler.Cancel,
		)

		// ------------------------------
		// DASHBOARD / AUDITORIA
		// ------------------------------
		secured.GET("/dashboard/stats", dashboardHandler.GetStats)
		secured.GET("/audit-logs",
			middleware.RequireRole(models.RoleAdmin),
			auditLogsHandler.List,
		)
	}
}

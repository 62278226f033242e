package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/u-santos1/barbearia-backend-sub000/internal/audit"
	"github.com/u-santos1/barbearia-backend-sub000/internal/cache"
	"github.com/u-santos1/barbearia-backend-sub000/internal/config"
	"github.com/u-santos1/barbearia-backend-sub000/internal/handlers"
	infraRepo "github.com/u-santos1/barbearia-backend-sub000/internal/infra/repository"
	"github.com/u-santos1/barbearia-backend-sub000/internal/media"
	"github.com/u-santos1/barbearia-backend-sub000/internal/middleware"
	"github.com/u-santos1/barbearia-backend-sub000/internal/notify"
	"github.com/u-santos1/barbearia-backend-sub000/internal/payment"
	ucBlock "github.com/u-santos1/barbearia-backend-sub000/internal/usecase/block"
	ucPlan "github.com/u-santos1/barbearia-backend-sub000/internal/usecase/plan"
	ucScheduling "github.com/u-santos1/barbearia-backend-sub000/internal/usecase/scheduling"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	store := infraRepo.NewScheduleGormStore(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var sender notify.Sender
	if cfg.SMTPHost != "" {
		sender = notify.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	} else {
		sender = notify.LogSender{Log: log}
	}
	notifier := notify.NewDispatcher(sender, log)

	var availabilityCache ucScheduling.AvailabilityCache
	if rdb != nil {
		availabilityCache = cache.NewAvailability(rdb)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucScheduling.NewBookAppointment(store, notifier, auditDispatcher, availabilityCache)
	confirmUC := ucScheduling.NewConfirmAppointment(store, auditDispatcher)
	completeUC := ucScheduling.NewCompleteAppointment(store, auditDispatcher)
	cancelByProUC := ucScheduling.NewCancelByProfessional(store, auditDispatcher, availabilityCache)
	cancelByClientUC := ucScheduling.NewCancelByClient(store, auditDispatcher, availabilityCache)
	listUC := ucScheduling.NewListAppointments(store)
	availabilityUC := ucScheduling.NewGetAvailability(store, availabilityCache)

	createBlockUC := ucBlock.NewCreateBlock(store, auditDispatcher, availabilityCache)
	removeBlockUC := ucBlock.NewRemoveBlock(store, auditDispatcher, availabilityCache)

	upgradePlanUC := ucPlan.NewUpgradePlan(store, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler()
	teamHandler := handlers.NewTeamHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		store,
		bookUC,
		confirmUC,
		completeUC,
		cancelByProUC,
		listUC,
		availabilityUC,
	)

	blockHandler := handlers.NewBlockHandler(db, createBlockUC, removeBlockUC)

	publicHandler := handlers.NewPublicHandler(
		db,
		store,
		bookUC,
		availabilityUC,
		cancelByClientUC,
	)

	avatarStorage := media.NewAvatarStorage(
		cfg.S3Region,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3BaseURL,
	)
	avatarHandler := handlers.NewAvatarHandler(db, avatarStorage)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/professionals/:id/services", publicHandler.ListServices)
			publicAPI.GET("/professionals/:id/availability", publicHandler.Availability)
			publicAPI.POST("/professionals/:id/appointments", publicHandler.CreateAppointment)
			publicAPI.POST("/appointments/:id/cancel", publicHandler.CancelAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// WEBHOOKS
		// ------------------------------
		if cfg.MercadoPagoToken != "" {
			payments, err := payment.NewClient(cfg.MercadoPagoToken)
			if err != nil {
				log.Fatal().Err(err).Msg("mercado pago client")
			}
			webhookHandler := handlers.NewWebhookHandler(payments, upgradePlanUC, log)
			api.POST("/webhooks/mercadopago", webhookHandler.MercadoPago)
		}

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, db))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/avatar", avatarHandler.Upload)

			secured.GET("/me/team", teamHandler.List)
			secured.POST("/me/team", teamHandler.Create)
			secured.PATCH("/me/team/:id", teamHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// BLOCKS
			// ------------------------------
			secured.GET("/me/blocks", blockHandler.List)
			secured.POST("/me/blocks", blockHandler.Create)
			secured.DELETE("/me/blocks/:id", blockHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}

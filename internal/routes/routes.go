package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartbistro/restaurant-api/internal/audit"
	"github.com/smartbistro/restaurant-api/internal/cache"
	"github.com/smartbistro/restaurant-api/internal/config"
	"github.com/smartbistro/restaurant-api/internal/handlers"
	infraRepo "github.com/smartbistro/restaurant-api/internal/infra/repository"
	"github.com/smartbistro/restaurant-api/internal/middleware"
	"github.com/smartbistro/restaurant-api/internal/storage"
	ucReservation "github.com/smartbistro/restaurant-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	menuCache := cache.NewMenuCache(cfg.RedisAddr)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	availabilityUC := ucReservation.NewGetAvailability(
		reservationRepo,
		cfg.Timezone,
	)

	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	updateReservationStatusUC := ucReservation.NewUpdateStatus(
		reservationRepo,
		auditDispatcher,
	)

	listUpcomingUC := ucReservation.NewListUpcoming(
		reservationRepo,
		cfg.Timezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	menuHandler := handlers.NewMenuHandler(db, menuCache)
	menuImageHandler := handlers.NewMenuImageHandler(db, uploader, menuCache)
	orderHandler := handlers.NewOrderHandler(db, auditDispatcher)
	analyticsHandler := handlers.NewAnalyticsHandler(db, cfg.Timezone)

	reservationHandler := handlers.NewReservationHandler(
		availabilityUC,
		createReservationUC,
		updateReservationStatusUC,
		listUpcomingUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/menu", menuHandler.ListPublic)
		api.GET("/categories", menuHandler.ListCategories)

		api.GET("/reservations/available-slots", reservationHandler.AvailableSlots)
		api.POST("/reservations", reservationHandler.Create)

		api.POST("/orders", orderHandler.Create)
		api.GET("/orders/:id/details", orderHandler.Details)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
		{
			admin.GET("/menu/admin", menuHandler.ListAdmin)
			admin.POST("/menu", menuHandler.Create)
			admin.PUT("/menu/:id", menuHandler.Update)
			admin.DELETE("/menu/:id", menuHandler.Delete)
			admin.POST("/menu/:id/image", menuImageHandler.Upload)

			admin.GET("/orders", orderHandler.List)
			admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)

			admin.GET("/reservations", reservationHandler.List)
			admin.PUT("/reservations/:id/status", reservationHandler.UpdateStatus)

			admin.GET("/analytics", analyticsHandler.Get)
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/audit"
	"github.com/boxfit/gym-scheduler/internal/config"
	"github.com/boxfit/gym-scheduler/internal/handlers"
	infraRepo "github.com/boxfit/gym-scheduler/internal/infra/repository"
	"github.com/boxfit/gym-scheduler/internal/middleware"
	ucBooking "github.com/boxfit/gym-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		auditDispatcher,
	)

	createAttendeeUC := ucBooking.NewCreateAttendee(
		bookingRepo,
		auditDispatcher,
	)

	removeBookingUC := ucBooking.NewRemoveBooking(
		bookingRepo,
		auditDispatcher,
	)

	listUserBookingsUC := ucBooking.NewListUserBookings(
		bookingRepo,
	)

	listSlotBookingsUC := ucBooking.NewListSlotBookings(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	slotHandler := handlers.NewSlotHandler(db, auditDispatcher)
	memberHandler := handlers.NewMemberHandler(db, auditDispatcher)
	workoutHandler := handlers.NewWorkoutHandler(db, auditDispatcher)
	recordHandler := handlers.NewRecordHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listUserBookingsUC,
		removeBookingUC,
	)

	attendeeHandler := handlers.NewAttendeeHandler(
		createAttendeeUC,
		listSlotBookingsUC,
		removeBookingUC,
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
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// SIGNED-IN MEMBERS
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/bookings", reservationHandler.ListMine)
			secured.GET("/me/records", recordHandler.ListMine)
			secured.POST("/me/records", recordHandler.Create)
			secured.DELETE("/me/records/:id", recordHandler.Delete)

			secured.GET("/slots", slotHandler.List)
			secured.GET("/wod", workoutHandler.Get)

			secured.POST("/reservations", reservationHandler.Create)
			secured.DELETE("/reservations/:id", reservationHandler.Delete)
		}

		// ------------------------------
		// MANAGERS
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireManager())
		{
			admin.GET("/members", memberHandler.List)
			admin.GET("/members/:id", memberHandler.Get)
			admin.PATCH("/members/:id/approve", memberHandler.Approve)
			admin.PATCH("/members/:id/subscription", memberHandler.UpdateSubscription)
			admin.DELETE("/members/:id", memberHandler.Delete)

			admin.POST("/slots", slotHandler.Create)
			admin.PATCH("/slots/:id", slotHandler.Update)
			admin.DELETE("/slots/:id", slotHandler.Delete)

			admin.GET("/bookings", attendeeHandler.ListSlot)
			admin.POST("/attendees", attendeeHandler.Create)
			admin.DELETE("/attendees/:id", attendeeHandler.Delete)
			admin.DELETE("/reservations/:id", reservationHandler.Delete)

			admin.POST("/workouts", workoutHandler.Create)
			admin.PATCH("/workouts/:id", workoutHandler.Update)
			admin.DELETE("/workouts/:id", workoutHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

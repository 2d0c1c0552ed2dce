package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"roomly/config"
	"roomly/cron"
	"roomly/database"
	"roomly/database/repository"
	"roomly/database/seed"
	"roomly/handlers"
	"roomly/middleware"
	"roomly/models"
	"roomly/routes"
	appointmentSvc "roomly/services/appointment"
	bookingSvc "roomly/services/booking"
	"roomly/services/notification"
	"roomly/services/tasks"
	"roomly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	roomRepo := repository.NewMongoRoomRepo()
	bookingRepo := repository.NewMongoBookingRepo()
	appointmentRepo := repository.NewMongoAppointmentRepo()

	// Seed the room catalog (no-op if already populated).
	if seeded, err := seed.Rooms(roomRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to seed room catalog: %v", err)
	} else if seeded > 0 {
		logger.Sugar().Infof("main: seeded %d rooms", seeded)
	}
	if config.AppConfig.SeedSampleBookings {
		if err := seed.SampleBookings(bookingRepo); err != nil {
			logger.Sugar().Warnf("main: failed to seed sample bookings: %v", err)
		}
	}

	// services.
	availabilityEngine := &bookingSvc.DefaultAvailabilityEngine{
		RoomRepo:    roomRepo,
		BookingRepo: bookingRepo,
	}

	bookingManager := &bookingSvc.DefaultManager{
		RoomRepo:     roomRepo,
		BookingRepo:  bookingRepo,
		Availability: availabilityEngine,
	}

	dayStart, err := models.ParseClock(config.AppConfig.BusinessDayStart)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BUSINESS_DAY_START: %v", err)
	}
	dayEnd, err := models.ParseClock(config.AppConfig.BusinessDayEnd)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BUSINESS_DAY_END: %v", err)
	}
	suggestionEngine := &bookingSvc.DefaultSuggestionEngine{
		Availability: availabilityEngine,
		RoomRepo:     roomRepo,
		DayStart:     dayStart,
		DayEnd:       dayEnd,
		Limit:        config.AppConfig.SuggestionLimit,
	}

	reminderScheduler := tasks.NewAsynqReminderScheduler()

	defaultSite, ok := models.NormalizeSite(config.AppConfig.DefaultSite)
	if !ok {
		logger.Sugar().Fatalf("main: unknown DEFAULT_SITE: %q", config.AppConfig.DefaultSite)
	}
	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Repo:           appointmentRepo,
		RoomRepo:       roomRepo,
		BookingRepo:    bookingRepo,
		Bookings:       bookingManager,
		Suggestions:    suggestionEngine,
		Reminders:      reminderScheduler,
		DefaultSite:    defaultSite,
		MeetingMinutes: config.AppConfig.DefaultMeetingMinutes,
		ReminderLead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	notificationService := &notification.DefaultNotificationService{}
	cron.InitReminderWorker(notificationService)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	roomHandler := handlers.NewRoomHandler(roomRepo, availabilityEngine)
	bookingHandler := handlers.NewBookingHandler(bookingManager, suggestionEngine, bookingRepo, roomRepo)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RoomRepo:    roomRepo,
		BookingRepo: bookingRepo,

		// Room catalog endpoints.
		ListRoomsHandler:     roomHandler.ListRoomsHandler,
		FindAvailableHandler: roomHandler.FindAvailableHandler,

		// Booking ledger endpoints.
		BookRoomHandler:            bookingHandler.BookRoomHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,
		ListBookingsForRoomHandler: bookingHandler.ListBookingsForRoomHandler,
		SuggestAlternativesHandler: bookingHandler.SuggestAlternativesHandler,

		// Appointment endpoints.
		CreateAppointmentHandler: appointmentHandler.CreateAppointmentHandler,
		ListAppointmentsHandler:  appointmentHandler.ListAppointmentsHandler,
		UpdateAppointmentHandler: appointmentHandler.UpdateAppointmentHandler,
		CancelAppointmentHandler: appointmentHandler.CancelAppointmentHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

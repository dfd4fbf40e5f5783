package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beautybook/config"
	"beautybook/cron"
	"beautybook/database"
	appointmentRepoPkg "beautybook/database/repository/appointment"
	professionalRepoPkg "beautybook/database/repository/professional"
	serviceRepoPkg "beautybook/database/repository/service"
	"beautybook/handlers"
	"beautybook/middleware"
	"beautybook/routes"
	"beautybook/services/booking"
	"beautybook/services/notification"
	"beautybook/services/professional"
	"beautybook/services/schedule"
	"beautybook/services/tasks"
	"beautybook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profRepo := professionalRepoPkg.NewMongoProfessionalRepo()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	if err := profRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create professional indexes: %v", err)
	}
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create appointment indexes: %v", err)
	}

	// services.
	professionalService := professional.NewDefaultProfessionalService(
		profRepo, svcRepo, apptRepo, cloudinaryStorageService,
	)

	notificationService := notification.NewDefaultNotificationService()
	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	engine := schedule.NewEngine(config.AppConfig.DefaultSlotIntervalMin)
	bookingService := booking.NewDefaultBookingService(
		apptRepo, profRepo, svcRepo, engine,
		notificationService, reminderScheduler,
		config.AppConfig.CountryPhonePrefix,
	)

	// handlers.
	professionalHandler := handlers.NewProfessionalHandler(professionalService)
	serviceHandler := handlers.NewServiceHandler(professionalService)
	availabilityHandler := handlers.NewAvailabilityHandler(professionalService)
	bookingHandler := handlers.NewBookingHandler(bookingService, utils.GetCacheClient(), logger)
	dashboardHandler := handlers.NewDashboardHandler(professionalService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfessionalRepo: profRepo,

		RegisterHandler:          professionalHandler.RegisterHandler,
		AuthenticateHandler:      professionalHandler.AuthenticateHandler,
		GetProfessionalHandler:   professionalHandler.GetProfessionalHandler,
		ListProfessionalsHandler: professionalHandler.ListProfessionalsHandler,
		UpdateProfileHandler:     professionalHandler.UpdateProfileHandler,
		UploadPhotoHandler:       professionalHandler.UploadPhotoHandler,

		ListServicesHandler:  serviceHandler.ListServicesHandler,
		CreateServiceHandler: serviceHandler.CreateServiceHandler,
		UpdateServiceHandler: serviceHandler.UpdateServiceHandler,
		DeleteServiceHandler: serviceHandler.DeleteServiceHandler,

		GetAvailabilityHandler: availabilityHandler.GetAvailabilityHandler,
		SetAvailabilityHandler: availabilityHandler.SetAvailabilityHandler,
		EnableDayHandler:       availabilityHandler.EnableDayHandler,
		DisableDayHandler:      availabilityHandler.DisableDayHandler,
		AddRangeHandler:        availabilityHandler.AddRangeHandler,
		RemoveRangeHandler:     availabilityHandler.RemoveRangeHandler,
		UpdateRangeHandler:     availabilityHandler.UpdateRangeHandler,

		DaySlotsHandler:          bookingHandler.DaySlotsHandler,
		MonthAvailabilityHandler: bookingHandler.MonthAvailabilityHandler,
		SubmitBookingHandler:     bookingHandler.SubmitBookingHandler,

		AppointmentsHandler: dashboardHandler.AppointmentsHandler,
		ClientsHandler:      dashboardHandler.ClientsHandler,
		StatisticsHandler:   dashboardHandler.StatisticsHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker.
	cron.InitReminderWorker(notificationService, apptRepo, profRepo)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("main: server exited")
}

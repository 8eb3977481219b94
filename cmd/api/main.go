package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mobileexperts/internal/config"
	"mobileexperts/internal/database"
	"mobileexperts/internal/middleware"
	"mobileexperts/internal/modules/admin"
	"mobileexperts/internal/modules/catalog"
	"mobileexperts/internal/modules/chat"
	"mobileexperts/internal/modules/notification"
	"mobileexperts/internal/modules/schedule"
	jwtsvc "mobileexperts/internal/pkg/jwt"
	"mobileexperts/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db, &notification.Notification{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	notificationRepo := notification.NewRepository(db)

	// The calendar is loaded once; edits to hours or blackouts apply on
	// the next restart.
	ctx := context.Background()
	week, err := calendarRepo.LoadWeek(ctx)
	if err != nil {
		log.Fatal("loading weekday hours:", err)
	}
	blackouts, err := calendarRepo.LoadBlackouts(ctx)
	if err != nil {
		log.Fatal("loading blackout dates:", err)
	}
	calendar, err := schedule.NewCalendar(week, blackouts)
	if err != nil {
		log.Fatal("building calendar:", err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	notificationService := notification.NewService(
		notificationRepo,
		notification.LogSMSSender{},
		notification.LogEmailSender{},
		notification.DefaultBusinessInfo(),
	)
	notificationHandler := notification.NewHandler(notificationService)

	scheduleService := schedule.NewService(
		calendar,
		bookingRepo,
		serviceRepo,
		notificationService,
		cfg.CapacityPerSlot,
		cfg.SlotGranularity,
	)
	scheduleHandler := schedule.NewHandler(scheduleService)

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	chatService := chat.NewService(calendar)
	chatHandler := chat.NewHandler(chatService)

	adminService := admin.NewService(userRepo, calendarRepo, j)
	adminHandler := admin.NewHandler(adminService, scheduleService)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		scheduleHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		chatHandler.RegisterRoutes(v1)
		adminHandler.RegisterPublicRoutes(v1)

		// protected (staff dashboard)
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}

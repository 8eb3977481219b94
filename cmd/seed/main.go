package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"mobileexperts/internal/config"
	"mobileexperts/internal/database"
	"mobileexperts/internal/domain"
	"mobileexperts/internal/modules/notification"
	"mobileexperts/internal/pkg/validator"
	"mobileexperts/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db, &notification.Notification{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (bookings first to keep references consistent)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM blackout_dates")
	db.Exec("DELETE FROM weekday_hours")
	db.Exec("DELETE FROM repair_services")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@mobileexperts.com",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin User",
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal("creating admin:", err)
	}
	log.Println("Admin created: admin@mobileexperts.com / admin123")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := domain.User{
		Email:        "frontdesk@mobileexperts.com",
		PasswordHash: string(staffHash),
		Role:         domain.RoleStaff,
		Name:         "Front Desk",
	}
	if err := userRepo.Create(ctx, &staff); err != nil {
		log.Fatal("creating staff user:", err)
	}

	// ================== WORKING HOURS ==================
	log.Println("Creating weekday hours...")
	if err := calendarRepo.SaveWeek(ctx, domain.DefaultWeekHours()); err != nil {
		log.Fatal("saving week hours:", err)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	services := []domain.RepairService{
		{
			Name:            "Screen Replacement",
			Slug:            "screen-replacement",
			Description:     "Replace cracked or broken screens with OEM-quality parts.",
			PriceMin:        89.99,
			PriceMax:        149.99,
			DurationMinutes: 30,
			DeviceType:      domain.DevicePhone,
			IssueType:       domain.IssueScreen,
			Features:        []string{"Gorilla Glass", "True Tone Restoration", "Lifetime Warranty"},
			IsActive:        true,
		},
		{
			Name:            "Battery Replacement",
			Slug:            "battery-replacement",
			Description:     "Restore your device's battery life to 100%.",
			PriceMin:        49.99,
			PriceMax:        89.99,
			DurationMinutes: 20,
			DeviceType:      domain.DevicePhone,
			IssueType:       domain.IssueBattery,
			Features:        []string{"High Capacity Cells", "Zero Cycle Count", "1 Year Warranty"},
			IsActive:        true,
		},
		{
			Name:            "Water Damage Repair",
			Slug:            "water-damage",
			Description:     "Professional ultrasonic cleaning and diagnostic.",
			PriceMin:        59.99,
			PriceMax:        199.99,
			DurationMinutes: 120,
			DeviceType:      domain.DevicePhone,
			IssueType:       domain.IssueWaterDamage,
			Features:        []string{"Ultrasonic Cleaning", "Board Level Repair", "No Fix No Fee"},
			IsActive:        true,
		},
		{
			Name:            "Charging Port Repair",
			Slug:            "charging-port",
			Description:     "Fix loose or broken charging ports.",
			PriceMin:        39.99,
			PriceMax:        79.99,
			DurationMinutes: 30,
			DeviceType:      domain.DevicePhone,
			IssueType:       domain.IssueCharging,
			Features:        []string{"Premium Parts", "Fast Charging Support"},
			IsActive:        true,
		},
		{
			Name:            "Tablet Screen Replacement",
			Slug:            "tablet-screen-replacement",
			Description:     "Glass and digitizer replacement for iPads and Android tablets.",
			PriceMin:        99.99,
			PriceMax:        249.99,
			DurationMinutes: 60,
			DeviceType:      domain.DeviceTablet,
			IssueType:       domain.IssueScreen,
			Features:        []string{"OEM-Quality Glass", "90 Day Warranty"},
			IsActive:        true,
		},
	}
	for i := range services {
		if fields := validator.Validate(&services[i]); fields != nil {
			log.Fatal("invalid service definition: ", validator.Error(fields))
		}
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			log.Fatal("creating service:", err)
		}
	}

	log.Println("Seed completed")
}

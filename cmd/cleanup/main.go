package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"mobileexperts/internal/config"
	"mobileexperts/internal/database"
)

// Retention job, run from cron. Bookings stay for a year after they reach
// a terminal state; notification records stay for 90 days.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	now := time.Now()

	res1 := db.Exec(
		`DELETE FROM bookings WHERE status IN ('completed', 'cancelled') AND last_transition_at < ?`,
		now.AddDate(-1, 0, 0),
	)
	if res1.Error != nil {
		log.Fatalf("cleanup bookings failed: %v", res1.Error)
	}

	res2 := db.Exec(`DELETE FROM notifications WHERE created_at < ?`, now.AddDate(0, 0, -90))
	if res2.Error != nil {
		log.Fatalf("cleanup notifications failed: %v", res2.Error)
	}

	res3 := db.Exec(`DELETE FROM blackout_dates WHERE date < ?`, now.Format("2006-01-02"))
	if res3.Error != nil {
		log.Fatalf("cleanup blackout_dates failed: %v", res3.Error)
	}

	log.Printf("cleanup completed: bookings=%d notifications=%d blackout_dates=%d",
		res1.RowsAffected, res2.RowsAffected, res3.RowsAffected)
}

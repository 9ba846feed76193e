package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"booking_backend/internal/config"
	"booking_backend/internal/database"
	"booking_backend/internal/models"
	"booking_backend/internal/repositories"
	"booking_backend/pkg/utils"

	"github.com/brianvoe/gofakeit/v7"
)

var categories = []string{
	"Dental",
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Ophthalmology",
	"Pediatrics",
}

var slots = []string{"09:00", "09:30", "10:00", "11:15", "13:00", "14:30", "16:00", "17:45"}

func main() {
	count := flag.Int("n", 50, "number of appointments to insert")
	flag.Parse()

	utils.InitLogger("console", "info")

	cfg, err := config.Load()
	if err != nil {
		utils.LogError(err, "Failed to load configuration")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.Open(ctx, cfg.DSN())
	if err != nil {
		utils.LogError(err, "Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := database.ApplySchema(ctx, db); err != nil {
		utils.LogError(err, "Failed to apply database schema")
		os.Exit(1)
	}

	if err := seedAppointments(ctx, db, *count); err != nil {
		utils.LogError(err, "Seeding failed")
		os.Exit(1)
	}
}

// seedAppointments inserts count fake appointments in one transaction.
func seedAppointments(ctx context.Context, db *sql.DB, count int) error {
	utils.LogInfo("Seeding appointments", map[string]interface{}{"count": count})

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repo := repositories.NewAppointmentRepository(tx)
	year := time.Now().Year()
	for i := 0; i < count; i++ {
		day := gofakeit.DateRange(
			time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		)
		appointment := &models.Appointment{
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			Phone:    gofakeit.Phone(),
			Category: gofakeit.RandomString(categories),
			Date:     time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Time:     gofakeit.RandomString(slots),
		}
		if _, err := repo.CreateAppointment(ctx, appointment); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	utils.LogInfo("Seed complete", map[string]interface{}{"count": count})
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"booking_backend/internal/database"
	"booking_backend/internal/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// setupTx opens the database named by DATABASE_URL and returns a transaction that is
// rolled back when the test ends.
func setupTx(t *testing.T) *sql.Tx {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.Open(ctx, dsn)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.ApplySchema(ctx, db); err != nil {
		t.Fatalf("schema: %v", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback() })
	return tx
}

func findAppointment(t *testing.T, repo AppointmentRepository, id int64) (models.Appointment, bool) {
	t.Helper()
	list, err := repo.ListAppointments(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

func TestAppointmentRepositoryLifecycle(t *testing.T) {
	tx := setupTx(t)
	ctx := context.Background()
	repo := NewAppointmentRepository(tx)

	existing, err := repo.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	before := len(existing)

	first, err := repo.CreateAppointment(ctx, &models.Appointment{
		Name: "Alice", Email: "a@x.com", Phone: "555", Category: "Dental",
		Date: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), Time: "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.CreateAppointment(ctx, &models.Appointment{
		Name: "Bob", Category: "Eye", Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}

	got, ok := findAppointment(t, repo, first.ID)
	if !ok {
		t.Fatalf("appointment %d not listed", first.ID)
	}
	if got.Name != "Alice" || got.DateString() != "2024-03-15" || got.Time != "10:00" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	list, err := repo.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != before+2 || list[len(list)-1].ID != second.ID {
		t.Errorf("expected list ordered by id ending in %d, got %d rows", second.ID, len(list))
	}

	if err := repo.DeleteAppointment(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteAppointment(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
	if _, ok := findAppointment(t, repo, first.ID); ok {
		t.Errorf("deleted appointment %d still listed", first.ID)
	}
	if _, ok := findAppointment(t, repo, second.ID); !ok {
		t.Errorf("delete removed the wrong record")
	}
}

func TestAppointmentRepositoryStoresLongFreeText(t *testing.T) {
	tx := setupTx(t)
	repo := NewAppointmentRepository(tx)

	long := strings.Repeat("x", 300)
	created, err := repo.CreateAppointment(context.Background(), &models.Appointment{
		Name:     long,
		Email:    long + "@example.com",
		Phone:    "+1 (555) 010-0000 ext. 12345",
		Category: long,
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Time:     "sometime in the late afternoon, ideally after the school run " + long,
	})
	if err != nil {
		t.Fatalf("long free-text values must be accepted: %v", err)
	}
	got, ok := findAppointment(t, repo, created.ID)
	if !ok || got.Name != long || got.Phone != "+1 (555) 010-0000 ext. 12345" {
		t.Errorf("long values not stored intact: %+v", got)
	}
}

func TestAuthRepository(t *testing.T) {
	tx := setupTx(t)
	ctx := context.Background()
	repo := NewAuthRepository(tx)
	username := "admin-" + uuid.New().String()[:8]

	if _, err := repo.FindAdminByUsername(ctx, username); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	id, err := repo.CreateAdminUser(ctx, username, "hash-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	user, err := repo.FindAdminByUsername(ctx, username)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if user.ID != id || user.PasswordHash != "hash-1" {
		t.Errorf("unexpected admin: %+v", user)
	}
}

// Own transaction: the unique violation aborts it.
func TestAuthRepositoryDuplicateUsername(t *testing.T) {
	tx := setupTx(t)
	ctx := context.Background()
	repo := NewAuthRepository(tx)
	username := "admin-" + uuid.New().String()[:8]

	if _, err := repo.CreateAdminUser(ctx, username, "hash"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.CreateAdminUser(ctx, username, "hash"); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

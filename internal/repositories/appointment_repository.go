package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"booking_backend/internal/models"
)

// AppointmentRepository defines the interface for appointment persistence.
type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error) // insertion (id) order
	DeleteAppointment(ctx context.Context, id int64) error
}

type appointmentRepository struct {
	db SQLExecutor
}

// NewAppointmentRepository creates a new instance of AppointmentRepository.
func NewAppointmentRepository(db SQLExecutor) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const selectAppointmentFields = `id, name, email, phone, category, date, time`

func scanAppointment(row scanner) (*models.Appointment, error) {
	var a models.Appointment
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Category, &a.Date, &a.Time)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning appointment: %v", ErrDatabaseError, err)
	}
	return &a, nil
}

func (r *appointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	query := `INSERT INTO appointments (name, email, phone, category, date, time)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		appointment.Name, appointment.Email, appointment.Phone,
		appointment.Category, appointment.Date, appointment.Time,
	).Scan(&appointment.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: creating appointment: %v", ErrDatabaseError, err)
	}
	return appointment, nil
}

func (r *appointmentRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	query := "SELECT " + selectAppointmentFields + " FROM appointments ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying appointments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		a, scanErr := scanAppointment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		appointments = append(appointments, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating appointment rows: %v", ErrDatabaseError, err)
	}
	return appointments, nil
}

func (r *appointmentRepository) DeleteAppointment(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting appointment ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

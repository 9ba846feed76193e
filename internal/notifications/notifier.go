package notifications

import (
	"context"

	"booking_backend/internal/models"
)

// BookingNotifier is told about every appointment that was stored successfully.
type BookingNotifier interface {
	AppointmentBooked(ctx context.Context, appointment models.Appointment) error
}

// Noop drops every notification.
type Noop struct{}

func (Noop) AppointmentBooked(ctx context.Context, appointment models.Appointment) error {
	return nil
}

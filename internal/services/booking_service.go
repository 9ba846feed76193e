package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking_backend/internal/cache"
	"booking_backend/internal/models"
	"booking_backend/internal/notifications"
	"booking_backend/internal/repositories"
	"booking_backend/pkg/utils"
)

// --- Custom Service Errors for Booking ---
var (
	ErrMissingField = errors.New("missing required form field")
	ErrInvalidDate  = errors.New("invalid appointment date, expected YYYY-MM-DD")
)

// CreateAppointmentRequest carries the raw booking form values.
// Presence of each field is checked by the caller; empty strings are accepted here.
type CreateAppointmentRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Category string `form:"category"`
	Date     string `form:"date"`
	Time     string `form:"time"`
}

// --- BookingService Interface ---
type BookingService interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error)
}

type bookingService struct {
	appointmentRepo repositories.AppointmentRepository
	cache           cache.Cache
	notifier        notifications.BookingNotifier
}

// NewBookingService creates a new instance of BookingService.
// A nil notifier or cache falls back to the no-op implementation.
func NewBookingService(
	ar repositories.AppointmentRepository,
	c cache.Cache,
	n notifications.BookingNotifier,
) BookingService {
	if c == nil {
		c = cache.NewNoop()
	}
	if n == nil {
		n = notifications.Noop{}
	}
	return &bookingService{appointmentRepo: ar, cache: c, notifier: n}
}

// ParseAppointmentDate parses the form's date field into midnight UTC of that day.
func ParseAppointmentDate(value string) (time.Time, error) {
	d, err := time.Parse(models.AppointmentDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return d, nil
}

func (s *bookingService) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error) {
	date, err := ParseAppointmentDate(req.Date)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Category: req.Category,
		Date:     date,
		Time:     req.Time,
	}

	created, err := s.appointmentRepo.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	invalidateDashboard(ctx, s.cache)

	if notifyErr := s.notifier.AppointmentBooked(ctx, *created); notifyErr != nil {
		utils.LogWarn("BookingService: notification failed", map[string]interface{}{
			"appointment_id": created.ID,
			"error":          notifyErr.Error(),
		})
	}

	return created, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"booking_backend/internal/cache"
	"booking_backend/internal/repositories"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentService covers admin-side management of existing appointments.
type AppointmentService interface {
	DeleteAppointment(ctx context.Context, id int64) error
}

type appointmentService struct {
	appointmentRepo repositories.AppointmentRepository
	cache           cache.Cache
}

// NewAppointmentService creates a new instance of AppointmentService.
func NewAppointmentService(ar repositories.AppointmentRepository, c cache.Cache) AppointmentService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &appointmentService{appointmentRepo: ar, cache: c}
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, id int64) error {
	if err := s.appointmentRepo.DeleteAppointment(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: ID %d", ErrAppointmentNotFound, id)
		}
		return fmt.Errorf("failed to delete appointment %d: %w", id, err)
	}
	invalidateDashboard(ctx, s.cache)
	return nil
}

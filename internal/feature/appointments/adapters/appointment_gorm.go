// Package adapters provides the repository implementations for the
// appointments feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"nexuscare_backend/internal/feature/appointments/domain/entity"
	"nexuscare_backend/internal/feature/appointments/usecase"
)

// appointmentGorm is the relational implementation of
// usecase.AppointmentRepository.
type appointmentGorm struct {
	db *gorm.DB
}

var _ usecase.AppointmentRepository = (*appointmentGorm)(nil)

// NewAppointmentGorm creates an appointmentGorm backed by the given
// connection.
func NewAppointmentGorm(db *gorm.DB) *appointmentGorm {
	return &appointmentGorm{db: db}
}

// Create inserts the appointment record.
func (r *appointmentGorm) Create(ctx context.Context, a *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// ListAll returns every appointment. No ordering is guaranteed here; clients
// that need recency ordering get it from the key-value backend.
func (r *appointmentGorm) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.db.WithContext(ctx).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

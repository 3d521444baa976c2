// Package adapters provides the repository implementations for the doctors
// feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"nexuscare_backend/internal/feature/doctors/domain/entity"
	"nexuscare_backend/internal/feature/doctors/usecase"
)

// doctorGorm is the relational implementation of usecase.DoctorRepository.
// The availability list is serialized into a JSON string column by GORM's
// json serializer (see the entity tag).
type doctorGorm struct {
	db *gorm.DB
}

var _ usecase.DoctorRepository = (*doctorGorm)(nil)

// NewDoctorGorm creates a doctorGorm backed by the given connection.
func NewDoctorGorm(db *gorm.DB) *doctorGorm {
	return &doctorGorm{db: db}
}

// Create inserts the doctor record.
func (r *doctorGorm) Create(ctx context.Context, d *entity.Doctor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// ListAll returns every doctor record without ordering guarantees.
func (r *doctorGorm) ListAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := r.db.WithContext(ctx).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

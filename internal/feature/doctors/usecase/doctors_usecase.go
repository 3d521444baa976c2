// Package usecase implements the business logic for the doctors feature.
package usecase

import (
	"context"

	"nexuscare_backend/internal/feature/doctors/domain/entity"
	"nexuscare_backend/internal/platform/ident"
)

// DoctorRepository abstracts the persistence layer for doctor entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type DoctorRepository interface {
	// Create persists a new doctor. There is no uniqueness constraint on the
	// directory; Create always succeeds unless storage fails.
	Create(ctx context.Context, doctor *entity.Doctor) error

	// ListAll returns every doctor record. No ordering is guaranteed.
	ListAll(ctx context.Context) ([]entity.Doctor, error)
}

// RegisterInput carries the fields accepted by the doctor-registration
// endpoint.
type RegisterInput struct {
	Name         string
	Specialty    string
	Experience   string
	Bio          string
	ImageURL     string
	Availability []string
}

// DoctorsUsecase provides the directory operations.
type DoctorsUsecase struct {
	doctors DoctorRepository
}

// NewDoctorsUsecase creates a new DoctorsUsecase.
func NewDoctorsUsecase(doctors DoctorRepository) *DoctorsUsecase {
	return &DoctorsUsecase{doctors: doctors}
}

// Register persists a new directory entry with a generated ID.
// An absent availability list defaults to an empty one.
func (u *DoctorsUsecase) Register(ctx context.Context, in RegisterInput) (*entity.Doctor, error) {
	availability := in.Availability
	if availability == nil {
		availability = []string{}
	}

	doctor := &entity.Doctor{
		ID:           ident.New(ident.PrefixDoctor),
		Name:         in.Name,
		Specialty:    in.Specialty,
		Experience:   in.Experience,
		Bio:          in.Bio,
		ImageURL:     in.ImageURL,
		Availability: availability,
	}

	if err := u.doctors.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// List returns the full directory. Availability is normalized to an empty
// slice so the JSON response always carries an array, never null.
func (u *DoctorsUsecase) List(ctx context.Context) ([]entity.Doctor, error) {
	doctors, err := u.doctors.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].Availability == nil {
			doctors[i].Availability = []string{}
		}
	}
	return doctors, nil
}

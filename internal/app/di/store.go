// Package di provides dependency injection factories for creating application
// components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountsadapters "nexuscare_backend/internal/feature/accounts/adapters"
	accountsusecase "nexuscare_backend/internal/feature/accounts/usecase"
	appointmentsadapters "nexuscare_backend/internal/feature/appointments/adapters"
	appointmentsusecase "nexuscare_backend/internal/feature/appointments/usecase"
	doctorsadapters "nexuscare_backend/internal/feature/doctors/adapters"
	doctorsusecase "nexuscare_backend/internal/feature/doctors/usecase"
)

// keyPrefix namespaces every key the key-value backend writes.
const keyPrefix = "nexuscare"

// Stores bundles the repository implementations for the active backend, so
// the rest of the wiring never branches on storage again.
type Stores struct {
	Users        accountsusecase.UserRepository
	Doctors      doctorsusecase.DoctorRepository
	Appointments appointmentsusecase.AppointmentRepository

	// Engine is the backend name reported by /api/status.
	Engine string
}

// NewRedisStores returns the key-value repository set.
func NewRedisStores(rdb *redis.Client) *Stores {
	return &Stores{
		Users:        accountsadapters.NewUserRedis(rdb, keyPrefix),
		Doctors:      doctorsadapters.NewDoctorRedis(rdb, keyPrefix),
		Appointments: appointmentsadapters.NewAppointmentRedis(rdb, keyPrefix),
		Engine:       "Redis",
	}
}

// NewGormStores returns the relational repository set. engine names the
// concrete driver ("SQLite3" or "PostgreSQL").
func NewGormStores(db *gorm.DB, engine string) *Stores {
	return &Stores{
		Users:        accountsadapters.NewUserGorm(db),
		Doctors:      doctorsadapters.NewDoctorGorm(db),
		Appointments: appointmentsadapters.NewAppointmentGorm(db),
		Engine:       engine,
	}
}

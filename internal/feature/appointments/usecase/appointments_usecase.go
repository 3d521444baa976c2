// Package usecase implements the business logic for the appointments feature.
package usecase

import (
	"context"
	"fmt"
	"time"

	"nexuscare_backend/internal/feature/appointments/domain/entity"
	"nexuscare_backend/internal/platform/ident"
)

// AppointmentRepository abstracts the persistence layer for appointments.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type AppointmentRepository interface {
	// Create persists a new appointment.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// ListAll returns every appointment. The key-value implementation sorts
	// by timestamp descending; the relational one guarantees no order.
	ListAll(ctx context.Context) ([]entity.Appointment, error)
}

// Notifier is the best-effort notification sink shared with the accounts
// feature. Implementations must absorb delivery failures.
type Notifier interface {
	Notify(ctx context.Context, subject, body string)
}

// BookingInput carries the fields accepted by the booking endpoint.
// Only PatientEmail, DoctorName, Date and Time are required by the transport
// layer; the rest default to empty strings.
type BookingInput struct {
	PatientID      string
	PatientName    string
	PatientEmail   string
	PatientContact string
	DoctorID       string
	DoctorName     string
	Specialty      string
	Date           string
	Time           string
}

// AppointmentsUsecase provides the booking operations.
type AppointmentsUsecase struct {
	appointments AppointmentRepository
	notifier     Notifier
	now          func() time.Time
}

// NewAppointmentsUsecase creates a new AppointmentsUsecase. notifier may be
// nil, in which case booking events are not published.
func NewAppointmentsUsecase(appointments AppointmentRepository, notifier Notifier) *AppointmentsUsecase {
	return &AppointmentsUsecase{
		appointments: appointments,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Book persists a new appointment. Any caller-supplied status or timestamp is
// discarded: status always starts as pending and the timestamp is stamped
// here.
func (u *AppointmentsUsecase) Book(ctx context.Context, in BookingInput) (*entity.Appointment, error) {
	appointment := &entity.Appointment{
		ID:             ident.New(ident.PrefixAppointment),
		PatientID:      in.PatientID,
		PatientName:    in.PatientName,
		PatientEmail:   in.PatientEmail,
		PatientContact: in.PatientContact,
		DoctorID:       in.DoctorID,
		DoctorName:     in.DoctorName,
		Specialty:      in.Specialty,
		Date:           in.Date,
		Time:           in.Time,
		Status:         entity.StatusPending,
		Timestamp:      u.now().UTC().Format(time.RFC3339),
	}

	if err := u.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, "Appointment booked",
			fmt.Sprintf("%s booked %s on %s at %s.",
				appointment.PatientEmail, appointment.DoctorName, appointment.Date, appointment.Time))
	}

	return appointment, nil
}

// List returns all appointments in the repository's order.
func (u *AppointmentsUsecase) List(ctx context.Context) ([]entity.Appointment, error) {
	return u.appointments.ListAll(ctx)
}

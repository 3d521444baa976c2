// Package entity defines the domain entities for the appointments feature.
package entity

// Appointment statuses. Only pending is assigned today; the field is kept
// mutable for the confirmation flow the frontend already models.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment represents a booked visit.
//
// The patient/doctor identity fields are the superset observed across the
// legacy revisions; bookings that omit some of them persist empty strings.
// Status and Timestamp are always stamped server-side.
type Appointment struct {
	// ID is the generated identifier ("APP-" prefix).
	ID             string `gorm:"primaryKey;size:16" json:"id"`
	PatientID      string `gorm:"size:64" json:"patientId"`
	PatientName    string `gorm:"size:255" json:"patientName"`
	PatientEmail   string `gorm:"size:255" json:"patientEmail"`
	PatientContact string `gorm:"size:64" json:"patientContact"`
	DoctorID       string `gorm:"size:64" json:"doctorId"`
	DoctorName     string `gorm:"size:255" json:"doctorName"`
	Specialty      string `gorm:"size:255" json:"specialty"`
	Date           string `gorm:"size:32" json:"date"`
	Time           string `gorm:"size:32" json:"time"`
	Status         string `gorm:"size:32" json:"status"`

	// Timestamp is the RFC3339 creation instant.
	Timestamp string `gorm:"size:64" json:"timestamp"`
}

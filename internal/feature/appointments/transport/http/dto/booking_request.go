// Package dto defines data transfer objects for the appointments feature's
// HTTP transport layer.
package dto

// BookingReq represents the request body for POST /api/appointments.
// Legacy revisions disagreed on the persisted field set, so this is the
// superset with only the common core required.
type BookingReq struct {
	PatientID      string `json:"patientId"`
	PatientName    string `json:"patientName"`
	PatientEmail   string `json:"patientEmail" binding:"required"`
	PatientContact string `json:"patientContact"`
	DoctorID       string `json:"doctorId"`
	DoctorName     string `json:"doctorName" binding:"required"`
	Specialty      string `json:"specialty"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
}

// BookingOK is the success envelope for a booking.
type BookingOK struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

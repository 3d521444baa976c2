// Package dto defines data transfer objects for the doctors feature's HTTP
// transport layer.
package dto

// DoctorReq represents the request body for POST /api/doctors.
// Availability is optional and defaults to an empty list.
type DoctorReq struct {
	Name         string   `json:"name" binding:"required"`
	Specialty    string   `json:"specialty" binding:"required"`
	Experience   string   `json:"experience"`
	Bio          string   `json:"bio"`
	ImageURL     string   `json:"imageUrl"`
	Availability []string `json:"availability"`
}

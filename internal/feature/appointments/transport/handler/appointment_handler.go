// Package handler provides the HTTP handlers for the appointments feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexuscare_backend/internal/feature/appointments/domain/entity"
	"nexuscare_backend/internal/feature/appointments/transport/http/dto"
	"nexuscare_backend/internal/feature/appointments/usecase"
)

// AppointmentsUsecase defines the booking operations consumed by this
// handler. Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type AppointmentsUsecase interface {
	Book(ctx context.Context, in usecase.BookingInput) (*entity.Appointment, error)
	List(ctx context.Context) ([]entity.Appointment, error)
}

// AppointmentHandler handles HTTP requests for bookings.
type AppointmentHandler struct {
	appointments AppointmentsUsecase
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments AppointmentsUsecase) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.appointments.List(c.Request.Context())
	if err != nil {
		slog.Error("appointment list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// Book handles POST /api/appointments.
// - 400 when a required field is missing
// - 500 on storage failure
// - 201 with the generated id on success
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req dto.BookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("booking validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.appointments.Book(c.Request.Context(), usecase.BookingInput{
		PatientID:      req.PatientID,
		PatientName:    req.PatientName,
		PatientEmail:   req.PatientEmail,
		PatientContact: req.PatientContact,
		DoctorID:       req.DoctorID,
		DoctorName:     req.DoctorName,
		Specialty:      req.Specialty,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		slog.Error("booking failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	slog.Info("appointment booked", "appointment_id", appointment.ID, "doctor", appointment.DoctorName)
	c.JSON(http.StatusCreated, dto.BookingOK{Success: true, ID: appointment.ID})
}

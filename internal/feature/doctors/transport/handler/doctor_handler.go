// Package handler provides the HTTP handlers for the doctors feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexuscare_backend/internal/feature/doctors/domain/entity"
	"nexuscare_backend/internal/feature/doctors/transport/http/dto"
	"nexuscare_backend/internal/feature/doctors/usecase"
)

// DoctorsUsecase defines the directory operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type DoctorsUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.Doctor, error)
	List(ctx context.Context) ([]entity.Doctor, error)
}

// DoctorHandler handles HTTP requests for the specialist directory.
type DoctorHandler struct {
	doctors DoctorsUsecase
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(doctors DoctorsUsecase) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

// List handles GET /api/doctors and returns the full directory.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		slog.Error("doctor list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// Register handles POST /api/doctors.
// - 400 when a required field is missing
// - 500 on storage failure
// - 201 with the created record (generated id included) on success
func (h *DoctorHandler) Register(c *gin.Context) {
	var req dto.DoctorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("doctor validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := h.doctors.Register(c.Request.Context(), usecase.RegisterInput{
		Name:         req.Name,
		Specialty:    req.Specialty,
		Experience:   req.Experience,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		Availability: req.Availability,
	})
	if err != nil {
		slog.Error("doctor registration failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	slog.Info("doctor registered", "doctor_id", doctor.ID, "specialty", doctor.Specialty)
	c.JSON(http.StatusCreated, doctor)
}

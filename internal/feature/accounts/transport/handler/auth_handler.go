// Package handler provides the HTTP handlers for the accounts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexuscare_backend/internal/feature/accounts/domain/entity"
	"nexuscare_backend/internal/feature/accounts/transport/http/dto"
	"nexuscare_backend/internal/feature/accounts/usecase"
)

// Frontend-facing failure messages. The login message deliberately does not
// reveal whether the email exists.
const (
	msgEmailConflict      = "Identity clash: Email already registered."
	msgInvalidCredentials = "Invalid credentials. Identity unverified."
)

// AccountsUsecase defines the account operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AccountsUsecase interface {
	// Signup registers a new user and returns the persisted record.
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	// Login authenticates a user by email and password.
	Login(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	accounts AccountsUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accounts AccountsUsecase) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Signup handles POST /api/signup.
// - 400 when a required field is missing or malformed
// - 409 when the email is already registered
// - 500 on storage failure (message passed through)
// - 201 with the created user on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.AuthFail{Message: err.Error()})
		return
	}

	user, err := h.accounts.Signup(c.Request.Context(), usecase.SignupInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Role:             req.Role,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			slog.Warn("signup conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.AuthFail{Message: msgEmailConflict})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.AuthFail{Message: err.Error()})
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "role", user.Role)
	c.JSON(http.StatusCreated, dto.AuthOK{Success: true, User: dto.NewUserView(user)})
}

// Login handles POST /api/login.
// - 400 when a required field is missing or malformed
// - 401 on any credential mismatch (cause deliberately hidden)
// - 500 on storage failure
// - 200 with the user on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.AuthFail{Message: err.Error()})
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.AuthFail{Message: msgInvalidCredentials})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.AuthFail{Message: err.Error()})
		return
	}

	slog.Info("user login successful", "user_id", user.ID)
	c.JSON(http.StatusOK, dto.AuthOK{Success: true, User: dto.NewUserView(user)})
}

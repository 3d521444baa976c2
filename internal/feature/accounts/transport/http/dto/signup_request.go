// Package dto defines data transfer objects for the accounts feature's HTTP
// transport layer.
package dto

// SignupReq represents the request body for the /api/signup endpoint.
// It uses Gin's binding tags for validation.
type SignupReq struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Password         string `json:"password" binding:"required"`
	SecurityQuestion string `json:"securityQuestion" binding:"required"`
	SecurityAnswer   string `json:"securityAnswer" binding:"required"`
	Role             string `json:"role"`
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/application/service"
	"github.com/sue-zadeh/fieldbase/internal/interfaces/http/middleware"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
)

// AuthHandler serves login, logout and the password reset flow.
type AuthHandler struct {
	auth *service.AuthAppService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(auth *service.AuthAppService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Logout handles POST /auth/logout. Requires a valid bearer token.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		handleError(c, errors.Unauthorized("missing token"))
		return
	}
	if err := h.auth.Logout(c.Request.Context(), claims); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.auth.ForgotPassword(c.Request.Context(), req); err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "if the email exists, a reset code has been sent"})
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), req); err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "password updated"})
}

package handlers

import (
	"net/http"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// Login returns the token as the literal "Bearer <token>" body the
// frontend consumes.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	token, err := h.Auth.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "Bearer "+token)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	if err := h.Auth.Register(&req); err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "User registered successfully!")
}

func (h *AuthHandler) RegisterJobSeeker(c *gin.Context) {
	var req dtos.JobSeekerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	if err := h.Auth.RegisterJobSeeker(&req); err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "Job seeker registered successfully!")
}

func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var req dtos.EmployerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	if err := h.Auth.RegisterEmployer(&req); err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "Employer registered successfully!")
}

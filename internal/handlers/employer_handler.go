package handlers

import (
	"net/http"
	"strconv"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/middleware"
	"github.com/careerportal/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	Employers *services.EmployerService
}

func NewEmployerHandler(employers *services.EmployerService) *EmployerHandler {
	return &EmployerHandler{Employers: employers}
}

func (h *EmployerHandler) Profile(c *gin.Context) {
	employer, err := h.Employers.ProfileByUsername(middleware.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployerResponse(employer))
}

func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	var req dtos.EmployerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	employer, err := h.Employers.UpdateProfile(middleware.Username(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployerResponse(employer))
}

// CreateProfile lazily provisions a placeholder profile for employers
// who registered through the generic endpoint.
func (h *EmployerHandler) CreateProfile(c *gin.Context) {
	username := middleware.Username(c)

	user, err := h.Employers.UserByUsername(username)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.Employers.GetOrCreateProfile(user); err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "Employer profile ready")
}

// ListAll is the public company directory with optional filters.
func (h *EmployerHandler) ListAll(c *gin.Context) {
	var foundedAfter *int
	if v := c.Query("foundedAfter"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid foundedAfter"})
			return
		}
		foundedAfter = &year
	}

	employers, err := h.Employers.ListEmployers(c.Query("companyName"), c.Query("industry"), foundedAfter)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dtos.EmployerResponse, 0, len(employers))
	for i := range employers {
		out = append(out, toEmployerResponse(&employers[i]))
	}
	c.JSON(http.StatusOK, out)
}

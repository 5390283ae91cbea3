package handlers

import (
	"net/http"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/middleware"
	"github.com/careerportal/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type JobSeekerHandler struct {
	JobSeekers *services.JobSeekerService
}

func NewJobSeekerHandler(jobSeekers *services.JobSeekerService) *JobSeekerHandler {
	return &JobSeekerHandler{JobSeekers: jobSeekers}
}

func (h *JobSeekerHandler) Profile(c *gin.Context) {
	profile, err := h.JobSeekers.ProfileByUsername(middleware.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobSeekerProfileResponse(profile))
}

func (h *JobSeekerHandler) UpdateProfile(c *gin.Context) {
	var req dtos.JobSeekerProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	profile, err := h.JobSeekers.UpdateProfile(middleware.Username(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobSeekerProfileResponse(profile))
}

// ListAll is the public candidate directory.
func (h *JobSeekerHandler) ListAll(c *gin.Context) {
	profiles, err := h.JobSeekers.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dtos.JobSeekerProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, toJobSeekerProfileResponse(&profiles[i]))
	}
	c.JSON(http.StatusOK, out)
}

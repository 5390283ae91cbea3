package handlers

import (
	"net/http"
	"strconv"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/middleware"
	"github.com/careerportal/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

func NewJobHandler(jobs *services.JobService, applications *services.ApplicationService) *JobHandler {
	return &JobHandler{Jobs: jobs, Applications: applications}
}

// Search is the public GET /api/jobs endpoint.
func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.Jobs.Search(
		c.Query("keyword"),
		c.Query("location"),
		c.Query("experience"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobPostingResponses(jobs))
}

func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.Jobs.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobPostingResponses(jobs))
}

func (h *JobHandler) ByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.Jobs.ByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobPostingResponse(job))
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.Create(middleware.Username(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toJobPostingResponse(job))
}

// EmployerJobs lists the caller's own postings with application counts
// injected.
func (h *JobHandler) EmployerJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListByEmployer(middleware.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dtos.JobPostingResponse, 0, len(jobs))
	for i := range jobs {
		resp := toJobPostingResponse(&jobs[i])
		count, err := h.Applications.CountForJob(jobs[i].ID)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.ApplicationCount = count
		out = append(out, resp)
	}

	c.JSON(http.StatusOK, out)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.Update(id, middleware.Username(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobPostingResponse(job))
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Jobs.Delete(id, middleware.Username(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/middleware"
	"github.com/careerportal/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Apply handles POST /api/applications/:jobId as multipart form data
// with an optional "resume" part.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	var resume *services.Upload
	if fh, err := c.FormFile("resume"); err == nil && fh.Size > 0 {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read resume upload"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read resume upload"})
			return
		}

		resume = &services.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Data:        data,
		}
	}

	app, err := h.Applications.Apply(middleware.Username(c), uint(jobID), resume)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toApplicationResponse(app))
}

func (h *ApplicationHandler) MyHistory(c *gin.Context) {
	apps, err := h.Applications.MyApplications(middleware.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApplicationResponses(apps))
}

func (h *ApplicationHandler) ForJob(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	apps, err := h.Applications.ForJob(uint(jobID), middleware.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApplicationResponses(apps))
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dtos.ApplicationStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.UpdateStatus(id, middleware.Username(c), req.NewStatus, req.RecruiterNotes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApplicationResponse(app))
}

// DownloadResume streams the stored resume as an attachment.
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	file, name, err := h.Applications.Resume(id, middleware.Username(c))
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := file.FileType
	if contentType == "" {
		contentType = "application/pdf"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, file.Data)
}

package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/careerportal/career-portal-backend/internal/services"
	"github.com/gin-gonic/gin"
)

var (
	resumeExtensions = []string{"pdf", "doc", "docx"}
	photoExtensions  = []string{"jpg", "jpeg", "png", "gif"}
)

type FileHandler struct {
	Files *services.FileService
}

func NewFileHandler(files *services.FileService) *FileHandler {
	return &FileHandler{Files: files}
}

func (h *FileHandler) UploadResume(c *gin.Context) {
	h.upload(c, "resumes", resumeExtensions)
}

func (h *FileHandler) UploadPhoto(c *gin.Context) {
	h.upload(c, "photos", photoExtensions)
}

func (h *FileHandler) upload(c *gin.Context, subDir string, allowed []string) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a file to upload"})
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	valid := false
	for _, a := range allowed {
		if ext == a {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Allowed types: " + strings.Join(allowed, ", ")})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	fileID, err := h.Files.Store(services.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Data:        data,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filePath":     subDir + "/" + fileID,
		"originalName": fh.Filename,
		"message":      "File uploaded successfully",
	})
}

// Serve streams a stored blob inline; missing ids are a plain 404.
func (h *FileHandler) Serve(c *gin.Context) {
	file, err := h.Files.Get(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	contentType := file.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.FileName))
	c.Header("Cache-Control", "max-age=3600")
	c.Data(http.StatusOK, contentType, file.Data)
}

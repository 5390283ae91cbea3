package services

import (
	"errors"
	"strings"

	"github.com/careerportal/career-portal-backend/internal/logger"
	"github.com/careerportal/career-portal-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Upload is an in-memory uploaded file handed from handlers to services.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// FileService persists raw uploaded bytes in the database, keyed by a
// generated id. Callers build path strings like "resumes/<id>" from the
// returned id; no referential integrity ties those paths back here.
type FileService struct {
	DB *gorm.DB
}

func NewFileService(db *gorm.DB) *FileService {
	return &FileService{DB: db}
}

func (s *FileService) Store(up Upload) (string, error) {
	name := strings.TrimSpace(up.Name)
	if strings.Contains(name, "..") {
		return "", badRequest("filename contains invalid path sequence: %s", name)
	}

	file := &models.StoredFile{
		ID:       uuid.NewString(),
		FileName: name,
		FileType: up.ContentType,
		Data:     up.Data,
	}
	if err := s.DB.Create(file).Error; err != nil {
		return "", err
	}

	logger.Log.Infof("stored file %s (%s, %d bytes)", file.ID, name, len(up.Data))
	return file.ID, nil
}

func (s *FileService) Get(id string) (*models.StoredFile, error) {
	var file models.StoredFile
	if err := s.DB.First(&file, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "File", Field: "id", Value: id}
		}
		return nil, err
	}

	return &file, nil
}

// Delete removes a stored file best-effort. A missing id is logged and
// treated as a no-op; callers never see an error from here.
func (s *FileService) Delete(id string) {
	if id == "" {
		return
	}

	res := s.DB.Delete(&models.StoredFile{}, "id = ?", id)
	switch {
	case res.Error != nil:
		logger.Log.Warnf("could not delete file %s: %v", id, res.Error)
	case res.RowsAffected == 0:
		logger.Log.Warnf("file not found, nothing to delete: %s", id)
	default:
		logger.Log.Infof("deleted file %s", id)
	}
}

// fileIDFromPath re-derives the blob id from a stored path string such
// as "resumes/<id>"; a bare id passes through unchanged.
func fileIDFromPath(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

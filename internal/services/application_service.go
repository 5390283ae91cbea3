package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/careerportal/career-portal-backend/internal/logger"
	"github.com/careerportal/career-portal-backend/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB         *gorm.DB
	Files      *FileService
	JobSeekers *JobSeekerService
	Employers  *EmployerService
}

func NewApplicationService(db *gorm.DB, files *FileService, jobSeekers *JobSeekerService, employers *EmployerService) *ApplicationService {
	return &ApplicationService{DB: db, Files: files, JobSeekers: jobSeekers, Employers: employers}
}

// Apply creates an application from the caller's job seeker profile to
// the given posting, storing the resume blob first when one was
// uploaded. The blob write and the row insert are separate operations:
// a failure in between can orphan the blob, which is accepted and only
// surfaces in logs. Duplicate applications are not prevented.
func (s *ApplicationService) Apply(username string, jobID uint, resume *Upload) (*models.Application, error) {
	profile, err := s.JobSeekers.ProfileByUsername(username)
	if err != nil {
		return nil, err
	}

	var job models.JobPosting
	if err := s.DB.Preload("Employer").First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Job Posting", Field: "id", Value: strconv.FormatUint(uint64(jobID), 10)}
		}
		return nil, err
	}

	app := &models.Application{
		JobSeekerProfileID: profile.ID,
		JobPostingID:       job.ID,
		ApplicationDate:    time.Now(),
		Status:             models.ApplicationStatusPending,
	}

	if resume != nil && len(resume.Data) > 0 {
		fileID, err := s.Files.Store(*resume)
		if err != nil {
			return nil, err
		}
		app.ResumeFileName = resume.Name
		app.ResumeFilePath = "resumes/" + fileID
		app.ResumeContentType = resume.ContentType
		app.ResumeFileSize = resume.Size
	}

	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}

	app.JobSeekerProfile = *profile
	app.JobPosting = job

	logger.Log.Infof("job seeker %d applied to job %d (application %d)", profile.ID, job.ID, app.ID)
	return app, nil
}

// MyApplications lists the caller's own application history.
func (s *ApplicationService) MyApplications(username string) ([]models.Application, error) {
	profile, err := s.JobSeekers.ProfileByUsername(username)
	if err != nil {
		return nil, err
	}

	var apps []models.Application
	err = s.DB.Preload("JobPosting.Employer").Preload("JobSeekerProfile").
		Where("job_seeker_profile_id = ?", profile.ID).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ForJob lists the applications on a posting the caller owns.
func (s *ApplicationService) ForJob(jobID uint, employerUsername string) ([]models.Application, error) {
	employer, err := s.Employers.ProfileByUsername(employerUsername)
	if err != nil {
		return nil, err
	}

	var job models.JobPosting
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Job Posting", Field: "id", Value: strconv.FormatUint(uint64(jobID), 10)}
		}
		return nil, err
	}
	if job.EmployerID != employer.ID {
		return nil, ErrAccessDenied
	}

	var apps []models.Application
	err = s.DB.Preload("JobPosting.Employer").Preload("JobSeekerProfile").
		Where("job_posting_id = ?", jobID).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus moves an application to a new status and overwrites the
// recruiter notes. Only statuses from the closed set are accepted.
func (s *ApplicationService) UpdateStatus(id uint, employerUsername, newStatus, recruiterNotes string) (*models.Application, error) {
	if !models.ValidApplicationStatus(newStatus) {
		return nil, badRequest("Invalid application status: %s", newStatus)
	}

	app, err := s.byIDOwned(id, employerUsername)
	if err != nil {
		return nil, err
	}

	app.Status = newStatus
	app.RecruiterNotes = recruiterNotes
	if err := s.DB.Save(app).Error; err != nil {
		return nil, err
	}

	logger.Log.Infof("application %d moved to %s", app.ID, newStatus)
	return app, nil
}

// Resume returns the stored resume blob for an application on a posting
// the caller owns, plus the filename to serve it under.
func (s *ApplicationService) Resume(id uint, employerUsername string) (*models.StoredFile, string, error) {
	app, err := s.byIDOwned(id, employerUsername)
	if err != nil {
		return nil, "", err
	}

	if app.ResumeFilePath == "" {
		return nil, "", &NotFoundError{Resource: "Resume", Field: "application id", Value: strconv.FormatUint(uint64(id), 10)}
	}

	file, err := s.Files.Get(fileIDFromPath(app.ResumeFilePath))
	if err != nil {
		return nil, "", err
	}

	name := app.ResumeFileName
	if name == "" {
		name = "resume.pdf"
	}
	return file, name, nil
}

func (s *ApplicationService) CountForJob(jobID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Application{}).Where("job_posting_id = ?", jobID).Count(&count).Error
	return count, err
}

func (s *ApplicationService) byIDOwned(id uint, employerUsername string) (*models.Application, error) {
	employer, err := s.Employers.ProfileByUsername(employerUsername)
	if err != nil {
		return nil, err
	}

	var app models.Application
	err = s.DB.Preload("JobPosting.Employer").Preload("JobSeekerProfile").First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Application", Field: "id", Value: strconv.FormatUint(uint64(id), 10)}
		}
		return nil, err
	}

	if app.JobPosting.EmployerID != employer.ID {
		return nil, ErrAccessDenied
	}
	return &app, nil
}

package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/logger"
	"github.com/careerportal/career-portal-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobService struct {
	DB        *gorm.DB
	Employers *EmployerService
}

func NewJobService(db *gorm.DB, employers *EmployerService) *JobService {
	return &JobService{DB: db, Employers: employers}
}

// Create posts a new job under the caller's employer profile, lazily
// creating a placeholder profile when none exists yet.
func (s *JobService) Create(username string, req *dtos.JobPostingRequest) (*models.JobPosting, error) {
	user, err := findUserByUsername(s.DB, username)
	if err != nil {
		return nil, err
	}

	employer, err := s.Employers.GetOrCreateProfile(user)
	if err != nil {
		return nil, err
	}

	job := &models.JobPosting{
		EmployerID:      employer.ID,
		JobTitle:        req.JobTitle,
		JobPosition:     req.JobPosition,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		Location:        req.Location,
		ExperienceLevel: req.ExperienceLevel,
		FunctionalArea:  req.FunctionalArea,
		Industry:        req.Industry,
		SalaryDetails:   req.SalaryDetails,
		DatePosted:      datatypes.Date(time.Now()),
		IsActive:        true,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}

	logger.Log.Infof("employer %d posted job %d (%s)", employer.ID, job.ID, job.JobTitle)
	return job, nil
}

func (s *JobService) ListAll() ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := s.DB.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Search applies the conjunctive public filter: keyword substring over
// title/description/skills, location substring, exact experience level,
// always restricted to active postings. Matching is case-insensitive.
func (s *JobService) Search(keyword, location, experienceLevel string) ([]models.JobPosting, error) {
	q := s.DB.Where("is_active = ?", true)

	if keyword != "" {
		like := "%" + strings.ToLower(keyword) + "%"
		q = q.Where(
			"LOWER(job_title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(required_skills) LIKE ?",
			like, like, like,
		)
	}
	if location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if experienceLevel != "" {
		q = q.Where("experience_level = ?", experienceLevel)
	}

	var jobs []models.JobPosting
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) ByID(id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Job Posting", Field: "id", Value: strconv.FormatUint(uint64(id), 10)}
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobService) ListByEmployer(username string) ([]models.JobPosting, error) {
	employer, err := s.Employers.ProfileByUsername(username)
	if err != nil {
		return nil, err
	}

	var jobs []models.JobPosting
	if err := s.DB.Where("employer_id = ?", employer.ID).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update rewrites a posting owned by the caller. Ownership mismatch is
// an authorization failure, not a not-found.
func (s *JobService) Update(id uint, username string, req *dtos.JobPostingRequest) (*models.JobPosting, error) {
	employer, err := s.Employers.ProfileByUsername(username)
	if err != nil {
		return nil, err
	}

	job, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employer.ID {
		return nil, ErrAccessDenied
	}

	job.JobTitle = req.JobTitle
	job.JobPosition = req.JobPosition
	job.Description = req.Description
	job.RequiredSkills = req.RequiredSkills
	job.Location = req.Location
	job.ExperienceLevel = req.ExperienceLevel
	job.FunctionalArea = req.FunctionalArea
	job.Industry = req.Industry
	job.SalaryDetails = req.SalaryDetails
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}

	logger.Log.Infof("employer %d updated job %d", employer.ID, job.ID)
	return job, nil
}

// Delete removes a posting owned by the caller along with its
// applications.
func (s *JobService) Delete(id uint, username string) error {
	employer, err := s.Employers.ProfileByUsername(username)
	if err != nil {
		return err
	}

	job, err := s.ByID(id)
	if err != nil {
		return err
	}
	if job.EmployerID != employer.ID {
		return ErrAccessDenied
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_posting_id = ?", job.ID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(job).Error
	})
	if err != nil {
		return err
	}

	logger.Log.Infof("employer %d deleted job %d", employer.ID, id)
	return nil
}

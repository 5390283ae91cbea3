package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/logger"
	"github.com/careerportal/career-portal-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobSeekerService struct {
	DB    *gorm.DB
	Files *FileService
}

func NewJobSeekerService(db *gorm.DB, files *FileService) *JobSeekerService {
	return &JobSeekerService{DB: db, Files: files}
}

// CreateProfile writes the profile through db so registration can pass
// its transaction in.
func (s *JobSeekerService) CreateProfile(db *gorm.DB, user *models.User, req *dtos.JobSeekerRegisterRequest) (*models.JobSeekerProfile, error) {
	profile := &models.JobSeekerProfile{
		UserID:         user.ID,
		Name:           req.Name,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Education:      req.Education,
		WorkExperience: req.WorkExperience,
		Skills:         req.Skills,
		ResumeFilePath: req.ResumeFilePath,
		PhotoFilePath:  req.PhotoFilePath,
	}

	if req.Status != "" {
		if req.Status != models.ExperienceFresher && req.Status != models.ExperienceExperienced {
			return nil, badRequest("Invalid experience status: %s", req.Status)
		}
		profile.Status = req.Status
	}
	if req.Gender != "" {
		if req.Gender != models.GenderMale && req.Gender != models.GenderFemale && req.Gender != models.GenderOther {
			return nil, badRequest("Invalid gender: %s", req.Gender)
		}
		profile.Gender = req.Gender
	}
	if req.Dob != "" {
		dob, err := parseDate(req.Dob)
		if err != nil {
			return nil, err
		}
		profile.Dob = dob
	}

	if err := db.Create(profile).Error; err != nil {
		return nil, err
	}

	logger.Log.Infof("created job seeker profile %d for user %s", profile.ID, user.Username)
	return profile, nil
}

// CreateDefaultProfile seeds a minimal profile for job seekers who
// registered through the generic endpoint.
func (s *JobSeekerService) CreateDefaultProfile(db *gorm.DB, user *models.User) (*models.JobSeekerProfile, error) {
	email := "Please Update Email"
	if user.Email != nil && *user.Email != "" {
		email = *user.Email
	}
	dob, _ := time.Parse("2006-01-02", "1990-01-01")

	profile := &models.JobSeekerProfile{
		UserID: user.ID,
		Name:   user.Username,
		Email:  email,
		Dob:    datatypes.Date(dob),
	}
	if err := db.Create(profile).Error; err != nil {
		return nil, err
	}

	logger.Log.Infof("created default job seeker profile %d for user %s", profile.ID, user.Username)
	return profile, nil
}

func (s *JobSeekerService) ProfileByUsername(username string) (*models.JobSeekerProfile, error) {
	user, err := findUserByUsername(s.DB, username)
	if err != nil {
		return nil, err
	}

	return s.profileByUserID(user.ID)
}

func (s *JobSeekerService) profileByUserID(userID uint) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	err := s.DB.Preload("EducationDetails").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Job Seeker Profile", Field: "user id", Value: strconv.FormatUint(uint64(userID), 10)}
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile rewrites the caller's profile inside one transaction,
// replacing the education detail list wholesale. Blob cleanup for a
// changed resume or photo path happens after commit, best-effort: a
// failure there can leave an orphaned blob but never a broken profile.
func (s *JobSeekerService) UpdateProfile(username string, req *dtos.JobSeekerProfileUpdateRequest) (*models.JobSeekerProfile, error) {
	user, err := findUserByUsername(s.DB, username)
	if err != nil {
		return nil, err
	}

	var staleBlobs []string
	var profile *models.JobSeekerProfile

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.JobSeekerProfile
		err := tx.Where("user_id = ?", user.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			existing = models.JobSeekerProfile{UserID: user.ID}
		} else if err != nil {
			return err
		}

		existing.Name = req.Name
		existing.Email = req.Email
		existing.Mobile = req.Mobile
		existing.Education = req.Education
		existing.WorkExperience = req.WorkExperience
		existing.Skills = req.Skills

		if req.Status != "" {
			if req.Status != models.ExperienceFresher && req.Status != models.ExperienceExperienced {
				return badRequest("Invalid experience status: %s", req.Status)
			}
			existing.Status = req.Status
		}
		if req.Gender != "" {
			if req.Gender != models.GenderMale && req.Gender != models.GenderFemale && req.Gender != models.GenderOther {
				return badRequest("Invalid gender: %s", req.Gender)
			}
			existing.Gender = req.Gender
		}
		if req.Dob != "" {
			dob, err := parseDate(req.Dob)
			if err != nil {
				return err
			}
			existing.Dob = dob
		}

		if req.ResumeFilePath != nil && *req.ResumeFilePath != existing.ResumeFilePath {
			if existing.ResumeFilePath != "" {
				staleBlobs = append(staleBlobs, fileIDFromPath(existing.ResumeFilePath))
			}
			existing.ResumeFilePath = *req.ResumeFilePath
		}
		if req.PhotoFilePath != nil && *req.PhotoFilePath != existing.PhotoFilePath {
			if existing.PhotoFilePath != "" {
				staleBlobs = append(staleBlobs, fileIDFromPath(existing.PhotoFilePath))
			}
			existing.PhotoFilePath = *req.PhotoFilePath
		}

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		// Replace education details: delete the old rows, insert the new
		// list under the profile id.
		if err := tx.Where("job_seeker_profile_id = ?", existing.ID).Delete(&models.EducationDetail{}).Error; err != nil {
			return err
		}
		for _, ed := range req.EducationDetails {
			detail := models.EducationDetail{
				JobSeekerProfileID: existing.ID,
				Qualification:      ed.Qualification,
				Specialization:     ed.Specialization,
				YearOfPassing:      ed.YearOfPassing,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		}

		profile = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, id := range staleBlobs {
		s.Files.Delete(id)
	}

	logger.Log.Infof("updated job seeker profile %d for user %s", profile.ID, username)
	return s.profileByUserID(user.ID)
}

func (s *JobSeekerService) ListAll() ([]models.JobSeekerProfile, error) {
	var profiles []models.JobSeekerProfile
	if err := s.DB.Preload("EducationDetails").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, badRequest("Invalid date: %s (expected YYYY-MM-DD)", s)
	}
	return datatypes.Date(t), nil
}

package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/logger"
	"github.com/careerportal/career-portal-backend/internal/models"
	"gorm.io/gorm"
)

type EmployerService struct {
	DB *gorm.DB
}

func NewEmployerService(db *gorm.DB) *EmployerService {
	return &EmployerService{DB: db}
}

// CreateProfile writes the profile through db so registration can pass
// its transaction in.
func (s *EmployerService) CreateProfile(db *gorm.DB, user *models.User, req *dtos.EmployerRegisterRequest) (*models.Employer, error) {
	employer := &models.Employer{
		UserID:         user.ID,
		CompanyName:    req.CompanyName,
		Email:          req.Email,
		Industry:       req.Industry,
		CompanySize:    req.CompanySize,
		Headquarters:   req.Headquarters,
		Founded:        req.Founded,
		Specialities:   req.Specialities,
		CompanyAddress: req.CompanyAddress,
		CompanyPhone:   req.CompanyPhone,
	}
	if req.CompanyType != "" {
		if !models.ValidCompanyType(req.CompanyType) {
			return nil, badRequest("Invalid company type: %s", req.CompanyType)
		}
		employer.CompanyType = req.CompanyType
	}

	if err := db.Create(employer).Error; err != nil {
		return nil, err
	}

	logger.Log.Infof("created employer profile %d for user %s", employer.ID, user.Username)
	return employer, nil
}

// CreateDefaultProfile seeds a placeholder profile so employers who
// registered through the generic endpoint can post jobs right away.
func (s *EmployerService) CreateDefaultProfile(db *gorm.DB, user *models.User) (*models.Employer, error) {
	email := "Please Update Email"
	if user.Email != nil && *user.Email != "" {
		email = *user.Email
	}

	employer := &models.Employer{
		UserID:         user.ID,
		CompanyName:    "Company Name - Please Update",
		Email:          email,
		Industry:       "Technology",
		CompanySize:    "Please Update",
		Headquarters:   "Please Update Location",
		CompanyType:    "PRIVATE",
		Specialities:   "Please Update Specialities",
		CompanyAddress: "Please Update Address",
		CompanyPhone:   "Please Update Phone",
	}
	if err := db.Create(employer).Error; err != nil {
		return nil, err
	}

	logger.Log.Infof("created default employer profile %d for user %s", employer.ID, user.Username)
	return employer, nil
}

func (s *EmployerService) GetOrCreateProfile(user *models.User) (*models.Employer, error) {
	var employer models.Employer
	err := s.DB.Where("user_id = ?", user.ID).First(&employer).Error
	if err == nil {
		return &employer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.CreateDefaultProfile(s.DB, user)
}

// UserByUsername resolves the account record for an authenticated
// principal.
func (s *EmployerService) UserByUsername(username string) (*models.User, error) {
	return findUserByUsername(s.DB, username)
}

func (s *EmployerService) ProfileByUsername(username string) (*models.Employer, error) {
	user, err := findUserByUsername(s.DB, username)
	if err != nil {
		return nil, err
	}

	return s.profileByUserID(user.ID)
}

func (s *EmployerService) profileByUserID(userID uint) (*models.Employer, error) {
	var employer models.Employer
	if err := s.DB.Where("user_id = ?", userID).First(&employer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Employer Profile", Field: "user id", Value: strconv.FormatUint(uint64(userID), 10)}
		}
		return nil, err
	}
	return &employer, nil
}

// UpdateProfile applies a partial update. An unrecognized company type
// keeps the existing value and is only logged; an empty string clears it.
func (s *EmployerService) UpdateProfile(username string, req *dtos.EmployerUpdateRequest) (*models.Employer, error) {
	user, err := findUserByUsername(s.DB, username)
	if err != nil {
		return nil, err
	}

	employer, err := s.profileByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		if strings.TrimSpace(*req.CompanyName) == "" {
			return nil, badRequest("Company name cannot be empty")
		}
		employer.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" {
			return nil, badRequest("Email cannot be empty")
		}
		employer.Email = strings.TrimSpace(*req.Email)
	}
	if req.Industry != nil {
		if strings.TrimSpace(*req.Industry) == "" {
			return nil, badRequest("Industry cannot be empty")
		}
		employer.Industry = strings.TrimSpace(*req.Industry)
	}
	if req.CompanySize != nil {
		employer.CompanySize = strings.TrimSpace(*req.CompanySize)
	}
	if req.Headquarters != nil {
		employer.Headquarters = strings.TrimSpace(*req.Headquarters)
	}
	if req.CompanyType != nil {
		ct := strings.TrimSpace(*req.CompanyType)
		switch {
		case ct == "":
			employer.CompanyType = ""
		case models.ValidCompanyType(ct):
			employer.CompanyType = ct
		default:
			logger.Log.Warnf("invalid company type %q, keeping existing value", ct)
		}
	}
	if req.Founded != nil {
		employer.Founded = req.Founded
	}
	if req.Specialities != nil {
		employer.Specialities = strings.TrimSpace(*req.Specialities)
	}
	if req.CompanyAddress != nil {
		employer.CompanyAddress = strings.TrimSpace(*req.CompanyAddress)
	}
	if req.CompanyPhone != nil {
		employer.CompanyPhone = strings.TrimSpace(*req.CompanyPhone)
	}

	if err := s.DB.Save(employer).Error; err != nil {
		return nil, err
	}

	logger.Log.Infof("updated employer profile %d for user %s", employer.ID, username)
	return employer, nil
}

// ListEmployers returns all employers, filtered in memory the way the
// public directory endpoint exposes them.
func (s *EmployerService) ListEmployers(companyName, industry string, foundedAfter *int) ([]models.Employer, error) {
	var employers []models.Employer
	if err := s.DB.Find(&employers).Error; err != nil {
		return nil, err
	}

	filtered := employers[:0]
	for _, e := range employers {
		if companyName != "" && !strings.Contains(strings.ToLower(e.CompanyName), strings.ToLower(companyName)) {
			continue
		}
		if industry != "" && !strings.Contains(strings.ToLower(e.Industry), strings.ToLower(industry)) {
			continue
		}
		if foundedAfter != nil && (e.Founded == nil || *e.Founded < *foundedAfter) {
			continue
		}
		filtered = append(filtered, e)
	}

	return filtered, nil
}

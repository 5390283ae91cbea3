package services

import (
	"errors"
	"strings"

	"github.com/careerportal/career-portal-backend/internal/auth"
	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/logger"
	"github.com/careerportal/career-portal-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB         *gorm.DB
	Issuer     *auth.TokenIssuer
	Employers  *EmployerService
	JobSeekers *JobSeekerService
}

func NewAuthService(db *gorm.DB, issuer *auth.TokenIssuer, employers *EmployerService, jobSeekers *JobSeekerService) *AuthService {
	return &AuthService{DB: db, Issuer: issuer, Employers: employers, JobSeekers: jobSeekers}
}

// Login resolves the credential by username or email, verifies the
// password and issues a token. Every failure collapses into
// ErrUnauthorized so callers cannot probe which check failed.
func (s *AuthService) Login(req *dtos.LoginRequest) (string, error) {
	var user models.User
	err := s.DB.Where("username = ? OR email = ?", req.UsernameOrEmail, req.UsernameOrEmail).
		First(&user).Error
	if err != nil {
		return "", ErrUnauthorized
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return "", ErrUnauthorized
	}

	logger.Log.Infof("login successful for user %s", user.Username)
	return s.Issuer.Generate(user.Username, []string{user.Role})
}

// Register is the generic variant: credentials plus a role name. The
// email is optional here; when absent the account stores NULL. Either
// role gets a placeholder profile it can complete later.
func (s *AuthService) Register(req *dtos.RegisterRequest) error {
	role, err := roleFromName(req.Role)
	if err != nil {
		return err
	}

	if err := s.checkUsernameFree(req.Username); err != nil {
		return err
	}
	if req.Email != "" {
		if err := s.checkEmailFree(req.Email); err != nil {
			return err
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := s.createUser(tx, req.Username, req.Email, req.Password, role)
		if err != nil {
			return err
		}

		switch role {
		case models.RoleEmployer:
			if _, err := s.Employers.CreateDefaultProfile(tx, user); err != nil {
				return err
			}
		case models.RoleJobSeeker:
			if _, err := s.JobSeekers.CreateDefaultProfile(tx, user); err != nil {
				return err
			}
		}

		logger.Log.Infof("user registered: %s (%s)", user.Username, role)
		return nil
	})
}

func (s *AuthService) RegisterJobSeeker(req *dtos.JobSeekerRegisterRequest) error {
	if err := s.checkUsernameFree(req.Username); err != nil {
		return err
	}
	if err := s.checkEmailFree(req.Email); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := s.createUser(tx, req.Username, req.Email, req.Password, models.RoleJobSeeker)
		if err != nil {
			return err
		}

		if _, err := s.JobSeekers.CreateProfile(tx, user, req); err != nil {
			return err
		}

		logger.Log.Infof("job seeker registered: %s", user.Username)
		return nil
	})
}

func (s *AuthService) RegisterEmployer(req *dtos.EmployerRegisterRequest) error {
	if err := s.checkUsernameFree(req.Username); err != nil {
		return err
	}
	if err := s.checkEmailFree(req.Email); err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Employer{}).Where("company_name = ?", req.CompanyName).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return badRequest("Company name is already registered!")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := s.createUser(tx, req.Username, req.Email, req.Password, models.RoleEmployer)
		if err != nil {
			return err
		}

		if _, err := s.Employers.CreateProfile(tx, user, req); err != nil {
			return err
		}

		logger.Log.Infof("employer registered: %s (%s)", user.Username, req.CompanyName)
		return nil
	})
}

func (s *AuthService) checkUsernameFree(username string) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return badRequest("Username is already taken!")
	}
	return nil
}

func (s *AuthService) checkEmailFree(email string) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return badRequest("Email is already registered!")
	}
	return nil
}

func (s *AuthService) createUser(db *gorm.DB, username, email, password, role string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	}
	if email != "" {
		user.Email = &email
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func roleFromName(name string) (string, error) {
	switch strings.ToLower(name) {
	case "jobseeker":
		return models.RoleJobSeeker, nil
	case "employer":
		return models.RoleEmployer, nil
	}
	return "", badRequest("Invalid role specified!")
}

// findUserByUsername is the shared principal lookup used by all
// services that resolve the authenticated caller.
func findUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "User", Field: "username", Value: username}
		}
		return nil, err
	}
	return &user, nil
}

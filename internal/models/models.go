package models

import (
	"time"

	"gorm.io/datatypes"
)

// Account roles. One role per user, stored as a plain column.
const (
	RoleEmployer  = "ROLE_EMPLOYER"
	RoleJobSeeker = "ROLE_JOB_SEEKER"
)

// Application statuses. Creation always starts at PENDING; employers
// move an application through the rest of the set.
const (
	ApplicationStatusPending     = "PENDING"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusRejected    = "REJECTED"
	ApplicationStatusHired       = "HIRED"
)

// ValidApplicationStatus reports whether s belongs to the closed status set.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// Company types recognized on employer profiles.
var CompanyTypes = []string{
	"PUBLIC", "PRIVATE", "STARTUP", "NON_PROFIT",
	"GOVERNMENT", "PARTNERSHIP", "LLC", "CORPORATION",
}

// ValidCompanyType reports whether t is a recognized company type.
func ValidCompanyType(t string) bool {
	for _, ct := range CompanyTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Experience statuses and genders on job seeker profiles.
const (
	ExperienceFresher     = "FRESHER"
	ExperienceExperienced = "EXPERIENCED"

	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Nullable so accounts registered without an email don't collide
	// on the unique index.
	Email    *string `gorm:"uniqueIndex" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Role     string  `gorm:"not null" json:"role"`
}

type Employer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `json:"-"`

	CompanyName    string `gorm:"uniqueIndex;not null" json:"company_name"`
	Email          string `gorm:"not null" json:"email"`
	Industry       string `gorm:"not null" json:"industry"`
	CompanySize    string `json:"company_size"`
	Headquarters   string `json:"headquarters"`
	CompanyType    string `json:"company_type"`
	Founded        *int   `json:"founded"`
	Specialities   string `gorm:"type:text" json:"specialities"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`

	JobPostings []JobPosting `gorm:"constraint:OnDelete:CASCADE" json:"job_postings,omitempty"`
}

type JobSeekerProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `json:"-"`

	Name           string         `gorm:"not null" json:"name"`
	Email          string         `gorm:"not null" json:"email"`
	Mobile         string         `json:"mobile"`
	Status         string         `json:"status"`
	Gender         string         `json:"gender"`
	Dob            datatypes.Date `json:"dob"`
	Education      string         `gorm:"type:text" json:"education"`
	WorkExperience string         `gorm:"type:text" json:"work_experience"`
	Skills         string         `gorm:"type:text" json:"skills"`
	ResumeFilePath string         `json:"resume_file_path"`
	PhotoFilePath  string         `json:"photo_file_path"`

	EducationDetails []EducationDetail `gorm:"constraint:OnDelete:CASCADE" json:"education_details,omitempty"`
}

type EducationDetail struct {
	ID uint `gorm:"primaryKey" json:"id"`

	JobSeekerProfileID uint `gorm:"index;not null" json:"-"`

	Qualification  string `json:"qualification"`
	Specialization string `json:"specialization"`
	YearOfPassing  int    `json:"year_of_passing"`
}

type JobPosting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EmployerID uint     `gorm:"index;not null" json:"employer_id"`
	Employer   Employer `json:"-"`

	JobTitle        string         `gorm:"not null" json:"job_title"`
	JobPosition     string         `json:"job_position"`
	Description     string         `gorm:"type:text" json:"description"`
	RequiredSkills  string         `gorm:"type:text" json:"required_skills"`
	Location        string         `json:"location"`
	ExperienceLevel string         `json:"experience_level"`
	FunctionalArea  string         `json:"functional_area"`
	Industry        string         `json:"industry"`
	SalaryDetails   string         `json:"salary_details"`
	DatePosted      datatypes.Date `json:"date_posted"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`

	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobSeekerProfileID uint             `gorm:"index;not null" json:"job_seeker_profile_id"`
	JobSeekerProfile   JobSeekerProfile `json:"-"`

	JobPostingID uint       `gorm:"index;not null" json:"job_posting_id"`
	JobPosting   JobPosting `json:"-"`

	ApplicationDate time.Time `json:"application_date"`
	Status          string    `gorm:"default:'PENDING'" json:"status"`
	RecruiterNotes  string    `gorm:"type:text" json:"recruiter_notes"`

	// Resume metadata; the bytes themselves live in StoredFile and are
	// referenced through ResumeFilePath ("resumes/<id>").
	ResumeFileName    string `json:"resume_file_name"`
	ResumeFilePath    string `json:"resume_file_path"`
	ResumeContentType string `json:"resume_content_type"`
	ResumeFileSize    int64  `json:"resume_file_size"`
}

// StoredFile holds uploaded binary content keyed by a generated id.
// Nothing enforces referential integrity between the path strings kept
// on profiles/applications and rows here; cleanup is explicit.
type StoredFile struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FileName string `gorm:"not null" json:"file_name"`
	FileType string `json:"file_type"`
	Data     []byte `json:"-"`
}

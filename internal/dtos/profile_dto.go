package dtos

type EmployerResponse struct {
	ID             uint   `json:"id"`
	CompanyName    string `json:"companyName"`
	Email          string `json:"email"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"companySize"`
	Headquarters   string `json:"headquarters"`
	CompanyType    string `json:"companyType"`
	Founded        *int   `json:"founded"`
	Specialities   string `json:"specialities"`
	CompanyAddress string `json:"companyAddress"`
	CompanyPhone   string `json:"companyPhone"`
}

// EmployerUpdateRequest carries partial updates: nil means leave the
// field alone, an empty string clears it where clearing is allowed.
type EmployerUpdateRequest struct {
	CompanyName    *string `json:"companyName"`
	Email          *string `json:"email"`
	Industry       *string `json:"industry"`
	CompanySize    *string `json:"companySize"`
	Headquarters   *string `json:"headquarters"`
	CompanyType    *string `json:"companyType"`
	Founded        *int    `json:"founded"`
	Specialities   *string `json:"specialities"`
	CompanyAddress *string `json:"companyAddress"`
	CompanyPhone   *string `json:"companyPhone"`
}

type EducationDetailDTO struct {
	ID             uint   `json:"id,omitempty"`
	Qualification  string `json:"qualification"`
	Specialization string `json:"specialization"`
	YearOfPassing  int    `json:"yearOfPassing"`
}

type JobSeekerProfileResponse struct {
	ID               uint                 `json:"id"`
	Name             string               `json:"name"`
	Email            string               `json:"email"`
	Mobile           string               `json:"mobile"`
	Status           string               `json:"status"`
	Gender           string               `json:"gender"`
	Dob              string               `json:"dob"`
	Education        string               `json:"education"`
	WorkExperience   string               `json:"workExperience"`
	Skills           string               `json:"skills"`
	ResumeFilePath   string               `json:"resumeFilePath"`
	PhotoFilePath    string               `json:"photoFilePath"`
	EducationDetails []EducationDetailDTO `json:"educationDetails"`
}

type JobSeekerProfileUpdateRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Status         string `json:"status"`
	Gender         string `json:"gender"`
	Dob            string `json:"dob"`
	Education      string `json:"education"`
	WorkExperience string `json:"workExperience"`
	Skills         string `json:"skills"`

	// When set and different from the stored path, the previous blob is
	// deleted best-effort after the update commits.
	ResumeFilePath *string `json:"resumeFilePath"`
	PhotoFilePath  *string `json:"photoFilePath"`

	EducationDetails []EducationDetailDTO `json:"educationDetails"`
}

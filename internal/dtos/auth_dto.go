package dtos

type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// RegisterRequest is the generic registration payload: credentials plus
// a role name ("employer" or "jobseeker").
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type JobSeekerRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`

	Name           string `json:"name" binding:"required"`
	Mobile         string `json:"mobile"`
	Status         string `json:"status"`
	Gender         string `json:"gender"`
	Dob            string `json:"dob"`
	Education      string `json:"education"`
	WorkExperience string `json:"workExperience"`
	Skills         string `json:"skills"`
	ResumeFilePath string `json:"resumeFilePath"`
	PhotoFilePath  string `json:"photoFilePath"`
}

type EmployerRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`

	CompanyName    string `json:"companyName" binding:"required"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"companySize"`
	Headquarters   string `json:"headquarters"`
	CompanyType    string `json:"companyType"`
	Founded        *int   `json:"founded"`
	Specialities   string `json:"specialities"`
	CompanyAddress string `json:"companyAddress"`
	CompanyPhone   string `json:"companyPhone"`
}

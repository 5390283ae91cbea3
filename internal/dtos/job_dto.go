package dtos

type JobPostingRequest struct {
	JobTitle        string `json:"jobTitle" binding:"required"`
	JobPosition     string `json:"jobPosition"`
	Description     string `json:"description"`
	RequiredSkills  string `json:"requiredSkills"`
	Location        string `json:"location"`
	ExperienceLevel string `json:"experienceLevel"`
	FunctionalArea  string `json:"functionalArea"`
	Industry        string `json:"industry"`
	SalaryDetails   string `json:"salaryDetails"`

	// Only honored on update; new postings always start active.
	IsActive *bool `json:"isActive"`
}

type JobPostingResponse struct {
	ID              uint   `json:"id"`
	JobTitle        string `json:"jobTitle"`
	JobPosition     string `json:"jobPosition"`
	Description     string `json:"description"`
	RequiredSkills  string `json:"requiredSkills"`
	Location        string `json:"location"`
	ExperienceLevel string `json:"experienceLevel"`
	FunctionalArea  string `json:"functionalArea"`
	Industry        string `json:"industry"`
	SalaryDetails   string `json:"salaryDetails"`
	DatePosted      string `json:"datePosted"`
	IsActive        bool   `json:"isActive"`

	// Filled only on the employer's own listing.
	ApplicationCount int64 `json:"applicationCount"`
}

package dtos

import "time"

type ApplicationResponse struct {
	ID                 uint      `json:"id"`
	Status             string    `json:"status"`
	ApplicationDate    time.Time `json:"applicationDate"`
	JobPostingID       uint      `json:"jobPostingId"`
	JobSeekerProfileID uint      `json:"jobSeekerProfileId"`
	JobTitle           string    `json:"jobTitle"`
	CompanyName        string    `json:"companyName"`
	RecruiterNotes     string    `json:"recruiterNotes"`

	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	CandidatePhone string `json:"candidatePhone"`

	ResumeFileName string `json:"resumeFileName"`
	HasResume      bool   `json:"hasResume"`
}

type ApplicationStatusUpdateRequest struct {
	NewStatus      string `json:"newStatus" binding:"required"`
	RecruiterNotes string `json:"recruiterNotes"`
}

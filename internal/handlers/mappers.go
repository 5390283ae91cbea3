package handlers

import (
	"time"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/models"
)

func toJobPostingResponse(job *models.JobPosting) dtos.JobPostingResponse {
	return dtos.JobPostingResponse{
		ID:              job.ID,
		JobTitle:        job.JobTitle,
		JobPosition:     job.JobPosition,
		Description:     job.Description,
		RequiredSkills:  job.RequiredSkills,
		Location:        job.Location,
		ExperienceLevel: job.ExperienceLevel,
		FunctionalArea:  job.FunctionalArea,
		Industry:        job.Industry,
		SalaryDetails:   job.SalaryDetails,
		DatePosted:      time.Time(job.DatePosted).Format("2006-01-02"),
		IsActive:        job.IsActive,
	}
}

func toJobPostingResponses(jobs []models.JobPosting) []dtos.JobPostingResponse {
	out := make([]dtos.JobPostingResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobPostingResponse(&jobs[i]))
	}
	return out
}

func toEmployerResponse(e *models.Employer) dtos.EmployerResponse {
	return dtos.EmployerResponse{
		ID:             e.ID,
		CompanyName:    e.CompanyName,
		Email:          e.Email,
		Industry:       e.Industry,
		CompanySize:    e.CompanySize,
		Headquarters:   e.Headquarters,
		CompanyType:    e.CompanyType,
		Founded:        e.Founded,
		Specialities:   e.Specialities,
		CompanyAddress: e.CompanyAddress,
		CompanyPhone:   e.CompanyPhone,
	}
}

func toJobSeekerProfileResponse(p *models.JobSeekerProfile) dtos.JobSeekerProfileResponse {
	resp := dtos.JobSeekerProfileResponse{
		ID:               p.ID,
		Name:             p.Name,
		Email:            p.Email,
		Mobile:           p.Mobile,
		Status:           p.Status,
		Gender:           p.Gender,
		Education:        p.Education,
		WorkExperience:   p.WorkExperience,
		Skills:           p.Skills,
		ResumeFilePath:   p.ResumeFilePath,
		PhotoFilePath:    p.PhotoFilePath,
		EducationDetails: make([]dtos.EducationDetailDTO, 0, len(p.EducationDetails)),
	}
	if !time.Time(p.Dob).IsZero() {
		resp.Dob = time.Time(p.Dob).Format("2006-01-02")
	}
	for _, ed := range p.EducationDetails {
		resp.EducationDetails = append(resp.EducationDetails, dtos.EducationDetailDTO{
			ID:             ed.ID,
			Qualification:  ed.Qualification,
			Specialization: ed.Specialization,
			YearOfPassing:  ed.YearOfPassing,
		})
	}

	return resp
}

func toApplicationResponse(app *models.Application) dtos.ApplicationResponse {
	return dtos.ApplicationResponse{
		ID:                 app.ID,
		Status:             app.Status,
		ApplicationDate:    app.ApplicationDate,
		JobPostingID:       app.JobPostingID,
		JobSeekerProfileID: app.JobSeekerProfileID,
		JobTitle:           app.JobPosting.JobTitle,
		CompanyName:        app.JobPosting.Employer.CompanyName,
		RecruiterNotes:     app.RecruiterNotes,
		CandidateName:      app.JobSeekerProfile.Name,
		CandidateEmail:     app.JobSeekerProfile.Email,
		CandidatePhone:     app.JobSeekerProfile.Mobile,
		ResumeFileName:     app.ResumeFileName,
		HasResume:          app.ResumeFileName != "",
	}
}

func toApplicationResponses(apps []models.Application) []dtos.ApplicationResponse {
	out := make([]dtos.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationResponse(&apps[i]))
	}
	return out
}

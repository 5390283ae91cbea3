package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/models"
	"github.com/careerportal/career-portal-backend/internal/services"
)

func TestJobCreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	seedEmployer(t, env, "acme", "Acme Corp")

	inactive := false
	job := seedJob(t, env, "acme", &dtos.JobPostingRequest{
		JobTitle: "Backend Engineer",
		IsActive: &inactive, // ignored on create
	})

	if !job.IsActive {
		t.Error("new posting is not active")
	}
	posted := time.Time(job.DatePosted)
	if posted.Format("2006-01-02") != time.Now().Format("2006-01-02") {
		t.Errorf("date posted = %s, want today", posted.Format("2006-01-02"))
	}
}

func TestJobSearch(t *testing.T) {
	env := newTestEnv(t)
	seedEmployer(t, env, "acme", "Acme Corp")

	seedJob(t, env, "acme", &dtos.JobPostingRequest{
		JobTitle:        "Senior Go Developer",
		Description:     "Build backend services",
		RequiredSkills:  "Go, PostgreSQL",
		Location:        "Berlin",
		ExperienceLevel: "Senior",
	})
	seedJob(t, env, "acme", &dtos.JobPostingRequest{
		JobTitle:        "Data Analyst",
		Description:     "Dashboards and reports",
		RequiredSkills:  "SQL, Python",
		Location:        "Munich",
		ExperienceLevel: "Junior",
	})

	hidden := seedJob(t, env, "acme", &dtos.JobPostingRequest{
		JobTitle: "Go Intern",
		Location: "Berlin",
	})
	active := false
	if _, err := env.Jobs.Update(hidden.ID, "acme", &dtos.JobPostingRequest{
		JobTitle: "Go Intern",
		Location: "Berlin",
		IsActive: &active,
	}); err != nil {
		t.Fatalf("deactivate job: %v", err)
	}

	tests := []struct {
		name       string
		keyword    string
		location   string
		experience string
		wantTitles []string
	}{
		{"no filters returns active only", "", "", "", []string{"Senior Go Developer", "Data Analyst"}},
		{"keyword in title", "go developer", "", "", []string{"Senior Go Developer"}},
		{"keyword in skills", "python", "", "", []string{"Data Analyst"}},
		{"location substring", "", "berl", "", []string{"Senior Go Developer"}},
		{"experience exact", "", "", "Junior", []string{"Data Analyst"}},
		{"conjunctive", "go", "Munich", "", nil},
		{"inactive excluded", "intern", "", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := env.Jobs.Search(tt.keyword, tt.location, tt.experience)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(jobs) != len(tt.wantTitles) {
				t.Fatalf("got %d jobs, want %d", len(jobs), len(tt.wantTitles))
			}
			got := map[string]bool{}
			for _, j := range jobs {
				got[j.JobTitle] = true
			}
			for _, title := range tt.wantTitles {
				if !got[title] {
					t.Errorf("missing %q in results", title)
				}
			}
		})
	}
}

func TestJobUpdateOwnership(t *testing.T) {
	env := newTestEnv(t)
	seedEmployer(t, env, "acme", "Acme Corp")
	seedEmployer(t, env, "globex", "Globex Inc")

	job := seedJob(t, env, "acme", &dtos.JobPostingRequest{JobTitle: "Backend Engineer"})

	_, err := env.Jobs.Update(job.ID, "globex", &dtos.JobPostingRequest{JobTitle: "Hijacked"})
	if !errors.Is(err, services.ErrAccessDenied) {
		t.Fatalf("err = %v, want ErrAccessDenied", err)
	}

	// The posting exists, so a non-owner sees denial, not absence, and
	// the record is untouched.
	stored, err := env.Jobs.ByID(job.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if stored.JobTitle != "Backend Engineer" {
		t.Errorf("title = %q after denied update", stored.JobTitle)
	}

	updated, err := env.Jobs.Update(job.ID, "acme", &dtos.JobPostingRequest{JobTitle: "Platform Engineer"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.JobTitle != "Platform Engineer" {
		t.Errorf("title = %q, want Platform Engineer", updated.JobTitle)
	}
}

func TestJobUpdateMissing(t *testing.T) {
	env := newTestEnv(t)
	seedEmployer(t, env, "acme", "Acme Corp")

	_, err := env.Jobs.Update(999, "acme", &dtos.JobPostingRequest{JobTitle: "Ghost"})
	var nf *services.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestJobDeleteRemovesApplications(t *testing.T) {
	env := newTestEnv(t)
	seedEmployer(t, env, "acme", "Acme Corp")
	seedJobSeeker(t, env, "alice")

	job := seedJob(t, env, "acme", &dtos.JobPostingRequest{JobTitle: "Backend Engineer"})
	if _, err := env.Applications.Apply("alice", job.ID, nil); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := env.Jobs.Delete(job.ID, "globex"); err == nil {
		t.Fatal("delete by unknown user succeeded")
	}

	if err := env.Jobs.Delete(job.ID, "acme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := env.Jobs.ByID(job.ID); err == nil {
		t.Error("posting still present after delete")
	}
	var count int64
	if err := env.DB.Model(&models.Application{}).Where("job_posting_id = ?", job.ID).Count(&count).Error; err != nil {
		t.Fatalf("count applications: %v", err)
	}
	if count != 0 {
		t.Errorf("%d applications left after job delete", count)
	}
}

func TestListByEmployer(t *testing.T) {
	env := newTestEnv(t)
	seedEmployer(t, env, "acme", "Acme Corp")
	seedEmployer(t, env, "globex", "Globex Inc")

	seedJob(t, env, "acme", &dtos.JobPostingRequest{JobTitle: "Backend Engineer"})
	seedJob(t, env, "acme", &dtos.JobPostingRequest{JobTitle: "Frontend Engineer"})
	seedJob(t, env, "globex", &dtos.JobPostingRequest{JobTitle: "Analyst"})

	jobs, err := env.Jobs.ListByEmployer("acme")
	if err != nil {
		t.Fatalf("ListByEmployer: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("got %d jobs, want 2", len(jobs))
	}
}

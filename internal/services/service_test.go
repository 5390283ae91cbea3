package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/careerportal/career-portal-backend/internal/auth"
	"github.com/careerportal/career-portal-backend/internal/database"
	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/models"
	"github.com/careerportal/career-portal-backend/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	DB           *gorm.DB
	Files        *services.FileService
	Employers    *services.EmployerService
	JobSeekers   *services.JobSeekerService
	Auth         *services.AuthService
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

// newTestDB opens a named in-memory sqlite database so every connection
// from the pool sees the same data, isolated per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	files := services.NewFileService(db)
	employers := services.NewEmployerService(db)
	jobSeekers := services.NewJobSeekerService(db, files)

	return &testEnv{
		DB:           db,
		Files:        files,
		Employers:    employers,
		JobSeekers:   jobSeekers,
		Auth:         services.NewAuthService(db, issuer, employers, jobSeekers),
		Jobs:         services.NewJobService(db, employers),
		Applications: services.NewApplicationService(db, files, jobSeekers, employers),
	}
}

func seedEmployer(t *testing.T, env *testEnv, username, company string) {
	t.Helper()

	err := env.Auth.RegisterEmployer(&dtos.EmployerRegisterRequest{
		Username:    username,
		Email:       username + "@example.com",
		Password:    "s3cret",
		CompanyName: company,
		Industry:    "Technology",
	})
	if err != nil {
		t.Fatalf("register employer %s: %v", username, err)
	}
}

func seedJobSeeker(t *testing.T, env *testEnv, username string) {
	t.Helper()

	err := env.Auth.RegisterJobSeeker(&dtos.JobSeekerRegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "s3cret",
		Name:     "Test " + username,
		Mobile:   "5551234567",
	})
	if err != nil {
		t.Fatalf("register job seeker %s: %v", username, err)
	}
}

func seedJob(t *testing.T, env *testEnv, employerUsername string, req *dtos.JobPostingRequest) *models.JobPosting {
	t.Helper()

	job, err := env.Jobs.Create(employerUsername, req)
	if err != nil {
		t.Fatalf("create job for %s: %v", employerUsername, err)
	}
	return job
}

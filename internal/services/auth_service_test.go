package services_test

import (
	"errors"
	"testing"

	"github.com/careerportal/career-portal-backend/internal/dtos"
	"github.com/careerportal/career-portal-backend/internal/models"
	"github.com/careerportal/career-portal-backend/internal/services"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	seedJobSeeker(t, env, "alice")

	tests := []struct {
		name            string
		usernameOrEmail string
		password        string
		wantErr         bool
	}{
		{"by username", "alice", "s3cret", false},
		{"by email", "alice@example.com", "s3cret", false},
		{"wrong password", "alice", "nope", true},
		{"unknown user", "mallory", "s3cret", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := env.Auth.Login(&dtos.LoginRequest{
				UsernameOrEmail: tt.usernameOrEmail,
				Password:        tt.password,
			})
			if tt.wantErr {
				if !errors.Is(err, services.ErrUnauthorized) {
					t.Errorf("err = %v, want ErrUnauthorized", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if token == "" {
				t.Error("Login returned an empty token")
			}
		})
	}
}

func TestRegisterGeneric(t *testing.T) {
	env := newTestEnv(t)

	err := env.Auth.Register(&dtos.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret",
		Role:     "employer",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	var user models.User
	if err := env.DB.Where("username = ?", "bob").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Role != models.RoleEmployer {
		t.Errorf("role = %q, want %q", user.Role, models.RoleEmployer)
	}
	if user.Password == "s3cret" {
		t.Error("password stored in plain text")
	}

	// Generic employer registration seeds a placeholder profile.
	employer, err := env.Employers.ProfileByUsername("bob")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if employer.CompanyName != "Company Name - Please Update" {
		t.Errorf("company name = %q, want placeholder", employer.CompanyName)
	}
}

func TestRegisterGenericWithoutEmail(t *testing.T) {
	env := newTestEnv(t)

	// Accounts without an email must not collide on the unique index:
	// the column stores NULL, not "".
	for _, username := range []string{"walkin1", "walkin2"} {
		err := env.Auth.Register(&dtos.RegisterRequest{
			Username: username,
			Password: "s3cret",
			Role:     "jobseeker",
		})
		if err != nil {
			t.Fatalf("register %s: %v", username, err)
		}
	}

	var count int64
	if err := env.DB.Model(&models.User{}).Where("email IS NULL").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("%d users stored without email, want 2", count)
	}

	for _, username := range []string{"walkin1", "walkin2"} {
		if _, err := env.Auth.Login(&dtos.LoginRequest{
			UsernameOrEmail: username,
			Password:        "s3cret",
		}); err != nil {
			t.Errorf("login %s: %v", username, err)
		}
	}
}

func TestRegisterGenericJobSeeker(t *testing.T) {
	env := newTestEnv(t)

	err := env.Auth.Register(&dtos.RegisterRequest{
		Username: "eve",
		Email:    "eve@example.com",
		Password: "s3cret",
		Role:     "jobseeker",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	profile, err := env.JobSeekers.ProfileByUsername("eve")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Name != "eve" || profile.Email != "eve@example.com" {
		t.Errorf("profile = %+v", profile)
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	env := newTestEnv(t)

	err := env.Auth.Register(&dtos.RegisterRequest{
		Username: "carol",
		Password: "s3cret",
		Role:     "admin",
	})

	var br *services.BadRequestError
	if !errors.As(err, &br) {
		t.Fatalf("err = %v, want BadRequestError", err)
	}
	if br.Message != "Invalid role specified!" {
		t.Errorf("message = %q", br.Message)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	env := newTestEnv(t)
	seedJobSeeker(t, env, "alice")
	seedEmployer(t, env, "acme", "Acme Corp")

	tests := []struct {
		name    string
		run     func() error
		wantMsg string
	}{
		{
			name: "duplicate username",
			run: func() error {
				return env.Auth.RegisterJobSeeker(&dtos.JobSeekerRegisterRequest{
					Username: "alice",
					Email:    "other@example.com",
					Password: "s3cret",
					Name:     "Other Alice",
				})
			},
			wantMsg: "Username is already taken!",
		},
		{
			name: "duplicate email",
			run: func() error {
				return env.Auth.RegisterJobSeeker(&dtos.JobSeekerRegisterRequest{
					Username: "alice2",
					Email:    "alice@example.com",
					Password: "s3cret",
					Name:     "Alice Two",
				})
			},
			wantMsg: "Email is already registered!",
		},
		{
			name: "duplicate email via generic register",
			run: func() error {
				return env.Auth.Register(&dtos.RegisterRequest{
					Username: "alice3",
					Email:    "alice@example.com",
					Password: "s3cret",
					Role:     "jobseeker",
				})
			},
			wantMsg: "Email is already registered!",
		},
		{
			name: "duplicate company name",
			run: func() error {
				return env.Auth.RegisterEmployer(&dtos.EmployerRegisterRequest{
					Username:    "acme2",
					Email:       "acme2@example.com",
					Password:    "s3cret",
					CompanyName: "Acme Corp",
				})
			},
			wantMsg: "Company name is already registered!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			var br *services.BadRequestError
			if !errors.As(err, &br) {
				t.Fatalf("err = %v, want BadRequestError", err)
			}
			if br.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", br.Message, tt.wantMsg)
			}
		})
	}
}

func TestRegisterJobSeekerCreatesProfile(t *testing.T) {
	env := newTestEnv(t)

	err := env.Auth.RegisterJobSeeker(&dtos.JobSeekerRegisterRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "s3cret",
		Name:     "Dave",
		Status:   models.ExperienceFresher,
		Gender:   models.GenderMale,
		Dob:      "1999-04-12",
		Skills:   "Go, SQL",
	})
	if err != nil {
		t.Fatalf("RegisterJobSeeker: %v", err)
	}

	profile, err := env.JobSeekers.ProfileByUsername("dave")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Name != "Dave" || profile.Status != models.ExperienceFresher {
		t.Errorf("profile = %+v", profile)
	}
}

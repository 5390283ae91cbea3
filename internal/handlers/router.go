package handlers

import (
	"net/http"

	"github.com/careerportal/career-portal-backend/internal/auth"
	"github.com/careerportal/career-portal-backend/internal/config"
	"github.com/careerportal/career-portal-backend/internal/middleware"
	"github.com/careerportal/career-portal-backend/internal/models"
	"github.com/careerportal/career-portal-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires services and handlers over the given database and
// returns the configured engine. Tests call it with an in-memory
// database.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenDuration)

	fileService := services.NewFileService(db)
	employerService := services.NewEmployerService(db)
	jobSeekerService := services.NewJobSeekerService(db, fileService)
	authService := services.NewAuthService(db, issuer, employerService, jobSeekerService)
	jobService := services.NewJobService(db, employerService)
	applicationService := services.NewApplicationService(db, fileService, jobSeekerService, employerService)

	authHandler := NewAuthHandler(authService)
	jobHandler := NewJobHandler(jobService, applicationService)
	employerHandler := NewEmployerHandler(employerService)
	jobSeekerHandler := NewJobSeekerHandler(jobSeekerService)
	applicationHandler := NewApplicationHandler(applicationService)
	fileHandler := NewFileHandler(fileService)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public endpoints.
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/register/jobseeker", authHandler.RegisterJobSeeker)
		authGroup.POST("/register/employer", authHandler.RegisterEmployer)
	}

	files := r.Group("/api/files")
	{
		files.POST("/upload/resume", fileHandler.UploadResume)
		files.POST("/upload/photo", fileHandler.UploadPhoto)
	}

	uploads := r.Group("/uploads")
	{
		uploads.GET("/resumes/:id", fileHandler.Serve)
		uploads.GET("/photos/:id", fileHandler.Serve)
	}

	jobs := r.Group("/api/jobs")
	{
		jobs.GET("", jobHandler.Search)
		jobs.GET("/all", jobHandler.ListAll)

		employerJobs := jobs.Group("")
		employerJobs.Use(middleware.RequireAuth(issuer), middleware.RequireRole(models.RoleEmployer))
		{
			employerJobs.POST("", jobHandler.Create)
			employerJobs.GET("/employer", jobHandler.EmployerJobs)
			employerJobs.PUT("/:id", jobHandler.Update)
			employerJobs.DELETE("/:id", jobHandler.Delete)
		}

		// Registered after /all and /employer so those take precedence.
		jobs.GET("/:id", jobHandler.ByID)
	}

	r.GET("/api/employer/all", employerHandler.ListAll)
	employer := r.Group("/api/employer")
	employer.Use(middleware.RequireAuth(issuer), middleware.RequireRole(models.RoleEmployer))
	{
		employer.GET("/profile", employerHandler.Profile)
		employer.PUT("/profile", employerHandler.UpdateProfile)
		employer.POST("/create-profile", employerHandler.CreateProfile)
	}

	r.GET("/api/jobseekers/all", jobSeekerHandler.ListAll)
	jobSeeker := r.Group("/api/jobseeker")
	jobSeeker.Use(middleware.RequireAuth(issuer), middleware.RequireRole(models.RoleJobSeeker))
	{
		jobSeeker.GET("/profile", jobSeekerHandler.Profile)
		jobSeeker.PUT("/profile", jobSeekerHandler.UpdateProfile)
	}

	applications := r.Group("/api/applications")
	applications.Use(middleware.RequireAuth(issuer))
	{
		seeker := applications.Group("")
		seeker.Use(middleware.RequireRole(models.RoleJobSeeker))
		{
			seeker.POST("/:jobId", applicationHandler.Apply)
			seeker.GET("/my-history", applicationHandler.MyHistory)
		}

		employerApps := applications.Group("")
		employerApps.Use(middleware.RequireRole(models.RoleEmployer))
		{
			employerApps.GET("/job/:jobId", applicationHandler.ForJob)
			employerApps.PUT("/:id/status", applicationHandler.UpdateStatus)
			employerApps.GET("/:id/resume", applicationHandler.DownloadResume)
		}
	}

	return r
}

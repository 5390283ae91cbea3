package database

import (
	"github.com/careerportal/career-portal-backend/internal/logger"
	"github.com/careerportal/career-portal-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity. Shared with
// the test suites, which run it against an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.JobSeekerProfile{},
		&models.EducationDetail{},
		&models.JobPosting{},
		&models.Application{},
		&models.StoredFile{},
	)
}

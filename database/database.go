package database

import (
	config "github.com/earnkit/rewards_backend/configs"
	"github.com/earnkit/rewards_backend/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Info("database connected")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Referral{},
		&models.AllowedPackage{},
		&models.AttemptsConfig{},
		&models.CollaborationRecord{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	log.Info("database migration successful")
}

package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ancientastronautunearthed/fiber-app/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Monster{},
		&models.FoodLog{},
		&models.SymptomLog{},
		&models.SleepLog{},
		&models.SunExposureLog{},
		&models.SupplementLog{},
		&models.MedicationLog{},
		&models.ActivityLog{},
		&models.CommunityPost{},
		&models.PostReply{},
		&models.DailyRiddle{},
		&models.RiddleAnswer{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

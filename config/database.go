package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Nandu8821/Attendance-Project/models"
)

var DB *gorm.DB

func buildDSN() string {
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := GetEnvDefault("DB_PORT", "5432")
	name := GetEnvDefault("DB_NAME", "attendance")
	sslmode := GetEnvDefault("DB_SSLMODE", "require")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, sslmode)
}

// ConnectDB opens the Postgres connection and keeps the attendance table
// migrated. The DATABASE_URL variable wins over the discrete DB_* ones.
func ConnectDB() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = buildDSN()
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}

	if err := DB.AutoMigrate(&models.AttendanceRecord{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	log.Println("Successfully connected to db")
	return nil
}

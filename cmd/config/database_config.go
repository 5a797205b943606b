package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"topup-store/internal/utils"
)

func ConnectDB() (*gorm.DB, error) {
	dsn := utils.GetConfig("DATABASE_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}

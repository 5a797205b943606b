package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"topup-store/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PaymentMethod{}); err != nil {
		log.Fatalf("Error migrating payment method database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ContentPage{}); err != nil {
		log.Fatalf("Error migrating content page database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

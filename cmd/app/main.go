package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"topup-store/cmd/config"
	migration "topup-store/cmd/database/migrate"
	"topup-store/internal/utils"
	"topup-store/pkg/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	utils.LoadConfig()

	var st store.Store
	if utils.GetConfig("DATABASE_URL") != "" {
		db, err := config.ConnectDB()
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		pg := store.NewPostgresStore(db)
		if err := pg.InitializeDefaults(context.Background()); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
		st = pg
		log.Println("using postgres store")
	} else {
		st = store.NewMemoryStore()
		log.Println("DATABASE_URL not set, using in-memory store")
	}

	app, err := config.NewApp(st)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "5000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

package config

import (
	"os"
	"time"

	"topup-store/internal/api/handlers"
	"topup-store/internal/api/routes"
	"topup-store/internal/middleware"
	"topup-store/internal/utils"
	"topup-store/internal/utils/storage"
	"topup-store/pkg/content"
	"topup-store/pkg/jwt"
	"topup-store/pkg/order"
	"topup-store/pkg/product"
	"topup-store/pkg/store"
	"topup-store/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(st store.Store) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Khartoum",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(st, jwtService)
	productService := product.NewProductService(st, s3)
	orderService := order.NewOrderService(st)
	contentService := content.NewContentService(st)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	contentHandler := handlers.NewContentHandler(contentService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		ProductHandler: productHandler,
		OrderHandler:   orderHandler,
		ContentHandler: contentHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

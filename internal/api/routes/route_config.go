package routes

import (
	"github.com/gofiber/fiber/v2"

	"topup-store/internal/api/handlers"
	"topup-store/internal/middleware"
	"topup-store/pkg/jwt"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	ProductHandler handlers.ProductHandler
	OrderHandler   handlers.OrderHandler
	ContentHandler handlers.ContentHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())

	api := c.App.Group("/api")
	api.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"message": "pong"})
	})

	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.AdminOnly()

	api.Post("/register", c.UserHandler.Register)
	api.Post("/login", c.UserHandler.Login)

	users := api.Group("/users", auth)
	users.Get("", admin, c.UserHandler.GetAllUsers)
	users.Get("/:id", c.UserHandler.GetUser)
	users.Put("/:id", c.UserHandler.UpdateUser)
	users.Put("/:id/balance", admin, c.UserHandler.AdjustBalance)
	users.Delete("/:id", admin, c.UserHandler.DeleteUser)

	products := api.Group("/products")
	products.Get("", c.ProductHandler.GetAllProducts)
	products.Get("/:id", c.ProductHandler.GetProduct)
	products.Post("", auth, admin, c.ProductHandler.CreateProduct)
	products.Put("/:id", auth, admin, c.ProductHandler.UpdateProduct)
	products.Delete("/:id", auth, admin, c.ProductHandler.DeleteProduct)
	products.Post("/:id/image", auth, admin, c.ProductHandler.UploadProductImage)

	orders := api.Group("/orders", auth)
	orders.Post("", c.OrderHandler.CreateOrder)
	orders.Get("", admin, c.OrderHandler.GetAllOrders)
	// registered before /:id so "user" is not captured as an order id
	orders.Get("/user/:userId", c.OrderHandler.GetUserOrders)
	orders.Get("/:id", c.OrderHandler.GetOrder)
	orders.Patch("/:id/status", admin, c.OrderHandler.UpdateOrderStatus)

	paymentMethods := api.Group("/payment-methods")
	paymentMethods.Get("", c.ContentHandler.GetPaymentMethods)
	paymentMethods.Put("/:id", auth, admin, c.ContentHandler.UpdatePaymentMethod)

	contentPages := api.Group("/content")
	contentPages.Get("/:section", c.ContentHandler.GetContentPage)
	contentPages.Put("/:section", auth, admin, c.ContentHandler.UpdateContentPage)
}

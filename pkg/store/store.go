package store

import (
	"context"
	"errors"

	"topup-store/entities"
)

// ErrNotFound is the sentinel for an absent entity. Both backends
// return it; callers must never see a backend-specific absence error.
var ErrNotFound = errors.New("record not found")

// Store is the uniform CRUD contract over users, products, orders,
// payment methods and content pages. Two implementations exist: an
// ephemeral in-process store and a Postgres-backed one. The backend is
// chosen once at startup (DATABASE_URL present selects Postgres) and is
// not switchable at runtime.
type Store interface {
	// Users
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) error
	UpdateUser(ctx context.Context, user *entities.User) error
	UpdateUserBalance(ctx context.Context, id string, amount int) (*entities.User, error)
	GetAllUsers(ctx context.Context) ([]entities.User, error)
	DeleteUser(ctx context.Context, id string) error

	// Products
	GetProduct(ctx context.Context, id string) (*entities.Product, error)
	GetAllProducts(ctx context.Context) ([]entities.Product, error)
	CreateProduct(ctx context.Context, product *entities.Product) error
	UpdateProduct(ctx context.Context, product *entities.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// Orders
	CreateOrder(ctx context.Context, order *entities.Order) error
	GetOrder(ctx context.Context, id string) (*entities.Order, error)
	GetAllOrders(ctx context.Context) ([]entities.Order, error)
	GetUserOrders(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status string) (*entities.Order, error)

	// Payment methods
	GetPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id string) (*entities.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, method *entities.PaymentMethod) error

	// Content pages
	GetContentPage(ctx context.Context, section string) (*entities.ContentPage, error)
	UpsertContentPage(ctx context.Context, page *entities.ContentPage) error
}

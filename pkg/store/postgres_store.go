package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"topup-store/entities"
)

// PostgresStore is the durable backend. It reproduces the exact
// contract of the memory store; absence always surfaces as ErrNotFound.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// InitializeDefaults seeds the admin account, a small starter catalog,
// payment methods and content pages if the tables are empty. Safe to
// call on every startup.
func (s *PostgresStore) InitializeDefaults(ctx context.Context) error {
	var admin entities.User
	err := s.db.WithContext(ctx).Where("email = ?", defaultAdminEmail).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user := defaultAdminUser()
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return err
		}
		log.Println("default admin account created")
	} else if err != nil {
		return err
	}

	var productCount int64
	if err := s.db.WithContext(ctx).Model(&entities.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		starter := []struct {
			category string
			items    []seedProduct
			desc     string
		}{
			{entities.CategoryGames, seedGames[:2], "Top up %s quickly and safely"},
			{entities.CategoryCards, seedCards[:1], "Buy %s instantly"},
		}
		for _, group := range starter {
			for _, item := range group.items {
				product := entities.Product{
					ID:          uuid.New().String(),
					Name:        item.name,
					Icon:        item.icon,
					Price:       item.price,
					Description: fmt.Sprintf(group.desc, item.name),
					Category:    group.category,
					Packages:    item.packages,
				}
				if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
					return err
				}
			}
		}
		log.Println("default products created")
	}

	var methodCount int64
	if err := s.db.WithContext(ctx).Model(&entities.PaymentMethod{}).Count(&methodCount).Error; err != nil {
		return err
	}
	if methodCount == 0 {
		for _, method := range defaultPaymentMethods() {
			if err := s.db.WithContext(ctx).Create(&method).Error; err != nil {
				return err
			}
		}
	}

	var pageCount int64
	if err := s.db.WithContext(ctx).Model(&entities.ContentPage{}).Count(&pageCount).Error; err != nil {
		return err
	}
	if pageCount == 0 {
		for _, page := range defaultContentPages() {
			if err := s.db.WithContext(ctx).Create(&page).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *PostgresStore) UpdateUser(ctx context.Context, user *entities.User) error {
	result := s.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", user.ID).
		Select("*").Omit("id").Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateUserBalance is a read-then-write, not an atomic SQL increment;
// concurrent adjustments against the same user can lose an update.
func (s *PostgresStore) UpdateUserBalance(ctx context.Context, id string, amount int) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	newBalance := user.Balance + amount
	if err := s.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).
		Update("balance", newBalance).Error; err != nil {
		return nil, err
	}
	user.Balance = newBalance
	return user, nil
}

func (s *PostgresStore) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *PostgresStore) DeleteUser(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Products

func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (s *PostgresStore) GetAllProducts(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	if err := s.db.WithContext(ctx).Order("sort_order ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *PostgresStore) CreateProduct(ctx context.Context, product *entities.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Packages == nil {
		product.Packages = entities.PackageList{}
	}
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *PostgresStore) UpdateProduct(ctx context.Context, product *entities.Product) error {
	result := s.db.WithContext(ctx).Model(&entities.Product{}).Where("id = ?", product.ID).
		Select("*").Omit("id").Updates(product)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteProduct(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Orders

func (s *PostgresStore) CreateOrder(ctx context.Context, order *entities.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = entities.OrderStatusPending
	}
	order.CreatedAt = time.Now()
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *PostgresStore) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (s *PostgresStore) GetAllOrders(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *PostgresStore) GetUserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	var orders []entities.Order
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *PostgresStore) UpdateOrderStatus(ctx context.Context, id string, status string) (*entities.Order, error) {
	result := s.db.WithContext(ctx).Model(&entities.Order{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrder(ctx, id)
}

// Payment methods

func (s *PostgresStore) GetPaymentMethods(ctx context.Context) ([]entities.PaymentMethod, error) {
	var methods []entities.PaymentMethod
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (s *PostgresStore) GetPaymentMethod(ctx context.Context, id string) (*entities.PaymentMethod, error) {
	var method entities.PaymentMethod
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&method).Error; err != nil {
		return nil, notFound(err)
	}
	return &method, nil
}

func (s *PostgresStore) UpdatePaymentMethod(ctx context.Context, method *entities.PaymentMethod) error {
	result := s.db.WithContext(ctx).Model(&entities.PaymentMethod{}).Where("id = ?", method.ID).
		Select("*").Omit("id").Updates(method)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Content pages

func (s *PostgresStore) GetContentPage(ctx context.Context, section string) (*entities.ContentPage, error) {
	var page entities.ContentPage
	if err := s.db.WithContext(ctx).Where("section = ?", section).First(&page).Error; err != nil {
		return nil, notFound(err)
	}
	return &page, nil
}

func (s *PostgresStore) UpsertContentPage(ctx context.Context, page *entities.ContentPage) error {
	existing, err := s.GetContentPage(ctx, page.Section)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if existing != nil {
		page.ID = existing.ID
		return s.db.WithContext(ctx).Model(&entities.ContentPage{}).Where("id = ?", page.ID).
			Update("data", page.Data).Error
	}
	if page.ID == "" {
		page.ID = "content-" + page.Section
	}
	return s.db.WithContext(ctx).Create(page).Error
}

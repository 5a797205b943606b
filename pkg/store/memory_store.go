package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"topup-store/entities"
)

// memoryStore keeps everything in process memory. It is seeded with the
// default admin account and a sample catalog, and loses all data on
// restart. The mutex spans whole operations; Go maps are not safe for
// concurrent mutation.
type memoryStore struct {
	mu             sync.RWMutex
	users          map[string]entities.User
	products       map[string]entities.Product
	orders         map[string]entities.Order
	paymentMethods map[string]entities.PaymentMethod
	contentPages   map[string]entities.ContentPage

	// insertion sequence per id, used to break sort ties
	productSeq map[string]int
	orderSeq   map[string]int
	seq        int
}

func NewMemoryStore() Store {
	m := &memoryStore{
		users:          make(map[string]entities.User),
		products:       make(map[string]entities.Product),
		orders:         make(map[string]entities.Order),
		paymentMethods: make(map[string]entities.PaymentMethod),
		contentPages:   make(map[string]entities.ContentPage),
		productSeq:     make(map[string]int),
		orderSeq:       make(map[string]int),
	}

	admin := defaultAdminUser()
	m.users[admin.ID] = admin

	seedCategory := func(category string, items []seedProduct, idPrefix, descFormat string) {
		for idx, item := range items {
			id := fmt.Sprintf("%s-%d", idPrefix, idx)
			m.seq++
			m.productSeq[id] = m.seq
			m.products[id] = entities.Product{
				ID:          id,
				Name:        item.name,
				Icon:        item.icon,
				Price:       item.price,
				Description: fmt.Sprintf(descFormat, item.name),
				Category:    category,
				Packages:    item.packages,
				SortOrder:   idx,
			}
		}
	}
	seedCategory(entities.CategoryGames, seedGames, "game", "Top up %s quickly and safely")
	seedCategory(entities.CategoryCards, seedCards, "card", "Buy %s instantly")
	seedCategory(entities.CategorySpecial, seedSpecial, "special", "%s - exclusive and limited")

	for _, pm := range defaultPaymentMethods() {
		m.paymentMethods[pm.ID] = pm
	}
	for _, page := range defaultContentPages() {
		m.contentPages[page.Section] = page
	}

	return m
}

// Users

func (m *memoryStore) GetUser(_ context.Context, id string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *memoryStore) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryStore) CreateUser(_ context.Context, user *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memoryStore) UpdateUser(_ context.Context, user *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return ErrNotFound
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memoryStore) UpdateUserBalance(_ context.Context, id string, amount int) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user.Balance += amount
	m.users[id] = user
	return &user, nil
}

func (m *memoryStore) GetAllUsers(_ context.Context) ([]entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]entities.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func (m *memoryStore) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// Products

func (m *memoryStore) GetProduct(_ context.Context, id string) (*entities.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (m *memoryStore) GetAllProducts(_ context.Context) ([]entities.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	products := make([]entities.Product, 0, len(m.products))
	for _, product := range m.products {
		products = append(products, product)
	}
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].SortOrder != products[j].SortOrder {
			return products[i].SortOrder < products[j].SortOrder
		}
		return m.productSeq[products[i].ID] < m.productSeq[products[j].ID]
	})
	return products, nil
}

func (m *memoryStore) CreateProduct(_ context.Context, product *entities.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Packages == nil {
		product.Packages = entities.PackageList{}
	}
	m.seq++
	m.productSeq[product.ID] = m.seq
	m.products[product.ID] = *product
	return nil
}

func (m *memoryStore) UpdateProduct(_ context.Context, product *entities.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return ErrNotFound
	}
	m.products[product.ID] = *product
	return nil
}

func (m *memoryStore) DeleteProduct(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// Orders

func (m *memoryStore) CreateOrder(_ context.Context, order *entities.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = entities.OrderStatusPending
	}
	order.CreatedAt = time.Now()
	m.seq++
	m.orderSeq[order.ID] = m.seq
	m.orders[order.ID] = *order
	return nil
}

func (m *memoryStore) GetOrder(_ context.Context, id string) (*entities.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (m *memoryStore) GetAllOrders(_ context.Context) ([]entities.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	orders := make([]entities.Order, 0, len(m.orders))
	for _, order := range m.orders {
		orders = append(orders, order)
	}
	m.sortOrdersNewestFirst(orders)
	return orders, nil
}

func (m *memoryStore) GetUserOrders(_ context.Context, userID string) ([]entities.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	orders := make([]entities.Order, 0)
	for _, order := range m.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	m.sortOrdersNewestFirst(orders)
	return orders, nil
}

// caller must hold at least the read lock
func (m *memoryStore) sortOrdersNewestFirst(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return m.orderSeq[orders[i].ID] > m.orderSeq[orders[j].ID]
	})
}

func (m *memoryStore) UpdateOrderStatus(_ context.Context, id string, status string) (*entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	order.Status = status
	m.orders[id] = order
	return &order, nil
}

// Payment methods

func (m *memoryStore) GetPaymentMethods(_ context.Context) ([]entities.PaymentMethod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	methods := make([]entities.PaymentMethod, 0, len(m.paymentMethods))
	for _, method := range m.paymentMethods {
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].ID < methods[j].ID })
	return methods, nil
}

func (m *memoryStore) GetPaymentMethod(_ context.Context, id string) (*entities.PaymentMethod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	method, ok := m.paymentMethods[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &method, nil
}

func (m *memoryStore) UpdatePaymentMethod(_ context.Context, method *entities.PaymentMethod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.paymentMethods[method.ID]; !ok {
		return ErrNotFound
	}
	m.paymentMethods[method.ID] = *method
	return nil
}

// Content pages

func (m *memoryStore) GetContentPage(_ context.Context, section string) (*entities.ContentPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	page, ok := m.contentPages[section]
	if !ok {
		return nil, ErrNotFound
	}
	return &page, nil
}

func (m *memoryStore) UpsertContentPage(_ context.Context, page *entities.ContentPage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if page.ID == "" {
		page.ID = "content-" + page.Section
	}
	m.contentPages[page.Section] = *page
	return nil
}

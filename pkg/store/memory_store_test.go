package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"topup-store/entities"
)

func TestMemoryStoreSeedData(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	admin, err := st.GetUserByEmail(ctx, "admin@topupstore.com")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", admin.ID)
	assert.Equal(t, entities.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	products, err := st.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 20)

	methods, err := st.GetPaymentMethods(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 4)
	assert.Equal(t, "bank_khartoum", methods[0].ID)

	for _, section := range []string{"home", "contact", "agents"} {
		page, err := st.GetContentPage(ctx, section)
		require.NoError(t, err)
		assert.Equal(t, "content-"+section, page.ID)
	}
}

func TestMemoryStoreProductOrdering(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	products, err := st.GetAllProducts(ctx)
	require.NoError(t, err)

	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].SortOrder, products[i].SortOrder)
	}

	// equal sort order resolves by insertion order: games were seeded
	// before cards and special items
	assert.Equal(t, "Free Fire", products[0].Name)
	assert.Equal(t, "Netflix Gift Card", products[1].Name)
	assert.Equal(t, "Account Boost - Free Fire", products[2].Name)

	// a new product with the same sort order as an existing one lands
	// after it
	late := &entities.Product{Name: "Valorant", Price: 60, Category: entities.CategoryGames, SortOrder: 0}
	require.NoError(t, st.CreateProduct(ctx, late))

	products, err = st.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Valorant", products[3].Name)
}

func TestMemoryStoreProductCRUD(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	product := &entities.Product{
		Name:     "Steam Wallet",
		Price:    75,
		Category: entities.CategoryCards,
		Packages: entities.PackageList{{Name: "20 USD", Price: 75}},
	}
	require.NoError(t, st.CreateProduct(ctx, product))
	require.NotEmpty(t, product.ID)

	got, err := st.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Steam Wallet", got.Name)
	require.Len(t, got.Packages, 1)
	assert.Equal(t, "20 USD", got.Packages[0].Name)

	got.Price = 80
	require.NoError(t, st.UpdateProduct(ctx, got))
	updated, err := st.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, updated.Price)

	require.NoError(t, st.DeleteProduct(ctx, product.ID))
	_, err = st.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, st.DeleteProduct(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, st.UpdateProduct(ctx, &entities.Product{ID: "missing"}), ErrNotFound)
}

func TestMemoryStoreBalance(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	user := &entities.User{Username: "amir", Email: "amir@example.com", Password: "x"}
	require.NoError(t, st.CreateUser(ctx, user))
	assert.Equal(t, entities.RoleUser, user.Role)

	updated, err := st.UpdateUserBalance(ctx, user.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Balance)

	updated, err = st.UpdateUserBalance(ctx, user.ID, -100)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Balance)

	// no floor: the balance can go negative
	updated, err = st.UpdateUserBalance(ctx, user.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, updated.Balance)

	_, err = st.UpdateUserBalance(ctx, "missing", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreOrders(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	first := &entities.Order{UserID: "u1", ProductID: "game-0", ProductName: "Free Fire", Price: 50}
	second := &entities.Order{UserID: "u2", ProductID: "game-1", ProductName: "PUBG Mobile", Price: 40}
	third := &entities.Order{UserID: "u1", ProductID: "card-0", ProductName: "Netflix Gift Card", Price: 100}
	for _, o := range []*entities.Order{first, second, third} {
		require.NoError(t, st.CreateOrder(ctx, o))
		assert.Equal(t, entities.OrderStatusPending, o.Status)
		assert.False(t, o.CreatedAt.IsZero())
	}

	all, err := st.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	mine, err := st.GetUserOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, third.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	updated, err := st.UpdateOrderStatus(ctx, first.ID, entities.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCompleted, updated.Status)

	got, err := st.GetOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCompleted, got.Status)

	_, err = st.UpdateOrderStatus(ctx, "missing", entities.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreContentPages(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	page, err := st.GetContentPage(ctx, "home")
	require.NoError(t, err)

	page.Data = `{"title":"New Title"}`
	require.NoError(t, st.UpsertContentPage(ctx, page))

	got, err := st.GetContentPage(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"New Title"}`, got.Data)

	// upsert creates sections that did not exist
	require.NoError(t, st.UpsertContentPage(ctx, &entities.ContentPage{Section: "faq", Data: `{"items":[]}`}))
	created, err := st.GetContentPage(ctx, "faq")
	require.NoError(t, err)
	assert.Equal(t, "content-faq", created.ID)

	_, err = st.GetContentPage(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUsers(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	user := &entities.User{Username: "sara", Email: "sara@example.com", Password: "x"}
	require.NoError(t, st.CreateUser(ctx, user))

	byEmail, err := st.GetUserByEmail(ctx, "sara@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	all, err := st.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2) // seeded admin plus sara

	require.NoError(t, st.DeleteUser(ctx, user.ID))
	_, err = st.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

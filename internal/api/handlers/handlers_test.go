package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topup-store/cmd/config"
	"topup-store/entities"
	"topup-store/pkg/store"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Setenv("JWT_SECRET", "test-secret")
	app, err := config.NewApp(store.NewMemoryStore())
	require.NoError(t, err)
	return app
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res.StatusCode, env
}

func login(t *testing.T, app *fiber.App, email, password string) (string, entities.User) {
	code, env := request(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, code, "login failed: %s", env.Message)

	var res struct {
		Token string        `json:"token"`
		User  entities.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotEmpty(t, res.Token)
	return res.Token, res.User
}

func registerUser(t *testing.T, app *fiber.App, username, email, password string) entities.User {
	code, env := request(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, code, "register failed: %s", env.Message)

	var created entities.User
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created
}

func TestRegisterAndLoginFlow(t *testing.T) {
	app := setupApp(t)

	created := registerUser(t, app, "sara", "sara@example.com", "secret123")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user", created.Role)

	// duplicate email is rejected
	code, env := request(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"username": "sara2",
		"email":    "sara@example.com",
		"password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "email already exists", env.Error)

	token, user := login(t, app, "sara@example.com", "secret123")
	assert.Equal(t, created.ID, user.ID)

	// wrong password
	code, _ = request(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"email":    "sara@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// a user can read their own profile but not the user list
	code, _ = request(t, app, http.MethodGet, "/api/users/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = request(t, app, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = request(t, app, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	adminToken, _ := login(t, app, "admin@topupstore.com", "admin123")
	code, _ = request(t, app, http.MethodGet, "/api/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRegisterIgnoresRoleAndBalance(t *testing.T) {
	app := setupApp(t)

	// role and balance in the registration payload must not be honored
	code, env := request(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"username": "mallory",
		"email":    "mallory@example.com",
		"password": "secret123",
		"role":     "admin",
		"balance":  1000000,
	})
	require.Equal(t, http.StatusOK, code)

	var created entities.User
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "user", created.Role)
	assert.Equal(t, 0, created.Balance)

	token, user := login(t, app, "mallory@example.com", "secret123")
	assert.Equal(t, "user", user.Role)
	assert.Equal(t, 0, user.Balance)

	// the issued token carries no admin rights
	code, _ = request(t, app, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = request(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"name": "x", "price": 1, "category": "games",
	})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestUpdateUserCannotTakeExistingEmail(t *testing.T) {
	app := setupApp(t)

	registerUser(t, app, "sara", "sara@example.com", "secret123")
	amir := registerUser(t, app, "amir", "amir@example.com", "secret123")
	amirToken, _ := login(t, app, "amir@example.com", "secret123")

	code, _ := request(t, app, http.MethodPut, "/api/users/"+amir.ID, amirToken, fiber.Map{"email": "sara@example.com"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env := request(t, app, http.MethodPut, "/api/users/"+amir.ID, amirToken, fiber.Map{"fullName": "Amir K."})
	require.Equal(t, http.StatusOK, code)
	var updated entities.User
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "amir@example.com", updated.Email)
}

func TestProductEndpoints(t *testing.T) {
	app := setupApp(t)

	code, env := request(t, app, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, code)

	var products []entities.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Len(t, products, 20)
	assert.Equal(t, "Free Fire", products[0].Name)

	code, _ = request(t, app, http.MethodGet, "/api/products/game-0", "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = request(t, app, http.MethodGet, "/api/products/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	newProduct := fiber.Map{
		"name":     "Valorant",
		"price":    60,
		"category": "games",
		"packages": []fiber.Map{{"name": "475 VP", "price": 60}},
	}

	// catalog writes require an admin token
	code, _ = request(t, app, http.MethodPost, "/api/products", "", newProduct)
	assert.Equal(t, http.StatusUnauthorized, code)

	registerUser(t, app, "sara", "sara@example.com", "secret123")
	userToken, _ := login(t, app, "sara@example.com", "secret123")
	code, _ = request(t, app, http.MethodPost, "/api/products", userToken, newProduct)
	assert.Equal(t, http.StatusForbidden, code)

	adminToken, _ := login(t, app, "admin@topupstore.com", "admin123")
	code, env = request(t, app, http.MethodPost, "/api/products", adminToken, newProduct)
	require.Equal(t, http.StatusCreated, code)

	var created entities.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)

	code, env = request(t, app, http.MethodPut, "/api/products/"+created.ID, adminToken, fiber.Map{"price": 65})
	require.Equal(t, http.StatusOK, code)
	var updated entities.Product
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 65, updated.Price)
	assert.Equal(t, "Valorant", updated.Name)

	code, _ = request(t, app, http.MethodDelete, "/api/products/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = request(t, app, http.MethodGet, "/api/products/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUploadProductImageRejectsNonImage(t *testing.T) {
	app := setupApp(t)
	adminToken, _ := login(t, app, "admin@topupstore.com", "admin123")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="notes.txt"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("not an image"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/products/game-0/image", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestOrderFlow(t *testing.T) {
	app := setupApp(t)

	buyer := registerUser(t, app, "sara", "sara@example.com", "secret123")
	buyerToken, _ := login(t, app, "sara@example.com", "secret123")
	adminToken, admin := login(t, app, "admin@topupstore.com", "admin123")

	orderBody := func() fiber.Map {
		return fiber.Map{
			"userId":        buyer.ID,
			"productId":     "game-0",
			"productName":   "Free Fire",
			"price":         50,
			"paymentMethod": "bank_khartoum",
			"userPhone":     "0912345678",
			"userGameId":    "FF-1234",
		}
	}

	// missing required field
	incomplete := orderBody()
	delete(incomplete, "userPhone")
	code, _ := request(t, app, http.MethodPost, "/api/orders", buyerToken, incomplete)
	assert.Equal(t, http.StatusBadRequest, code)

	// a buyer cannot place an order under someone else's account
	spoofed := orderBody()
	spoofed["userId"] = admin.ID
	code, env := request(t, app, http.MethodPost, "/api/orders", buyerToken, spoofed)
	require.Equal(t, http.StatusCreated, code)

	var created entities.Order
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, buyer.ID, created.UserID)
	assert.Equal(t, "pending", created.Status)

	// order listing is admin only
	code, _ = request(t, app, http.MethodGet, "/api/orders", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = request(t, app, http.MethodGet, "/api/orders", adminToken, nil)
	assert.Equal(t, http.StatusOK, code)

	// owners and admins can read a single order
	code, _ = request(t, app, http.MethodGet, "/api/orders/"+created.ID, buyerToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = request(t, app, http.MethodGet, fmt.Sprintf("/api/orders/user/%s", buyer.ID), buyerToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = request(t, app, http.MethodGet, fmt.Sprintf("/api/orders/user/%s", admin.ID), buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// fulfilment is admin only
	code, _ = request(t, app, http.MethodPatch, "/api/orders/"+created.ID+"/status", buyerToken, fiber.Map{"status": "completed"})
	assert.Equal(t, http.StatusForbidden, code)

	code, env = request(t, app, http.MethodPatch, "/api/orders/"+created.ID+"/status", adminToken, fiber.Map{"status": "completed"})
	require.Equal(t, http.StatusOK, code)
	var completed entities.Order
	require.NoError(t, json.Unmarshal(env.Data, &completed))
	assert.Equal(t, "completed", completed.Status)

	code, _ = request(t, app, http.MethodPatch, "/api/orders/"+created.ID+"/status", adminToken, fiber.Map{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = request(t, app, http.MethodPatch, "/api/orders/missing/status", adminToken, fiber.Map{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBalanceEndpoint(t *testing.T) {
	app := setupApp(t)

	user := registerUser(t, app, "sara", "sara@example.com", "secret123")
	userToken, _ := login(t, app, "sara@example.com", "secret123")
	adminToken, _ := login(t, app, "admin@topupstore.com", "admin123")

	code, _ := request(t, app, http.MethodPut, "/api/users/"+user.ID+"/balance", userToken, fiber.Map{"amount": 500})
	assert.Equal(t, http.StatusForbidden, code)

	code, env := request(t, app, http.MethodPut, "/api/users/"+user.ID+"/balance", adminToken, fiber.Map{"amount": 500})
	require.Equal(t, http.StatusOK, code)
	var updated entities.User
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 500, updated.Balance)

	code, env = request(t, app, http.MethodPut, "/api/users/"+user.ID+"/balance", adminToken, fiber.Map{"amount": -600})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, -100, updated.Balance)

	// an explicit zero delta is valid and leaves the balance alone
	code, env = request(t, app, http.MethodPut, "/api/users/"+user.ID+"/balance", adminToken, fiber.Map{"amount": 0})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, -100, updated.Balance)

	// a missing amount is not
	code, _ = request(t, app, http.MethodPut, "/api/users/"+user.ID+"/balance", adminToken, fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestContentEndpoints(t *testing.T) {
	app := setupApp(t)

	code, env := request(t, app, http.MethodGet, "/api/payment-methods", "", nil)
	require.Equal(t, http.StatusOK, code)
	var methods []entities.PaymentMethod
	require.NoError(t, json.Unmarshal(env.Data, &methods))
	assert.Len(t, methods, 4)

	code, _ = request(t, app, http.MethodGet, "/api/content/home", "", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = request(t, app, http.MethodGet, "/api/content/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	adminToken, _ := login(t, app, "admin@topupstore.com", "admin123")

	code, _ = request(t, app, http.MethodPut, "/api/payment-methods/bank_khartoum", "", fiber.Map{"name": "BoK"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env = request(t, app, http.MethodPut, "/api/payment-methods/bank_khartoum", adminToken, fiber.Map{"name": "BoK", "account": "111222333"})
	require.Equal(t, http.StatusOK, code)
	var method entities.PaymentMethod
	require.NoError(t, json.Unmarshal(env.Data, &method))
	assert.Equal(t, "BoK", method.Name)
	assert.Equal(t, "111222333", method.Account)

	code, _ = request(t, app, http.MethodPut, "/api/payment-methods/missing", adminToken, fiber.Map{"name": "x"})
	assert.Equal(t, http.StatusNotFound, code)

	code, env = request(t, app, http.MethodPut, "/api/content/home", adminToken, fiber.Map{"data": `{"title":"New"}`})
	require.Equal(t, http.StatusOK, code)
	var page entities.ContentPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, `{"title":"New"}`, page.Data)
}

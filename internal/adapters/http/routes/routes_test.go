package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"luxpackers-admin/internal/adapters/persistence/models"
	"luxpackers-admin/internal/config"
	"luxpackers-admin/internal/pkg/password"
	"luxpackers-admin/internal/pkg/session"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *session.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))

	hash, err := password.Hash("hunter2")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.EmployeeAccess{
		Username:     "agent1",
		PasswordHash: hash,
		Role:         "agent",
	}).Error)

	cfg := &config.Config{
		AppMode: "dev",
		Port:    "3000",
		JWT:     config.JWTConfig{Secret: "test-secret", AccessTokenMins: 15},
		Cookie:  config.CookieConfig{SameSite: "lax"},
		Session: config.SessionConfig{IdleTTLDays: 7},
	}
	config.AppConfig = cfg

	store := session.NewStore(session.NewGormPersister(db))

	app := fiber.New()
	Setup(app, db, store, cfg)

	return app, db, store
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": "agent1", "password": "hunter2"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)
	return envelope.Data.AccessToken
}

func authedRequest(token, method, target string, body []byte) *http.Request {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, _ := http.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	app, _, _ := newTestApp(t)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "/login")
}

func TestLoginWrongPassword(t *testing.T) {
	app, _, _ := newTestApp(t)

	body, _ := json.Marshal(map[string]string{"username": "agent1", "password": "wrong"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Incorrect password")
}

func TestLoginThenAccessProtectedRoute(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app)

	resp, err := app.Test(authedRequest(token, http.MethodGet, "/api/v1/customers", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutInvalidatesOutstandingTokens(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The token is still unexpired, but the session is gone: full reset.
	resp, err = app.Test(authedRequest(token, http.MethodGet, "/api/v1/customers", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginWhileAuthenticatedRedirectsHome(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := login(t, app)

	// A second login attempt from an authenticated client, token in the
	// Authorization header rather than the cookie.
	body, _ := json.Marshal(map[string]string{"username": "agent1", "password": "hunter2"})
	resp, err := app.Test(authedRequest(token, http.MethodPost, "/api/v1/auth/login", body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Already logged in")
	assert.Contains(t, string(raw), `"redirect":"/"`)
}

func TestSaveEditUnderOtherRowDoesNotCommit(t *testing.T) {
	app, db, _ := newTestApp(t)
	token := login(t, app)

	require.NoError(t, db.Create(&models.Customer{Name: "One", Email: "one@example.com", Phone: "1"}).Error)
	require.NoError(t, db.Create(&models.Customer{Name: "Two", Email: "two@example.com", Phone: "2"}).Error)

	resp, err := app.Test(authedRequest(token, http.MethodPost, "/api/v1/customers/1/edit", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	patch, _ := json.Marshal(map[string]interface{}{"name": "Renamed"})
	resp, err = app.Test(authedRequest(token, http.MethodPut, "/api/v1/customers/1/edit", patch))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Save posted under the other row's URL is rejected.
	resp, err = app.Test(authedRequest(token, http.MethodPost, "/api/v1/customers/2/edit/save", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var one models.Customer
	require.NoError(t, db.First(&one, 1).Error)
	assert.Equal(t, "One", one.Name)

	// The matching URL still commits the open edit.
	resp, err = app.Test(authedRequest(token, http.MethodPost, "/api/v1/customers/1/edit/save", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&one, 1).Error)
	assert.Equal(t, "Renamed", one.Name)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	app, db, _ := newTestApp(t)
	token := login(t, app)

	body, _ := json.Marshal(map[string]interface{}{
		"customer_id":  1,
		"package_code": "",
		"booking_date": "2024-01-01",
		"amount_paid":  5000,
	})
	resp, err := app.Test(authedRequest(token, http.MethodPost, "/api/v1/bookings", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	app, db, _ := newTestApp(t)
	token := login(t, app)

	require.NoError(t, db.Create(&models.Customer{Name: "X", Email: "x@example.com", Phone: "1"}).Error)

	resp, err := app.Test(authedRequest(token, http.MethodDelete, "/api/v1/customers/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)

	resp, err = app.Test(authedRequest(token, http.MethodDelete, "/api/v1/customers/1?confirm=true", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	db.Model(&models.Customer{}).Count(&count)
	assert.Zero(t, count)
}

func TestNestedDetailRoutesFilterByParent(t *testing.T) {
	app, db, _ := newTestApp(t)
	token := login(t, app)

	require.NoError(t, db.Create(&models.Flight{BookingID: 1, FlightDate: "2024-03-01", FlightNo: "SQ 501"}).Error)
	require.NoError(t, db.Create(&models.Flight{BookingID: 2, FlightDate: "2024-03-02", FlightNo: "AF 217"}).Error)

	resp, err := app.Test(authedRequest(token, http.MethodGet, "/api/v1/bookings/1/flights", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "SQ 501")
	assert.NotContains(t, string(raw), "AF 217")
}

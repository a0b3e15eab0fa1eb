package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront-app/approval"
	"storefront-app/db"
	"storefront-app/models"
	"storefront-app/routes"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(
		&models.RegistrationRequest{},
		&models.User{},
		&models.AdminGrant{},
		&models.Role{},
		&models.Permission{},
		&models.UserRole{},
	))
	db.DB = database

	app := fiber.New()
	routes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRegisterCreatesPendingRequest(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"name":     "A",
		"email":    "a@x.com",
		"discord":  "@a",
		"password": "hunter22",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var request models.RegistrationRequest
	require.NoError(t, db.DB.Where("email = ?", "a@x.com").First(&request).Error)
	assert.Equal(t, models.StatusPending, request.Status)
}

func TestRegisterDuplicateDiscordConflicts(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"name":     "A",
		"email":    "a@x.com",
		"discord":  "@a",
		"password": "hunter22",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/register", fiber.Map{
		"name":     "B",
		"email":    "b@x.com",
		"discord":  "@a",
		"password": "hunter22",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	db.DB.Model(&models.RegistrationRequest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLoginOnlyAfterApproval(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"name":     "A",
		"email":    "a@x.com",
		"discord":  "@a",
		"password": "hunter22",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	credentials := fiber.Map{"email": "a@x.com", "password": "hunter22"}

	// Pending accounts cannot log in.
	resp = postJSON(t, app, "/auth/login", credentials)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var request models.RegistrationRequest
	require.NoError(t, db.DB.Where("email = ?", "a@x.com").First(&request).Error)
	_, err := approval.Approve(db.DB, request.ID)
	require.NoError(t, err)

	resp = postJSON(t, app, "/auth/login", credentials)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	request, err := approval.Submit(db.DB, approval.SubmitInput{
		Name:     "A",
		Email:    "a@x.com",
		Discord:  "@a",
		Password: "hunter22",
	})
	require.NoError(t, err)
	_, err = approval.Approve(db.DB, request.ID)
	require.NoError(t, err)

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "a@x.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

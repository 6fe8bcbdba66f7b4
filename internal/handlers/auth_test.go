package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/hash"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/service/token"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Product{},
		&models.Slide{},
		&models.Banner{},
		&models.Order{},
	))
	return db
}

func newAuthHandler(t *testing.T) (*AuthHandler, *gorm.DB) {
	t.Helper()
	db := initTestDB(t)
	tokens := &token.TokenService{
		DB:            db,
		JWTSecret:     []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
	return &AuthHandler{DB: db, Tokens: tokens}, db
}

func jsonRequest(t *testing.T, method, path string, payload any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}

func TestRegister(t *testing.T) {
	h, db := newAuthHandler(t)

	payload := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"phone":    "0900000001",
		"password": "password",
	}
	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/register", payload)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataField(t, rec)
	require.NotEmpty(t, data["token"])
	require.NotEmpty(t, data["refresh_token"])

	user := data["user"].(map[string]any)
	require.Equal(t, "user", user["role"])
	require.NotContains(t, user, "password_hash")

	var stored models.User
	require.NoError(t, db.Where("email = ?", "test@example.com").First(&stored).Error)
	require.NotEqual(t, "password", stored.PasswordHash)

	// Same email again is rejected.
	c2, _ := jsonRequest(t, http.MethodPost, "/api/auth/register", payload)
	requireHTTPError(t, h.Register(c2), http.StatusBadRequest)
}

func TestRegisterMissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, _ := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{"name": "No Email"})
	requireHTTPError(t, h.Register(c), http.StatusBadRequest)
}

func TestLogin(t *testing.T) {
	h, db := newAuthHandler(t)

	hashed, err := hash.HashPassword("password")
	require.NoError(t, err)
	db.Create(&models.User{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: hashed,
		Role:         models.RoleUser,
	})

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "password",
	})
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataField(t, rec)
	require.NotEmpty(t, data["token"])
	require.NotEmpty(t, data["refresh_token"])

	c2, _ := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "test@example.com",
		"password": "wrong",
	})
	requireHTTPError(t, h.Login(c2), http.StatusUnauthorized)

	c3, _ := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password",
	})
	requireHTTPError(t, h.Login(c3), http.StatusUnauthorized)
}

func TestMe(t *testing.T) {
	h, db := newAuthHandler(t)

	user := models.User{Name: "Test User", Email: "test@example.com", Role: models.RoleUser}
	db.Create(&user)

	c, rec := jsonRequest(t, http.MethodGet, "/api/auth/me", nil)
	c.Set("userID", user.ID)
	require.NoError(t, h.Me(c))

	data := dataField(t, rec)
	got := data["user"].(map[string]any)
	require.Equal(t, "test@example.com", got["email"])

	// Stale token pointing at a deleted account.
	c2, _ := jsonRequest(t, http.MethodGet, "/api/auth/me", nil)
	c2.Set("userID", uint(9999))
	requireHTTPError(t, h.Me(c2), http.StatusUnauthorized)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, _ := jsonRequest(t, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": "ghost@example.com",
	})
	requireHTTPError(t, h.ForgotPassword(c), http.StatusNotFound)
}

func TestResetPasswordRoundTrip(t *testing.T) {
	h, db := newAuthHandler(t)

	hashed, err := hash.HashPassword("old-password")
	require.NoError(t, err)
	user := models.User{Email: "test@example.com", PasswordHash: hashed, Role: models.RoleUser}
	db.Create(&user)

	reset, err := h.Tokens.SignResetToken(user.ID)
	require.NoError(t, err)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"token":    reset,
		"password": "new-password",
	})
	require.NoError(t, h.ResetPassword(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	require.True(t, hash.CheckPassword(updated.PasswordHash, "new-password"))

	// A garbage token is rejected.
	c2, _ := jsonRequest(t, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"token":    "not-a-token",
		"password": "whatever",
	})
	requireHTTPError(t, h.ResetPassword(c2), http.StatusBadRequest)
}

func TestChangePassword(t *testing.T) {
	h, db := newAuthHandler(t)

	hashed, err := hash.HashPassword("old-password")
	require.NoError(t, err)
	user := models.User{Email: "test@example.com", PasswordHash: hashed, Role: models.RoleUser}
	db.Create(&user)

	c, rec := jsonRequest(t, http.MethodPut, "/api/auth/change-password", map[string]string{
		"current_password": "old-password",
		"new_password":     "new-password",
	})
	c.Set("userID", user.ID)
	require.NoError(t, h.ChangePassword(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c2, _ := jsonRequest(t, http.MethodPut, "/api/auth/change-password", map[string]string{
		"current_password": "old-password",
		"new_password":     "another",
	})
	c2.Set("userID", user.ID)
	requireHTTPError(t, h.ChangePassword(c2), http.StatusBadRequest)
}

func TestRefreshTokenRotation(t *testing.T) {
	h, db := newAuthHandler(t)

	user := models.User{Email: "test@example.com", Role: models.RoleUser}
	db.Create(&user)

	refresh, err := h.Tokens.SignRefreshToken(user.ID, user.Role)
	require.NoError(t, err)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/refresh-token", map[string]string{
		"refresh_token": refresh,
	})
	require.NoError(t, h.RefreshToken(c))

	data := dataField(t, rec)
	require.NotEmpty(t, data["token"])
	require.NotEmpty(t, data["refresh_token"])
	require.NotEqual(t, refresh, data["refresh_token"])

	// The rotated-out token is single use.
	c2, _ := jsonRequest(t, http.MethodPost, "/api/auth/refresh-token", map[string]string{
		"refresh_token": refresh,
	})
	requireHTTPError(t, h.RefreshToken(c2), http.StatusUnauthorized)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	h, db := newAuthHandler(t)

	user := models.User{Email: "test@example.com", Role: models.RoleUser}
	db.Create(&user)
	refresh, err := h.Tokens.SignRefreshToken(user.ID, user.Role)
	require.NoError(t, err)

	c, rec := jsonRequest(t, http.MethodPost, "/api/auth/logout", map[string]string{
		"refresh_token": refresh,
	})
	require.NoError(t, h.Logout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var record models.RefreshToken
	require.NoError(t, db.Where("token = ?", refresh).First(&record).Error)
	require.True(t, record.Revoked)
}

package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Slide{},
		&models.Banner{},
		&models.Order{},
	))
	return db
}

func jsonContext(t *testing.T, method, path string, payload any) (echo.Context, *httptest.ResponseRecorder) {
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

func formContext(t *testing.T, method, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
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

func TestOrderCreateAndStatusFlow(t *testing.T) {
	db := initTestDB(t)
	h := &OrderHandler{DB: db}

	c, rec := jsonContext(t, http.MethodPost, "/api/admin/orders", map[string]any{
		"user_id":      1,
		"customer":     "Test Customer",
		"product_id":   2,
		"product_name": "Business Hosting",
		"amount":       119.88,
	})
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	data := dataField(t, rec)
	require.Equal(t, models.OrderStatusPending, data["status"])
	number := data["order_number"].(string)
	require.True(t, strings.HasPrefix(number, "ORD-"))

	var order models.Order
	require.NoError(t, db.Where("order_number = ?", number).First(&order).Error)

	c2, rec2 := jsonContext(t, http.MethodPut, "/", map[string]string{"status": models.OrderStatusCompleted})
	withParam(c2, "id", itoa(order.ID))
	require.NoError(t, h.UpdateStatus(c2))
	require.Equal(t, models.OrderStatusCompleted, dataField(t, rec2)["status"])

	// The status enum is closed.
	c3, _ := jsonContext(t, http.MethodPut, "/", map[string]string{"status": "shipped"})
	withParam(c3, "id", itoa(order.ID))
	requireHTTPError(t, h.UpdateStatus(c3), http.StatusBadRequest)
}

func TestOrderCreateRequiresProductName(t *testing.T) {
	h := &OrderHandler{DB: initTestDB(t)}

	c, _ := jsonContext(t, http.MethodPost, "/api/admin/orders", map[string]any{"customer": "No Product"})
	requireHTTPError(t, h.Create(c), http.StatusBadRequest)
}

func TestOrderListStatusFilter(t *testing.T) {
	db := initTestDB(t)
	h := &OrderHandler{DB: db}

	db.Create(&models.Order{OrderNumber: "ORD-1", ProductName: "A", Status: models.OrderStatusPending})
	db.Create(&models.Order{OrderNumber: "ORD-2", ProductName: "B", Status: models.OrderStatusCompleted})

	c, rec := jsonContext(t, http.MethodGet, "/api/admin/orders?status=pending", nil)
	require.NoError(t, h.List(c))
	data := dataField(t, rec)
	require.EqualValues(t, 1, data["total"])

	c2, _ := jsonContext(t, http.MethodGet, "/api/admin/orders?status=bogus", nil)
	requireHTTPError(t, h.List(c2), http.StatusBadRequest)
}

func TestBannerCreateWithURLImage(t *testing.T) {
	db := initTestDB(t)
	h := &BannerHandler{DB: db}

	c, rec := formContext(t, http.MethodPost, "/api/admin/homepage/banners", url.Values{
		"title":         {"Spring promotion"},
		"image_type":    {"URL"},
		"image":         {"https://cdn.example.com/spring.png"},
		"display_order": {"2"},
		"price":         {"9.99"},
		"price_unit":    {"month"},
		"features":      {`["Free SSL","Daily backups"]`},
	})
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var banner models.Banner
	require.NoError(t, db.Where("title = ?", "Spring promotion").First(&banner).Error)
	require.Equal(t, models.ImageTypeURL, banner.ImageType)
	require.Equal(t, "https://cdn.example.com/spring.png", banner.Image)
	require.Equal(t, 2, banner.DisplayOrder)
	require.Equal(t, 9.99, banner.Price)
	require.Equal(t, []string{"Free SSL", "Daily backups"}, banner.Features)
}

func TestBannerCreateRejectsUnknownImageType(t *testing.T) {
	h := &BannerHandler{DB: initTestDB(t)}

	c, _ := formContext(t, http.MethodPost, "/api/admin/homepage/banners", url.Values{
		"title":      {"Broken"},
		"image_type": {"S3"},
	})
	requireHTTPError(t, h.Create(c), http.StatusBadRequest)
}

func TestBannerSetActiveIsExclusive(t *testing.T) {
	db := initTestDB(t)
	h := &BannerHandler{DB: db}

	first := models.Banner{Title: "First", ImageType: models.ImageTypeURL, Active: true}
	second := models.Banner{Title: "Second", ImageType: models.ImageTypeURL}
	db.Create(&first)
	db.Create(&second)

	c, rec := jsonContext(t, http.MethodPost, "/", nil)
	withParam(c, "id", itoa(second.ID))
	require.NoError(t, h.SetActive(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var active []models.Banner
	require.NoError(t, db.Where("active = ?", true).Find(&active).Error)
	require.Len(t, active, 1)
	require.Equal(t, second.ID, active[0].ID)
}

func TestUserCreateValidation(t *testing.T) {
	db := initTestDB(t)
	h := &UserHandler{DB: db}

	c, rec := jsonContext(t, http.MethodPost, "/api/admin/users", map[string]string{
		"name":     "Support",
		"email":    "support@example.com",
		"password": "secret",
	})
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, models.RoleUser, dataField(t, rec)["role"], "role defaults to user")

	// Duplicate email.
	c2, _ := jsonContext(t, http.MethodPost, "/api/admin/users", map[string]string{
		"email":    "support@example.com",
		"password": "secret",
	})
	requireHTTPError(t, h.Create(c2), http.StatusBadRequest)

	// Unknown role.
	c3, _ := jsonContext(t, http.MethodPost, "/api/admin/users", map[string]string{
		"email":    "other@example.com",
		"password": "secret",
		"role":     "superadmin",
	})
	requireHTTPError(t, h.Create(c3), http.StatusBadRequest)
}

func TestUserCannotDeleteOwnAccount(t *testing.T) {
	db := initTestDB(t)
	h := &UserHandler{DB: db}

	admin := models.User{Email: "admin@example.com", Role: models.RoleAdmin}
	other := models.User{Email: "other@example.com", Role: models.RoleUser}
	db.Create(&admin)
	db.Create(&other)

	c, _ := jsonContext(t, http.MethodDelete, "/", nil)
	withParam(c, "id", itoa(admin.ID))
	c.Set("userID", admin.ID)
	requireHTTPError(t, h.Delete(c), http.StatusBadRequest)

	c2, rec := jsonContext(t, http.MethodDelete, "/", nil)
	withParam(c2, "id", itoa(other.ID))
	c2.Set("userID", admin.ID)
	require.NoError(t, h.Delete(c2))
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestUserListRoleFilter(t *testing.T) {
	db := initTestDB(t)
	h := &UserHandler{DB: db}

	db.Create(&models.User{Email: "a@example.com", Role: models.RoleAdmin})
	db.Create(&models.User{Email: "b@example.com", Role: models.RoleUser})
	db.Create(&models.User{Email: "c@example.com", Role: models.RoleUser})

	c, rec := jsonContext(t, http.MethodGet, "/api/admin/users?role=user", nil)
	require.NoError(t, h.List(c))
	require.EqualValues(t, 2, dataField(t, rec)["total"])

	c2, _ := jsonContext(t, http.MethodGet, "/api/admin/users?role=root", nil)
	requireHTTPError(t, h.List(c2), http.StatusBadRequest)
}

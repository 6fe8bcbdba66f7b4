package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

// CatalogHandler serves the public services and pricing endpoints. Both read
// from the products table; pricing is the subset flagged as hosting plans.
type CatalogHandler struct {
	DB *gorm.DB
}

func (h *CatalogHandler) listActive(c echo.Context, serviceType string) error {
	q := h.DB.Where("active = ?", true)
	if serviceType != "" {
		q = q.Where("service_type = ?", serviceType)
	}
	var products []models.Product
	if err := q.Order("id").Find(&products).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return OK(c, products)
}

func (h *CatalogHandler) getActive(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var product models.Product
	if err := h.DB.Where("id = ? AND active = ?", id, true).First(&product).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return OK(c, product)
}

func (h *CatalogHandler) Services(c echo.Context) error {
	return h.listActive(c, c.QueryParam("type"))
}

func (h *CatalogHandler) Service(c echo.Context) error {
	return h.getActive(c)
}

func (h *CatalogHandler) Pricing(c echo.Context) error {
	return h.listActive(c, "hosting")
}

func (h *CatalogHandler) PricingPlan(c echo.Context) error {
	return h.getActive(c)
}

// PublicSlides and PublicBanners back the homepage; only active rows are
// returned, ordered by display_order.

func (h *CatalogHandler) PublicSlides(c echo.Context) error {
	var slides []models.Slide
	if err := h.DB.Where("active = ?", true).
		Order("display_order").Find(&slides).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return OK(c, slides)
}

func (h *CatalogHandler) PublicBanners(c echo.Context) error {
	var banners []models.Banner
	if err := h.DB.Where("active = ?", true).
		Order("display_order").Find(&banners).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return OK(c, banners)
}

package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/handlers"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/storage"
)

type BannerHandler struct {
	DB    *gorm.DB
	Store *storage.ObjectStore
}

// stringList accepts a JSON array form value ("features", "promotions").
func stringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{raw}
	}
	return out
}

func (h *BannerHandler) List(c echo.Context) error {
	var banners []models.Banner
	if err := h.DB.Order("display_order").Find(&banners).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return handlers.OK(c, banners)
}

func (h *BannerHandler) Create(c echo.Context) error {
	image, imageType, err := resolveImageForm(c, h.Store)
	if err != nil {
		return err
	}

	banner := models.Banner{
		Title:        c.FormValue("title"),
		Subtitle:     c.FormValue("subtitle"),
		Description:  c.FormValue("description"),
		Image:        image,
		ImageType:    imageType,
		DisplayOrder: cast.ToInt(c.FormValue("display_order")),
		Features:     stringList(c.FormValue("features")),
		Promotions:   stringList(c.FormValue("promotions")),
		Price:        cast.ToFloat64(c.FormValue("price")),
		PriceUnit:    c.FormValue("price_unit"),
	}
	if err := h.DB.Create(&banner).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return handlers.Created(c, banner)
}

func (h *BannerHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var banner models.Banner
	if err := h.DB.First(&banner, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "banner not found")
	}

	if v := c.FormValue("title"); v != "" {
		banner.Title = v
	}
	if v := c.FormValue("subtitle"); v != "" {
		banner.Subtitle = v
	}
	if v := c.FormValue("description"); v != "" {
		banner.Description = v
	}
	if v := c.FormValue("display_order"); v != "" {
		banner.DisplayOrder = cast.ToInt(v)
	}
	if v := c.FormValue("features"); v != "" {
		banner.Features = stringList(v)
	}
	if v := c.FormValue("promotions"); v != "" {
		banner.Promotions = stringList(v)
	}
	if v := c.FormValue("price"); v != "" {
		banner.Price = cast.ToFloat64(v)
	}
	if v := c.FormValue("price_unit"); v != "" {
		banner.PriceUnit = v
	}
	if c.FormValue("image_type") != "" {
		image, imageType, err := resolveImageForm(c, h.Store)
		if err != nil {
			return err
		}
		banner.Image = image
		banner.ImageType = imageType
	}

	if err := h.DB.Save(&banner).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return handlers.OK(c, banner)
}

// SetActive switches the active hosting banner; only one is active at a time.
func (h *BannerHandler) SetActive(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var banner models.Banner
	if err := h.DB.First(&banner, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "banner not found")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Banner{}).Where("active = ?", true).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Model(&banner).Update("active", true).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	banner.Active = true
	return handlers.OK(c, banner)
}

func (h *BannerHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var banner models.Banner
	if err := h.DB.First(&banner, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "banner not found")
	}
	if err := h.DB.Delete(&banner).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if banner.ImageType == models.ImageTypeFile && h.Store != nil {
		if err := h.Store.RemoveImage(c.Request().Context(), banner.Image); err != nil {
			c.Logger().Errorf("remove image error: %v", err)
		}
	}
	return handlers.Message(c, "banner deleted")
}

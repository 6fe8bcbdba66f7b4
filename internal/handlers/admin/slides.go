package admin

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/handlers"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/storage"
)

type SlideHandler struct {
	DB    *gorm.DB
	Store *storage.ObjectStore
}

func (h *SlideHandler) List(c echo.Context) error {
	var slides []models.Slide
	if err := h.DB.Order("display_order").Find(&slides).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return handlers.OK(c, slides)
}

func (h *SlideHandler) Create(c echo.Context) error {
	image, imageType, err := resolveImageForm(c, h.Store)
	if err != nil {
		return err
	}

	slide := models.Slide{
		Title:        c.FormValue("title"),
		Subtitle:     c.FormValue("subtitle"),
		Description:  c.FormValue("description"),
		Image:        image,
		ImageType:    imageType,
		DisplayOrder: cast.ToInt(c.FormValue("display_order")),
		Active:       true,
	}
	if err := h.DB.Create(&slide).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return handlers.Created(c, slide)
}

func (h *SlideHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var slide models.Slide
	if err := h.DB.First(&slide, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "slide not found")
	}

	if v := c.FormValue("title"); v != "" {
		slide.Title = v
	}
	if v := c.FormValue("subtitle"); v != "" {
		slide.Subtitle = v
	}
	if v := c.FormValue("description"); v != "" {
		slide.Description = v
	}
	if v := c.FormValue("display_order"); v != "" {
		slide.DisplayOrder = cast.ToInt(v)
	}
	if v := c.FormValue("active"); v != "" {
		slide.Active = cast.ToBool(v)
	}
	if c.FormValue("image_type") != "" {
		image, imageType, err := resolveImageForm(c, h.Store)
		if err != nil {
			return err
		}
		slide.Image = image
		slide.ImageType = imageType
	}

	if err := h.DB.Save(&slide).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return handlers.OK(c, slide)
}

func (h *SlideHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var slide models.Slide
	if err := h.DB.First(&slide, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "slide not found")
	}
	if err := h.DB.Delete(&slide).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if slide.ImageType == models.ImageTypeFile && h.Store != nil {
		if err := h.Store.RemoveImage(c.Request().Context(), slide.Image); err != nil {
			c.Logger().Errorf("remove image error: %v", err)
		}
	}
	return handlers.Message(c, "slide deleted")
}

package admin

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/storage"
)

// resolveImageForm reads the image fields of a multipart create/update form.
// image_type URL takes the "image" form value verbatim; FILE streams the
// uploaded part into the object store and keeps the relative path.
func resolveImageForm(c echo.Context, store *storage.ObjectStore) (image, imageType string, err error) {
	imageType = strings.ToUpper(c.FormValue("image_type"))
	if imageType == "" {
		imageType = models.ImageTypeURL
	}

	switch imageType {
	case models.ImageTypeURL:
		return c.FormValue("image"), models.ImageTypeURL, nil

	case models.ImageTypeFile:
		fh, err := c.FormFile("image")
		if err != nil {
			return "", "", echo.NewHTTPError(http.StatusBadRequest, "image file is required")
		}
		src, err := fh.Open()
		if err != nil {
			return "", "", echo.NewHTTPError(http.StatusBadRequest, "cannot read image file")
		}
		defer src.Close()

		if store == nil {
			return "", "", echo.NewHTTPError(http.StatusInternalServerError, "object storage not configured")
		}
		contentType := fh.Header.Get("Content-Type")
		relPath, err := store.PutImage(c.Request().Context(), fh.Filename, contentType, src, fh.Size)
		if err != nil {
			return "", "", echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return relPath, models.ImageTypeFile, nil

	default:
		return "", "", echo.NewHTTPError(http.StatusBadRequest, "image_type must be URL or FILE")
	}
}

package apiclient

import (
	"fmt"
	"strings"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

// ResolveImageURL turns a stored image reference into a displayable URL.
// image_type URL (any case) uses the stored value verbatim; FILE joins the
// asset host with the stored relative path.
func ResolveImageURL(assetHost, image, imageType string) (string, error) {
	switch strings.ToUpper(imageType) {
	case models.ImageTypeURL:
		return image, nil
	case models.ImageTypeFile:
		return strings.TrimSuffix(assetHost, "/") + "/" + strings.TrimPrefix(image, "/"), nil
	default:
		return "", fmt.Errorf("unknown image_type %q", imageType)
	}
}

func (c *Client) BannerImageURL(b models.Banner) (string, error) {
	return ResolveImageURL(c.assetHost, b.Image, b.ImageType)
}

func (c *Client) SlideImageURL(s models.Slide) (string, error) {
	return ResolveImageURL(c.assetHost, s.Image, s.ImageType)
}

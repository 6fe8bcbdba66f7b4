package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

type ProductPage struct {
	Total    int64            `json:"total"`
	Products []models.Product `json:"products"`
}

type OrderPage struct {
	Total  int64          `json:"total"`
	Orders []models.Order `json:"orders"`
}

type UserPage struct {
	Total int64         `json:"total"`
	Users []models.User `json:"users"`
}

// ImageUpload describes the image part of a slide/banner form. A nil File
// means image_type URL with the URL field used verbatim; otherwise the file
// is uploaded and stored under image_type FILE.
type ImageUpload struct {
	URL      string
	File     io.Reader
	Filename string
}

type SlideForm struct {
	Title        string
	Subtitle     string
	Description  string
	DisplayOrder int
	Image        ImageUpload
}

type BannerForm struct {
	Title        string
	Subtitle     string
	Description  string
	DisplayOrder int
	Features     []string
	Promotions   []string
	Price        float64
	PriceUnit    string
	Image        ImageUpload
}

func pageQuery(page, size int) string {
	return "?page=" + strconv.Itoa(page) + "&size=" + strconv.Itoa(size)
}

func (f SlideForm) fields() map[string]string {
	m := map[string]string{
		"title":         f.Title,
		"subtitle":      f.Subtitle,
		"description":   f.Description,
		"display_order": strconv.Itoa(f.DisplayOrder),
	}
	fillImage(m, f.Image)
	return m
}

func (f BannerForm) fields() map[string]string {
	features, _ := json.Marshal(f.Features)
	promotions, _ := json.Marshal(f.Promotions)
	m := map[string]string{
		"title":         f.Title,
		"subtitle":      f.Subtitle,
		"description":   f.Description,
		"display_order": strconv.Itoa(f.DisplayOrder),
		"features":      string(features),
		"promotions":    string(promotions),
		"price":         strconv.FormatFloat(f.Price, 'f', -1, 64),
		"price_unit":    f.PriceUnit,
	}
	fillImage(m, f.Image)
	return m
}

// fillImage leaves the image fields out entirely when the form carries no
// image, so updates do not wipe the stored one.
func fillImage(m map[string]string, img ImageUpload) {
	if img.File != nil {
		m["image_type"] = models.ImageTypeFile
		return
	}
	if img.URL != "" {
		m["image_type"] = models.ImageTypeURL
		m["image"] = img.URL
	}
}

// --- slides ---

func (c *Client) AdminSlides(ctx context.Context) ([]models.Slide, error) {
	var out []models.Slide
	if err := c.getJSON(ctx, "/admin/homepage/slides", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminCreateSlide(ctx context.Context, form SlideForm) (*models.Slide, error) {
	var out models.Slide
	err := c.sendMultipart(ctx, http.MethodPost, "/admin/homepage/slides",
		form.fields(), form.Image.Filename, form.Image.File, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateSlide(ctx context.Context, id uint, form SlideForm) (*models.Slide, error) {
	var out models.Slide
	err := c.sendMultipart(ctx, http.MethodPut, fmt.Sprintf("/admin/homepage/slides/%d", id),
		form.fields(), form.Image.Filename, form.Image.File, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteSlide(ctx context.Context, id uint) error {
	return c.deleteJSON(ctx, fmt.Sprintf("/admin/homepage/slides/%d", id), nil)
}

// --- banners ---

func (c *Client) AdminBanners(ctx context.Context) ([]models.Banner, error) {
	var out []models.Banner
	if err := c.getJSON(ctx, "/admin/homepage/banners", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminCreateBanner(ctx context.Context, form BannerForm) (*models.Banner, error) {
	var out models.Banner
	err := c.sendMultipart(ctx, http.MethodPost, "/admin/homepage/banners",
		form.fields(), form.Image.Filename, form.Image.File, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateBanner(ctx context.Context, id uint, form BannerForm) (*models.Banner, error) {
	var out models.Banner
	err := c.sendMultipart(ctx, http.MethodPut, fmt.Sprintf("/admin/homepage/banners/%d", id),
		form.fields(), form.Image.Filename, form.Image.File, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminActivateBanner(ctx context.Context, id uint) (*models.Banner, error) {
	var out models.Banner
	if err := c.postJSON(ctx, fmt.Sprintf("/admin/homepage/banners/%d/activate", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteBanner(ctx context.Context, id uint) error {
	return c.deleteJSON(ctx, fmt.Sprintf("/admin/homepage/banners/%d", id), nil)
}

// --- products ---

func (c *Client) AdminProducts(ctx context.Context, page, size int) (*ProductPage, error) {
	var out ProductPage
	if err := c.getJSON(ctx, "/admin/products"+pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminCreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.postJSON(ctx, "/admin/products", product, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateProduct(ctx context.Context, id uint, product models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.putJSON(ctx, fmt.Sprintf("/admin/products/%d", id), product, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteProduct(ctx context.Context, id uint) error {
	return c.deleteJSON(ctx, fmt.Sprintf("/admin/products/%d", id), nil)
}

// --- orders ---

func (c *Client) AdminOrders(ctx context.Context, page, size int, status string) (*OrderPage, error) {
	path := "/admin/orders" + pageQuery(page, size)
	if status != "" {
		path += "&status=" + status
	}
	var out OrderPage
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	var out models.Order
	err := c.putJSON(ctx, fmt.Sprintf("/admin/orders/%d", id), map[string]string{"status": status}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteOrder(ctx context.Context, id uint) error {
	return c.deleteJSON(ctx, fmt.Sprintf("/admin/orders/%d", id), nil)
}

// --- users ---

func (c *Client) AdminUsers(ctx context.Context, page, size int) (*UserPage, error) {
	var out UserPage
	if err := c.getJSON(ctx, "/admin/users"+pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type AdminUserForm struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

func (c *Client) AdminCreateUser(ctx context.Context, form AdminUserForm) (*models.User, error) {
	var out models.User
	if err := c.postJSON(ctx, "/admin/users", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateUser(ctx context.Context, id uint, form AdminUserForm) (*models.User, error) {
	var out models.User
	if err := c.putJSON(ctx, fmt.Sprintf("/admin/users/%d", id), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, id uint) error {
	return c.deleteJSON(ctx, fmt.Sprintf("/admin/users/%d", id), nil)
}

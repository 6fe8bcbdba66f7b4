package apiclient

import (
	"context"
	"fmt"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

type DashboardStats struct {
	TotalOrders   int64   `json:"total_orders"`
	ActiveOrders  int64   `json:"active_orders"`
	PendingOrders int64   `json:"pending_orders"`
	TotalSpent    float64 `json:"total_spent"`
}

type AdminDashboardStats struct {
	TotalUsers     int64   `json:"total_users"`
	TotalOrders    int64   `json:"total_orders"`
	ActiveProducts int64   `json:"active_products"`
	PendingOrders  int64   `json:"pending_orders"`
	Revenue        float64 `json:"revenue"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *Client) Services(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.getJSON(ctx, "/services", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Service(ctx context.Context, id uint) (*models.Product, error) {
	var out models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/services/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Pricing(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.getJSON(ctx, "/pricing", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PricingPlan(ctx context.Context, id uint) (*models.Product, error) {
	var out models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/pricing/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.getJSON(ctx, "/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDashboard(ctx context.Context) (*AdminDashboardStats, error) {
	var out AdminDashboardStats
	if err := c.getJSON(ctx, "/admin/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Contact(ctx context.Context, req ContactRequest) (string, error) {
	var out messagePayload
	if err := c.postJSON(ctx, "/contact", req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) PublicSlides(ctx context.Context) ([]models.Slide, error) {
	var out []models.Slide
	if err := c.getJSON(ctx, "/public/homepage/slides", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PublicBanners(ctx context.Context) ([]models.Banner, error) {
	var out []models.Banner
	if err := c.getJSON(ctx, "/public/homepage/banners", &out); err != nil {
		return nil, err
	}
	return out, nil
}

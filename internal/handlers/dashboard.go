package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

type DashboardHandler struct {
	DB *gorm.DB
}

// Dashboard returns the signed-in customer's own statistics.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	userID, _ := c.Get("userID").(uint)

	var total, active, pending int64
	if err := h.DB.Model(&models.Order{}).Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.DB.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userID, models.OrderStatusCompleted).
		Count(&active)
	h.DB.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userID, models.OrderStatusPending).
		Count(&pending)

	var spent float64
	h.DB.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userID, models.OrderStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&spent)

	return OK(c, echo.Map{
		"total_orders":   total,
		"active_orders":  active,
		"pending_orders": pending,
		"total_spent":    spent,
	})
}

// AdminDashboard aggregates storefront-wide counts for the back office.
func (h *DashboardHandler) AdminDashboard(c echo.Context) error {
	var users, orders, products, pending int64
	if err := h.DB.Model(&models.User{}).Count(&users).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.DB.Model(&models.Order{}).Count(&orders)
	h.DB.Model(&models.Product{}).Where("active = ?", true).Count(&products)
	h.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pending)

	var revenue float64
	h.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	return OK(c, echo.Map{
		"total_users":     users,
		"total_orders":    orders,
		"active_products": products,
		"pending_orders":  pending,
		"revenue":         revenue,
	})
}

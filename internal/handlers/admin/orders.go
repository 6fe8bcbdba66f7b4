package admin

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/events"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/handlers"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/util"
)

type OrderHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

func (h *OrderHandler) publish(c echo.Context, event map[string]interface{}) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicOrderEvents, fmt.Sprint(event["orderID"]), event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}

func (h *OrderHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	q := h.DB.Model(&models.Order{})
	if status := c.QueryParam("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		}
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var orders []models.Order
	if err := q.Order("id DESC").Offset(from).Limit(size).Find(&orders).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return handlers.OK(c, echo.Map{"total": total, "orders": orders})
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req struct {
		UserID      uint    `json:"user_id"`
		Customer    string  `json:"customer"`
		ProductID   uint    `json:"product_id"`
		ProductName string  `json:"product_name"`
		Amount      float64 `json:"amount"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.ProductName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_name is required")
	}

	order := models.Order{
		OrderNumber: "ORD-" + uuid.NewString()[:8],
		UserID:      req.UserID,
		Customer:    req.Customer,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Amount:      req.Amount,
		Status:      models.OrderStatusPending,
	}
	if err := h.DB.Create(&order).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, map[string]interface{}{
		"type":    "order_created",
		"orderID": order.ID,
		"number":  order.OrderNumber,
	})
	return handlers.Created(c, order)
}

// UpdateStatus moves an order through the closed status enum.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if !models.ValidOrderStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	order.Status = req.Status
	if err := h.DB.Save(&order).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, map[string]interface{}{
		"type":    "order_status_changed",
		"orderID": order.ID,
		"status":  order.Status,
	})
	return handlers.OK(c, order)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.DB.Delete(&models.Order{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return handlers.Message(c, "order deleted")
}

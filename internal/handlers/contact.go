package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/events"
)

// ContactHandler accepts contact-form submissions. Nothing is persisted; the
// submission is published for whoever consumes contact_events.
type ContactHandler struct {
	Producer *events.Producer
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.Email == "" || req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and message are required")
	}

	if h.Producer != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		event := map[string]interface{}{
			"type":    "contact_submitted",
			"name":    req.Name,
			"email":   req.Email,
			"phone":   req.Phone,
			"subject": req.Subject,
			"message": req.Message,
		}
		if err := h.Producer.PublishEvent(ctx, events.TopicContactEvents, req.Email, event); err != nil {
			c.Logger().Errorf("kafka publish error: %v", err)
		}
	}

	return Message(c, "thank you for contacting us, we will reply shortly")
}

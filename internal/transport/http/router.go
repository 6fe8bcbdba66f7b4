package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/handlers"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/handlers/admin"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/service/token"
)

type Deps struct {
	DB               *gorm.DB
	AuthHandler      *handlers.AuthHandler
	CatalogHandler   *handlers.CatalogHandler
	DashboardHandler *handlers.DashboardHandler
	ContactHandler   *handlers.ContactHandler
	SearchHandler    *handlers.SearchHandler
	SlideHandler     *admin.SlideHandler
	BannerHandler    *admin.BannerHandler
	ProductHandler   *admin.ProductHandler
	OrderHandler     *admin.OrderHandler
	UserHandler      *admin.UserHandler
	Tokens           *token.TokenService
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/forgot-password", d.AuthHandler.ForgotPassword)
	auth.POST("/reset-password", d.AuthHandler.ResetPassword)
	auth.POST("/refresh-token", d.AuthHandler.RefreshToken)
	auth.POST("/logout", d.AuthHandler.Logout)
	auth.GET("/me", d.AuthHandler.Me, d.Tokens.RequireAuth)
	auth.PUT("/change-password", d.AuthHandler.ChangePassword, d.Tokens.RequireAuth)

	api.GET("/services", d.CatalogHandler.Services)
	api.GET("/services/:id", d.CatalogHandler.Service)
	api.GET("/pricing", d.CatalogHandler.Pricing)
	api.GET("/pricing/:id", d.CatalogHandler.PricingPlan)
	api.POST("/contact", d.ContactHandler.Submit)

	api.GET("/public/homepage/slides", d.CatalogHandler.PublicSlides)
	api.GET("/public/homepage/banners", d.CatalogHandler.PublicBanners)

	api.GET("/dashboard", d.DashboardHandler.Dashboard, d.Tokens.RequireAuth)

	adm := api.Group("/admin", d.Tokens.RequireAdmin)
	adm.GET("/dashboard", d.DashboardHandler.AdminDashboard)

	adm.GET("/homepage/slides", d.SlideHandler.List)
	adm.POST("/homepage/slides", d.SlideHandler.Create)
	adm.PUT("/homepage/slides/:id", d.SlideHandler.Update)
	adm.DELETE("/homepage/slides/:id", d.SlideHandler.Delete)

	adm.GET("/homepage/banners", d.BannerHandler.List)
	adm.POST("/homepage/banners", d.BannerHandler.Create)
	adm.PUT("/homepage/banners/:id", d.BannerHandler.Update)
	adm.POST("/homepage/banners/:id/activate", d.BannerHandler.SetActive)
	adm.DELETE("/homepage/banners/:id", d.BannerHandler.Delete)

	adm.GET("/products", d.ProductHandler.List)
	adm.POST("/products", d.ProductHandler.Create)
	adm.PUT("/products/:id", d.ProductHandler.Update)
	adm.DELETE("/products/:id", d.ProductHandler.Delete)
	if d.SearchHandler != nil {
		adm.GET("/products/search", d.SearchHandler.Search)
	}

	adm.GET("/orders", d.OrderHandler.List)
	adm.POST("/orders", d.OrderHandler.Create)
	adm.PUT("/orders/:id", d.OrderHandler.UpdateStatus)
	adm.DELETE("/orders/:id", d.OrderHandler.Delete)

	adm.GET("/users", d.UserHandler.List)
	adm.POST("/users", d.UserHandler.Create)
	adm.PUT("/users/:id", d.UserHandler.Update)
	adm.DELETE("/users/:id", d.UserHandler.Delete)
}

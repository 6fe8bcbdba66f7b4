package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/config"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/es"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/events"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/handlers"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/handlers/admin"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/logging"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/mailer"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/service/token"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/storage"
	httpserver "github.com/CT070144/HostingWebsite-FE-sub001/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var prod *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod, err = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
		if err != nil {
			log.Fatal(err)
		}
	}

	tokens := &token.TokenService{
		DB:            db,
		JWTSecret:     []byte(configuration.JWT_SECRET),
		RefreshSecret: []byte(configuration.REFRESH_SECRET),
	}

	var searchHandler *handlers.SearchHandler
	if configuration.ES_URL != "" {
		client, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		searchHandler = &handlers.SearchHandler{ES: client, Index: "products"}
	}

	var store *storage.ObjectStore
	if configuration.MINIO_ENDPOINT != "" {
		store, err = storage.New(configuration)
		if err != nil {
			log.Fatal(err)
		}
	}

	mail := mailer.New(configuration)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "err", v.Error)
				return nil
			}
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	deps := httpserver.Deps{
		DB:               db,
		AuthHandler:      &handlers.AuthHandler{DB: db, Tokens: tokens, Producer: prod, Mailer: mail},
		CatalogHandler:   &handlers.CatalogHandler{DB: db},
		DashboardHandler: &handlers.DashboardHandler{DB: db},
		ContactHandler:   &handlers.ContactHandler{Producer: prod},
		SearchHandler:    searchHandler,
		SlideHandler:     &admin.SlideHandler{DB: db, Store: store},
		BannerHandler:    &admin.BannerHandler{DB: db, Store: store},
		ProductHandler:   &admin.ProductHandler{DB: db, Index: "products"},
		OrderHandler:     &admin.OrderHandler{DB: db, Producer: prod},
		UserHandler:      &admin.UserHandler{DB: db},
		Tokens:           tokens,
	}
	if searchHandler != nil {
		deps.ProductHandler.ES = searchHandler.ES
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":8080",
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
		}
	}()
	logger.Info("server started", "addr", srv.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "err", err)
		}
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "err", err)
	}

	logger.Info("shutdown complete")
}

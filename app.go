// @title           DNS Lookup API
// @version         1.0
// @description     Multi-provider DNS lookups over the system resolver or public DNS-over-HTTPS endpoints (Google, Cloudflare, Quad9), with optional DNSSEC validation status.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vit0-9/dns_lookup_api/docs" // Swagger docs
	"github.com/vit0-9/dns_lookup_api/handlers"
)

var appLog = logrus.WithField("component", "server")

// App encapsulates all the components of the application
type App struct {
	Router         *gin.Engine
	DNSHandlers    *handlers.DNSHandlers
	IPInfoHandlers *handlers.IPInfoHandlers
	UIHandlers     *handlers.UIHandlers
	HealthHandler  *handlers.HealthHandler
}

// NewApp creates and initializes a new application instance
func NewApp() (*App, error) {
	app := &App{
		Router:         gin.Default(),
		DNSHandlers:    handlers.NewDNSHandlers(),
		IPInfoHandlers: handlers.NewIPInfoHandlers(),
		UIHandlers:     handlers.NewUIHandlers(),
		HealthHandler:  handlers.NewHealthHandler(),
	}

	app.setupRoutes()
	return app, nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	api := app.Router.Group("/api")
	{
		api.GET("/dns", app.DNSHandlers.SystemLookupHandler)
		api.GET("/dns-doh", app.DNSHandlers.DoHLookupHandler)
		api.GET("/ip-info", app.IPInfoHandlers.IPInfoHandler)
		api.GET("/health", app.HealthHandler.HealthCheckHandler)
	}

	app.Router.GET("/", app.UIHandlers.IndexHandler)
	app.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// Path-style share links (/MX/example.com) land here and get normalized
	// to the fragment form the UI understands.
	app.Router.NoRoute(app.UIHandlers.ShareLinkHandler)
}

// Start runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests before returning.
func (app *App) Start(addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      app.Router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.WithField("addr", addr).Info("API server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		appLog.WithField("signal", sig.String()).Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

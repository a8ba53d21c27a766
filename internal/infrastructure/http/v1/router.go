// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"tatdocs/internal/auth"
	"tatdocs/internal/catalog"
	"tatdocs/internal/chat"
	"tatdocs/internal/documents"
	"tatdocs/internal/infrastructure/http/v1/handlers"
	"tatdocs/internal/infrastructure/http/v1/middleware"
	"tatdocs/internal/metrics"
	"tatdocs/internal/shipment"
	"tatdocs/internal/store"
	"tatdocs/pkg/logger"
	"tatdocs/pkg/numerator"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Session holds the live shipment form
	Session *shipment.Session

	// Catalog is the product database
	Catalog *catalog.Catalog

	// Standards is the packaging reference data
	Standards catalog.PackagingStandards

	// Exporter identity printed on documents
	Exporter catalog.Exporter

	// Projector builds document views
	Projector *documents.Projector

	// Store archives saved shipments
	Store store.Store

	// ChatService drives the assistant; nil disables the endpoint
	ChatService *chat.Service

	// AuthService authenticates the operator
	AuthService *auth.Service

	// AuthDisabled skips bearer-token checks. Development only.
	AuthDisabled bool

	// Numerator suggests invoice sequences
	Numerator *numerator.Service

	// Metrics instruments the service
	Metrics *metrics.Metrics

	// Pool is the database pool, nil on the in-memory store
	Pool *pgxpool.Pool

	// Version is the build version reported by /health/info
	Version string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics(cfg.Metrics))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Prometheus scrape endpoint (no auth required)
	router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))

	baseHandler := handlers.NewBaseHandler()

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		// Public auth endpoints, protected everything else
		public := apiV1.Group("/auth")
		protected := apiV1.Group("")
		if !cfg.AuthDisabled {
			protected.Use(middleware.Auth(cfg.AuthService))
		}

		authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)
		authHandler.RegisterRoutes(public, protected.Group("/auth"))

		catalogHandler := handlers.NewCatalogHandler(baseHandler, cfg.Catalog, cfg.Standards, cfg.Exporter)
		catalogHandler.RegisterRoutes(protected.Group("/catalog"))

		shipmentHandler := handlers.NewShipmentHandler(baseHandler, cfg.Session, cfg.Numerator, cfg.Metrics)
		shipmentHandler.RegisterRoutes(protected.Group("/shipment"))

		documentsHandler := handlers.NewDocumentsHandler(baseHandler, cfg.Projector, cfg.Session)
		documentsHandler.RegisterRoutes(protected.Group("/documents"))

		shipmentsHandler := handlers.NewShipmentsHandler(baseHandler, cfg.Store, cfg.Session, cfg.Numerator, cfg.Metrics)
		shipmentsHandler.RegisterRoutes(protected.Group("/shipments"))

		if cfg.ChatService != nil {
			chatHandler := handlers.NewChatHandler(baseHandler, cfg.ChatService, cfg.Session, cfg.Metrics)
			chatHandler.RegisterRoutes(protected.Group("/chat"))
		}
	}

	return router
}

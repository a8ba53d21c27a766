// Package main is the entry point for the tatdocs API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tatdocs/internal/auth"
	"tatdocs/internal/catalog"
	"tatdocs/internal/chat"
	"tatdocs/internal/documents"
	v1 "tatdocs/internal/infrastructure/http/v1"
	"tatdocs/internal/metrics"
	"tatdocs/internal/shipment"
	"tatdocs/internal/store"
	storepg "tatdocs/internal/store/postgres"
	"tatdocs/pkg/logger"
	"tatdocs/pkg/numerator"
)

var version = "dev"

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting tatdocs server")

	// --- Reference data and live shipment session ---
	productCatalog := catalog.Default()
	standards := catalog.DefaultPackagingStandards()
	maxGross := getEnvFloat("MAX_GROSS_WEIGHT_KG", catalog.MaxGrossWeightKg)
	session := shipment.NewSession(productCatalog, standards, maxGross)

	projector := documents.NewProjector(
		catalog.DefaultExporter(),
		catalog.DefaultPersonnel(),
		catalog.Chemtrec(),
	)

	// --- Shipment store ---
	var (
		shipmentStore store.Store
		pool          *pgxpool.Pool
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err = storepg.NewPool(ctx, storepg.DefaultPoolConfig(dsn))
		if err != nil {
			log.Fatalw("failed to connect to database", "error", err)
		}
		defer pool.Close()

		shipmentStore, err = storepg.NewShipmentStore(ctx, pool)
		if err != nil {
			log.Fatalw("failed to initialize shipment store", "error", err)
		}
		log.Info("using postgres shipment store")
	} else {
		shipmentStore = store.NewMemoryStore()
		log.Info("DATABASE_URL not set, using in-memory shipment store")
	}

	// --- Invoice sequence suggestions ---
	numeratorService := numerator.New(numerator.DefaultConfig())
	if saved, err := shipmentStore.List(ctx); err != nil {
		log.Warnw("failed to seed sequence suggestions", "error", err)
	} else {
		for _, s := range saved {
			numeratorService.ObserveInvoice(s.InvoiceNumber)
		}
	}

	// --- Auth ---
	authDisabled := getEnv("AUTH_DISABLED", "false") == "true"
	if authDisabled {
		log.Warn("AUTH_DISABLED is set, API endpoints are unprotected")
	}

	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	operatorHash := os.Getenv("OPERATOR_PASSWORD_HASH")
	if operatorHash == "" && !authDisabled {
		password := mustEnv("OPERATOR_PASSWORD")
		operatorHash, err = auth.HashPassword(password)
		if err != nil {
			log.Fatalw("failed to hash operator password", "error", err)
		}
	}
	authService := auth.NewService(auth.Operator{
		Subject:      getEnv("OPERATOR_SUBJECT", "operator"),
		Email:        getEnv("OPERATOR_EMAIL", "hernany@texasamericantrade.com"),
		PasswordHash: operatorHash,
	}, jwtService)

	// --- Chat assistant ---
	var chatService *chat.Service
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg := chat.DefaultConfig(apiKey)
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			cfg.BaseURL = baseURL
		}
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			cfg.Model = model
		}
		chatService = chat.NewService(chat.NewClient(cfg), session)
		log.Infow("chat assistant enabled", "model", cfg.Model)
	} else {
		log.Info("OPENAI_API_KEY not set, chat assistant disabled")
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:       log,
		Session:      session,
		Catalog:      productCatalog,
		Standards:    standards,
		Exporter:     catalog.DefaultExporter(),
		Projector:    projector,
		Store:        shipmentStore,
		ChatService:  chatService,
		AuthService:  authService,
		AuthDisabled: authDisabled,
		Numerator:    numeratorService,
		Metrics:      metrics.New(),
		Pool:         pool,
		Version:      version,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port, "version", version)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}

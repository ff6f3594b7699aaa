package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/dev-guime/arcade-backend/internal/config"
	"github.com/dev-guime/arcade-backend/internal/database"
	"github.com/dev-guime/arcade-backend/internal/metrics"
	"github.com/dev-guime/arcade-backend/internal/modules/auth"
	"github.com/dev-guime/arcade-backend/internal/modules/catalog"
	"github.com/dev-guime/arcade-backend/internal/modules/expense"
	"github.com/dev-guime/arcade-backend/internal/modules/inventory"
	"github.com/dev-guime/arcade-backend/internal/modules/peripheral"
	"github.com/dev-guime/arcade-backend/internal/modules/portfolio"
	"github.com/dev-guime/arcade-backend/internal/modules/showcase"
	"github.com/dev-guime/arcade-backend/internal/modules/upload"
	"github.com/dev-guime/arcade-backend/internal/modules/user"
	"github.com/dev-guime/arcade-backend/internal/provider"
	"github.com/dev-guime/arcade-backend/internal/realtime"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file, reading settings from the environment")
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		slog.Error("ping database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to the database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(metrics.Middleware)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	authService := auth.NewService(userRepo, cfg.JWTSecret)
	auth.NewHandler(authService).RegisterRoutes(router)
	admin := auth.RequireAdmin(authService, userRepo)
	user.NewHandler(userService).RegisterRoutes(router, admin)

	// ── Repositories & snapshot collections ─────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	peripheralRepo := peripheral.NewPostgresRepository(db)
	showcaseRepo := showcase.NewPostgresRepository(db)
	inventoryRepo := inventory.NewPostgresRepository(db)
	portfolioRepo := portfolio.NewPostgresRepository(db)
	expenseRepo := expense.NewPostgresRepository(db)

	computers := provider.NewCollection("computers", catalogRepo.List)
	peripherals := provider.NewCollection("peripherals", peripheralRepo.List)
	delivered := provider.NewCollection("delivered_computers", showcaseRepo.List)
	stock := provider.NewCollection("inventory_computers", inventoryRepo.List)
	sold := provider.NewCollection("sold_computers", portfolioRepo.List)
	expenses := provider.NewCollection("monthly_expenses", expenseRepo.List)

	// The public storefront and the admin back office load and report
	// readiness independently.
	storefront := provider.NewGroup("storefront", computers, peripherals, delivered)
	backOffice := provider.NewGroup("back_office", stock, sold, expenses)
	storefront.Start(ctx)
	backOffice.Start(ctx)
	defer storefront.Close()
	defer backOffice.Close()

	// ── Realtime change feed ─────────────────────────────────
	src, err := realtime.NewPQSource(cfg.DatabaseURL)
	if err != nil {
		slog.Error("start change listener", "error", err)
		os.Exit(1)
	}
	dispatcher := realtime.NewDispatcher(src)
	dispatcher.Register("computers", computers.Refresh)
	dispatcher.Register("peripherals", peripherals.Refresh)
	dispatcher.Register("delivered_computers", delivered.Refresh)
	dispatcher.Register("inventory_computers", stock.Refresh)
	dispatcher.Register("sold_computers", sold.Refresh)
	dispatcher.Register("monthly_expenses", expenses.Refresh)
	go dispatcher.Run()
	defer dispatcher.Close()

	// ── Storefront modules ───────────────────────────────────
	catalogService := catalog.NewService(catalogRepo, computers.Refresh)
	catalog.NewHandler(catalogService, computers, storefront.Loading).RegisterRoutes(router, admin)

	peripheralService := peripheral.NewService(peripheralRepo, peripherals.Refresh)
	peripheral.NewHandler(peripheralService, peripherals, storefront.Loading).RegisterRoutes(router, admin)

	showcaseService := showcase.NewService(showcaseRepo, delivered.Refresh)
	showcase.NewHandler(showcaseService, delivered, storefront.Loading).RegisterRoutes(router, admin)

	// ── Back-office modules ──────────────────────────────────
	inventoryService := inventory.NewService(inventoryRepo, stock.Refresh)
	inventory.NewHandler(inventoryService, stock, backOffice.Loading).RegisterRoutes(router, admin)

	portfolioService := portfolio.NewService(portfolioRepo, sold.Refresh)
	portfolio.NewHandler(portfolioService, sold, backOffice.Loading).RegisterRoutes(router, admin)

	expenseService := expense.NewService(expenseRepo, expenses.Refresh)
	expense.NewHandler(expenseService, expenses, backOffice.Loading).RegisterRoutes(router, admin)

	// ── Image uploads ────────────────────────────────────────
	if cfg.S3Bucket != "" {
		store, err := upload.NewS3Store(ctx, upload.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
			BaseURL:   cfg.PublicBaseURL,
		})
		if err != nil {
			slog.Error("configure object storage", "error", err)
			os.Exit(1)
		}
		uploadService := upload.NewService(store, cfg.MaxImageWidth)
		upload.NewHandler(uploadService).RegisterRoutes(router, admin)
	} else {
		slog.Warn("S3_BUCKET not set, image uploads disabled")
	}

	router.Handle("/metrics", metrics.Handler())

	// ── Start server ─────────────────────────────────────────
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		slog.Info("arcade API listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}

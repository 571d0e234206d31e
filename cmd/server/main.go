package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/config"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/content"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/handlers"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/media"
	"github.com/MikeHawke-design/mrtz-ethereal-sculpt/internal/store"
)

func main() {
	// Configure slog to output DEBUG level messages
	// This should be done as early as possible in main
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init DB
	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	// Run Migrations
	if err := db.Migrate("migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 3. Content repositories, all backed by the documents table
	portfolio := content.NewPortfolio(db)
	drops := content.NewDrops(db)
	settings := content.NewSettings(db)

	// Persist the sample content on a fresh database so the public pages
	// have something to show before the first admin save.
	if err := portfolio.EnsureSeeded(); err != nil {
		slog.Warn("Failed to seed portfolio", "error", err)
	}
	if err := drops.EnsureSeeded(); err != nil {
		slog.Warn("Failed to seed drops", "error", err)
	}

	// Uploads directory must exist before the first ingest
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("Failed to create upload directory", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	// 4. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure // Configurable for production
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 5. Init Templates
	templates := handlers.NewTemplateCache()
	templates.AddFunc("formatPrice", func(price float64) string {
		return fmt.Sprintf("$%.0f", price)
	})
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 6. Setup Handlers
	adminHandler := &handlers.AdminHandler{
		Store:        db,
		Portfolio:    portfolio,
		Drops:        drops,
		Settings:     settings,
		Ingestor:     media.NewIngestor(cfg.UploadDir, "/static/uploads"),
		MaxMedia:     cfg.MaxMediaPerItem,
		SessionStore: sessionStore,
		Templates:    templates,
	}
	siteHandler := &handlers.SiteHandler{
		Portfolio:    portfolio,
		Drops:        drops,
		Settings:     settings,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	commissionHandler := &handlers.CommissionHandler{
		Store:        db,
		Settings:     settings,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter (1 request per minute) for public submissions
	rateLimiter := handlers.NewRateLimiter(1 * time.Minute)

	// Public Routes
	mux.HandleFunc("/", siteHandler.Home)
	mux.HandleFunc("/gallery", siteHandler.Gallery)
	mux.HandleFunc("/drops", siteHandler.DropsPage)
	mux.HandleFunc("/about", siteHandler.About)
	mux.HandleFunc("/commission", commissionHandler.Form)
	mux.HandleFunc("POST /commission", rateLimiter.Middleware(commissionHandler.Submit))

	mux.HandleFunc("/login", adminHandler.LoginGet)
	mux.HandleFunc("POST /login", adminHandler.LoginPost)
	mux.HandleFunc("/logout", adminHandler.Logout)

	// Protected Routes
	mux.HandleFunc("/admin", adminHandler.AuthMiddleware(adminHandler.Dashboard))

	mux.HandleFunc("/admin/portfolio", adminHandler.AuthMiddleware(adminHandler.ListPortfolio))
	mux.HandleFunc("/admin/portfolio/new", adminHandler.AuthMiddleware(adminHandler.NewPortfolioForm))
	mux.HandleFunc("POST /admin/portfolio", adminHandler.AuthMiddleware(adminHandler.CreatePortfolioItem))
	mux.HandleFunc("/admin/portfolio/edit", adminHandler.AuthMiddleware(adminHandler.EditPortfolioForm))
	mux.HandleFunc("POST /admin/portfolio/update", adminHandler.AuthMiddleware(adminHandler.UpdatePortfolioItem))
	mux.HandleFunc("POST /admin/portfolio/delete", adminHandler.AuthMiddleware(adminHandler.DeletePortfolioItem))
	mux.HandleFunc("POST /admin/portfolio/media/remove", adminHandler.AuthMiddleware(adminHandler.RemovePortfolioMedia))
	mux.HandleFunc("POST /admin/portfolio/media/reorder", adminHandler.AuthMiddleware(adminHandler.ReorderPortfolioMedia))

	mux.HandleFunc("/admin/drops", adminHandler.AuthMiddleware(adminHandler.ListDrops))
	mux.HandleFunc("/admin/drops/new", adminHandler.AuthMiddleware(adminHandler.NewDropForm))
	mux.HandleFunc("POST /admin/drops", adminHandler.AuthMiddleware(adminHandler.CreateDrop))
	mux.HandleFunc("/admin/drops/edit", adminHandler.AuthMiddleware(adminHandler.EditDropForm))
	mux.HandleFunc("POST /admin/drops/update", adminHandler.AuthMiddleware(adminHandler.UpdateDrop))
	mux.HandleFunc("POST /admin/drops/delete", adminHandler.AuthMiddleware(adminHandler.DeleteDrop))
	mux.HandleFunc("POST /admin/drops/media/remove", adminHandler.AuthMiddleware(adminHandler.RemoveDropMedia))
	mux.HandleFunc("POST /admin/drops/media/reorder", adminHandler.AuthMiddleware(adminHandler.ReorderDropMedia))

	mux.HandleFunc("/admin/settings", adminHandler.AuthMiddleware(adminHandler.SettingsForm))
	mux.HandleFunc("POST /admin/settings", adminHandler.AuthMiddleware(adminHandler.UpdateSettings))

	mux.HandleFunc("/admin/commissions", adminHandler.AuthMiddleware(adminHandler.ListCommissions))
	mux.HandleFunc("POST /admin/commissions/update", adminHandler.AuthMiddleware(adminHandler.UpdateCommissionStatus))

	// 7. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure), // Configurable for production
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			CSRF(mux),
		),
	)

	// 8. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}

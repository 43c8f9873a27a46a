package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/stash/internal/stash/http"
	"github.com/aussiebroadwan/stash/internal/stash/service"
	"github.com/aussiebroadwan/stash/internal/stash/store"
	"github.com/aussiebroadwan/stash/pkg/cryptox"
	"github.com/aussiebroadwan/stash/pkg/httpx"
	"github.com/aussiebroadwan/stash/pkg/jwtx"
	"github.com/aussiebroadwan/stash/pkg/slogx"
	"github.com/aussiebroadwan/stash/pkg/stashsdk"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the stash service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	hasher *cryptox.Hasher
	signer *jwtx.SessionSigner

	// Services
	accountService *service.AccountService
	sessionService *service.SessionService
	clipService    *service.ClipService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "stash",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initCrypto(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("stash service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down stash service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("stash service stopped")
	return nil
}

// initCrypto builds the hasher from the configured salt and loads the
// session signing key.
func (app *Application) initCrypto() error {
	salt, err := cryptox.ParseSalt(app.cfg.ArgonSalt)
	if err != nil {
		return fmt.Errorf("ARGON_SALT: %w", err)
	}
	app.hasher = cryptox.NewHasher(salt)

	key, err := LoadSigningKey(app.cfg.SigningKeyFile, app.logger)
	if err != nil {
		return fmt.Errorf("failed to load signing key: %w", err)
	}

	app.signer, err = jwtx.NewSessionSigner(key)
	if err != nil {
		return fmt.Errorf("failed to create session signer: %w", err)
	}
	return nil
}

// initDatabase opens the configured store and applies migrations.
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStore(ctx, app.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", DriverFor(app.cfg.DatabaseURL))
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.accountService = &service.AccountService{
		Store:  app.db,
		Hasher: app.hasher,
	}
	app.sessionService = &service.SessionService{
		Signer: app.signer,
		TTL:    app.cfg.SessionTTL,
	}
	app.clipService = &service.ClipService{
		Store: app.db,
		Vault: cryptox.NewVault(app.hasher),
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	cookie := httpx.CookieConfig{
		Name:   stashsdk.SessionCookieName,
		Secure: app.cfg.SecureCookies(),
	}
	if !cookie.Secure {
		app.logger.Warn("session cookies are sent without the Secure flag")
	}

	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		cookie,
		app.cfg.RateLimits,
		app.logger,
	)

	// Wire services to router
	router.AccountService = app.accountService
	router.SessionService = app.sessionService
	router.ClipService = app.clipService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/blogem/privacy-toolkit/authenticator"
	"github.com/blogem/privacy-toolkit/config"
	"github.com/blogem/privacy-toolkit/controllers"
	"github.com/blogem/privacy-toolkit/database"
	"github.com/blogem/privacy-toolkit/logger"
	authmiddleware "github.com/blogem/privacy-toolkit/middleware"
	"github.com/blogem/privacy-toolkit/repositories"
	"github.com/blogem/privacy-toolkit/services"
	"github.com/blogem/privacy-toolkit/storage"
	"github.com/blogem/privacy-toolkit/userctx"
)

// sessionLifetime keeps a visitor's consent subject stable across visits
const sessionLifetime = 30 * 24 * 60 * 60

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger().WithError(err).Fatal("Failed to load the env vars")
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	policy, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		logger.Logger().WithError(err).Fatal("Failed to load policy")
	}

	store, closeStore, err := openStorage(cfg)
	if err != nil {
		logger.Logger().WithError(err).Fatal("Failed to initialize storage")
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var provider authenticator.Provider
	if cfg.OIDC.Enabled() {
		provider, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDC.Domain,
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			CallbackURL:  cfg.OIDC.CallbackURL,
		})
		if err != nil {
			logger.Logger().WithError(err).Fatal("Failed to initialize OpenID provider")
		}
	} else {
		logger.Logger().Warn("No OIDC provider configured, back-office routes are not protected")
	}

	repos := repositories.NewRepositories(store)
	srvs := services.NewServices(repos, policy, services.SystemClock())
	ctrl := controllers.NewControllers(srvs, repos.Audit, provider)

	router, err := setupRouter(ctrl, repos.Audit, cfg.UseHTTPS)
	if err != nil {
		logger.Logger().WithError(err).Fatal("Failed to setup router")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Logger().WithError(err).Error("Graceful shutdown failed")
		}
	}()

	logger.Logger().WithFields(logrus.Fields{
		"port":    cfg.Port,
		"storage": cfg.StorageDriver,
	}).Info("Privacy toolkit starting")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Logger().WithError(err).Fatal("Server stopped")
	}
}

// openStorage creates the configured storage adapter and its cleanup function
func openStorage(cfg config.Config) (storage.Adapter, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return storage.NewMemoryAdapter(), func() {}, nil
	case config.StorageSQLite:
		db, err := database.InitializeDatabase(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				logger.Logger().WithError(err).Error("Failed to close database")
			}
		}
		return storage.NewSQLiteAdapter(db, cfg.StorageNamespace), closeDB, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auditRepo repositories.AuditRepository, useSecureCookies bool) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	// Session middleware; the session ID is the consent subject
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "privacy_session",
		Secure:         useSecureCookies, // Set to true when USE_HTTPS=true (production)
		Gclifetime:     3600,
		Maxlifetime:    sessionLifetime,
		CookieLifeTime: sessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"service": "privacy-toolkit", "login": %t}`, ctrl.Auth.Enabled())
	})
	r.Get("/login", ctrl.Auth.Login)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "privacy-toolkit"}`)
	})

	r.Route("/api", func(r chi.Router) {
		// Consent is scoped to the visitor's session
		r.Route("/consent", func(r chi.Router) {
			r.Get("/options", ctrl.Consent.Options)
			r.Get("/", ctrl.Consent.Get)
			r.Post("/", ctrl.Consent.Save)
			r.Delete("/", ctrl.Consent.Delete)
			r.Post("/accept-all", ctrl.Consent.AcceptAll)
			r.Post("/reject-all", ctrl.Consent.RejectAll)
			r.Get("/history", ctrl.Consent.History)
			r.Get("/renewal", ctrl.Consent.Renewal)
		})

		r.With(authmiddleware.AuditLogger(auditRepo)).Post("/dsr", ctrl.DSR.Create)
		r.Get("/dpia/questions", ctrl.DPIA.Questions)
		r.Post("/dpia/score", ctrl.DPIA.Score)

		// BACK-OFFICE ROUTES (authentication required when a provider is configured)
		r.Group(func(r chi.Router) {
			if ctrl.Auth.Enabled() {
				r.Use(authmiddleware.RequireAuth)
			} else {
				r.Use(authmiddleware.LocalUser(userctx.User{ID: "local", Name: "local"}))
			}
			r.Use(authmiddleware.AuditLogger(auditRepo))

			// Flat patterns: POST /api/dsr is registered on the public router
			r.Get("/dsr", ctrl.DSR.Index)
			r.Get("/dsr/overdue", ctrl.DSR.Overdue)
			r.Get("/dsr/stats", ctrl.DSR.Statistics)
			r.Get("/dsr/{id}", ctrl.DSR.Show)
			r.Patch("/dsr/{id}", ctrl.DSR.Update)
			r.Put("/dsr/{id}/status", ctrl.DSR.UpdateStatus)
			r.Post("/dsr/{id}/reject", ctrl.DSR.Reject)
			r.Post("/dsr/{id}/verify", ctrl.DSR.Verify)
			r.Post("/dsr/{id}/notes", ctrl.DSR.AddNote)

			r.Route("/breaches", func(r chi.Router) {
				r.Get("/", ctrl.Breach.Index)
				r.Post("/", ctrl.Breach.Create)
				r.Get("/{id}", ctrl.Breach.Show)
				r.Patch("/{id}", ctrl.Breach.Update)
				r.Put("/{id}/status", ctrl.Breach.UpdateStatus)
				r.Get("/{id}/assessments", ctrl.Breach.Assessments)
				r.Post("/{id}/assessments", ctrl.Breach.AddAssessment)
				r.Get("/{id}/notifications", ctrl.Breach.Notifications)
				r.Post("/{id}/notifications", ctrl.Breach.AddNotification)
				r.Get("/{id}/notification-status", ctrl.Breach.NotificationStatus)
			})

			r.Route("/dpia/assessments", func(r chi.Router) {
				r.Get("/", ctrl.DPIA.Index)
				r.Post("/", ctrl.DPIA.Create)
				r.Get("/{id}", ctrl.DPIA.Show)
				r.Delete("/{id}", ctrl.DPIA.Delete)
			})

			r.Get("/audit", ctrl.Audit.Index)
		})
	})

	return r, nil
}

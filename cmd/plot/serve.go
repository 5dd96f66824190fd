package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/auth"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/config"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/middleware"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/service"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/pkg/plotv1/plotv1connect"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Connect RPC server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.Database.Path)

	if cfg.Auth.JWTSecret == config.DevJWTSecret {
		logger.Warn("Using the development JWT secret; set PLOT_AUTH_JWT_SECRET in production")
	}

	handler, err := newHandler(store, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(corsMiddleware(handler), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newHandler wires every service, the metrics endpoint and static files into one mux.
func newHandler(store storage.Store, reg *prometheus.Registry) (http.Handler, error) {
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := service.RegisterMetrics(reg); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store, cfg.Auth.BcryptCost)

	metrics := middleware.MetricsInterceptor(reg)
	logging := middleware.LoggingInterceptor(logger)
	authed := connect.WithInterceptors(metrics, middleware.RequireAuth(jwtManager), logging)

	mux := http.NewServeMux()
	mux.Handle(plotv1connect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, store, logger),
		connect.WithInterceptors(metrics, middleware.OptionalAuth(jwtManager), logging),
	))
	mux.Handle(plotv1connect.NewHouseholdServiceHandler(service.NewHouseholdService(store, logger), authed))
	mux.Handle(plotv1connect.NewSeedServiceHandler(service.NewSeedService(store, logger), authed))
	mux.Handle(plotv1connect.NewPaycycleServiceHandler(service.NewPaycycleService(store, logger), authed))

	if cfg.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	if cfg.Server.StaticPath != "" {
		staticDir, err := filepath.Abs(cfg.Server.StaticPath)
		if err != nil {
			return nil, fmt.Errorf("resolve static path: %w", err)
		}
		logger.Info("Serving static files", "path", staticDir)
		mux.Handle("/", staticHandler(staticDir))
	}
	return mux, nil
}

// staticHandler serves files from dir, falling back to index.html for unknown
// paths so client-side routes load the app.
func staticHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/plot.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(dir, filepath.Clean("/"+urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

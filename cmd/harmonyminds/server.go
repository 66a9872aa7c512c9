package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"harmonyminds/internal/backend"
	"harmonyminds/internal/config"
	"harmonyminds/internal/logging"
	"harmonyminds/internal/session"
	"harmonyminds/internal/shell"
	"harmonyminds/internal/web"
)

const shutdownTimeout = 10 * time.Second

func run(opts options) error {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		return err
	}
	if opts.Port > 0 {
		if err := os.Setenv("PORT", strconv.Itoa(opts.Port)); err != nil {
			return fmt.Errorf("set PORT: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.SetGlobalLogger(logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}))

	store := shell.NewStore(shell.StoreConfig{
		IdleTTL:        cfg.Session.IdleTTL,
		MaxSessions:    cfg.Session.MaxSessions,
		BackendTimeout: cfg.Backend.Timeout,
	})

	app, err := web.New(web.Options{
		Store:        store,
		Tokens:       session.NewCodec(cfg.Session.Secret),
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.CookieSecure,
		BackendURL:   cfg.Backend.APIURL,
		BackendPort:  cfg.Backend.Port,
		PageHosts:    cfg.Server.AllowedHosts,
	})
	if err != nil {
		return fmt.Errorf("build web app: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	}
	appURL := "http://" + browserHost(cfg.Server)

	probeBackend(ctx, cfg)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Str("url", appURL).Msg("Harmony Minds listening")
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return store.Run(ctx, 0)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("Shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if opts.Open {
		if err := browser.OpenURL(appURL); err != nil {
			log.Warn().Err(err).Msg("Could not open browser")
		}
	}

	return g.Wait()
}

// browserHost is the address a local browser should use to reach the server.
func browserHost(s config.ServerConfig) string {
	host := s.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return net.JoinHostPort(host, strconv.Itoa(s.Port))
}

// probeBackend reports whether the backend answers. The app starts either way.
func probeBackend(ctx context.Context, cfg *config.Config) {
	page := &url.URL{Scheme: "http", Host: "localhost"}
	base := backend.ResolveBaseURL(cfg.Backend.APIURL, cfg.Backend.Port, page)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := backend.NewClient(nil, base).Ping(ctx); err != nil {
		log.Warn().Err(err).Str("backend", base).Msg("Backend not reachable yet")
		return
	}
	log.Info().Str("backend", base).Msg("Backend reachable")
}

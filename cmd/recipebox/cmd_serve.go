package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"recipebox/internal/config"
	"recipebox/internal/handler"
	"recipebox/internal/hub"
	"recipebox/internal/service"
	"recipebox/internal/watcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveAddr string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and the SSE event stream",
	Long: `Serves the JSON API under /api and live session events under /events.

When a config file is in use it is watched, and changes to the search
settings (page size, title limit) apply without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	sseHub := hub.New(logger)

	// Connect event bus to SSE hub
	events := make(chan service.Event, 100)
	a.session.Bus().Subscribe(events)
	defer a.session.Bus().Unsubscribe(events)

	h := handler.New(a.services(), logger)
	server := &http.Server{
		Addr: addr,
		Handler: handler.NewRouter(h, handler.RouterOptions{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Events:         sseHub,
		}),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sseHub.Run(gctx)
	})

	g.Go(func() error {
		hub.Forward[service.Event](gctx, sseHub, events)
		return nil
	})

	if cfgSource != "" {
		w := watcher.New(cfgSource, watcher.ConfigReloader(func(c *config.Config) {
			a.search.SetSettings(service.SearchSettings{
				PageSize:   c.Search.PageSize,
				TitleLimit: c.Search.TitleLimit,
			})
		}, logger), logger)
		g.Go(func() error {
			return w.Watch(gctx)
		})
	}

	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

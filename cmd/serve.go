package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopcatalog/inquiry"
	"shopcatalog/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local JSON API over the vertical catalogs",
	Long: `Start a local HTTP server exposing the catalogs as JSON.

Each vertical and language keeps its loaded sheet for the lifetime of the
server; POST /api/verticals/{vertical}/refresh reloads it. Inquiries posted
to the API are logged.`,
	Example: `
  # Start on the configured port (default 8080)
  shopcatalog serve

  # Custom port
  shopcatalog serve --port 9090

  # Then
  curl 'http://localhost:8080/api/verticals/workwear/catalog?lang=en&sort=name-asc'
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.logger.Sync() }()

		port := servePort
		if !cmd.Flags().Changed("port") {
			port = a.cfg.Server.Port
		}

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           a.handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		fmt.Printf("Listening on http://localhost:%d\n", port)
		a.logger.Info("server started", zap.Int("port", port))

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-sigCh:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			err := <-errCh
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
	},
}

func (a *app) handler() http.Handler {
	dispatcher := inquiry.NewDispatcher()
	dispatcher.Subscribe(inquiry.LogHandler(a.logger))

	return web.NewServer(web.Options{
		Resolvers:       a.resolver,
		Dispatcher:      dispatcher,
		Logger:          a.logger,
		DefaultLanguage: a.language(""),
	})
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP port (default from config server.port)")
}

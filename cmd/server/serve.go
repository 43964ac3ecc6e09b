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

	_ "resource-hub/docs"
	"resource-hub/internal/api"
	"resource-hub/internal/database"
	"resource-hub/internal/resources"
	"resource-hub/internal/storage"
	"resource-hub/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var addr string

	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			log := logrus.WithField("component", "main")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			dbpool, err := pgxpool.New(ctx, cfg.DB.Source)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer dbpool.Close()

			if err := dbpool.Ping(ctx); err != nil {
				return fmt.Errorf("failed to ping database: %w", err)
			}
			log.Info("connected to database")

			localStorage, err := storage.NewLocalStorage(cfg.Storage.Path)
			if err != nil {
				return fmt.Errorf("failed to initialise storage: %w", err)
			}
			log.WithField("path", cfg.Storage.Path).Info("file payloads stored on disk")

			entry := logrus.NewEntry(logrus.StandardLogger())
			wsHub := websocket.NewHub(entry)
			go wsHub.Run()

			store := database.NewStore(dbpool)
			svc, err := resources.NewService(store, localStorage, wsHub, entry)
			if err != nil {
				return err
			}
			server := api.NewServer(cfg, store, svc, wsHub, entry)

			httpServer := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           server.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.WithField("addr", cfg.Server.Addr).Info("starting server")
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				log.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return err
				}
			}
			return nil
		},
	}

	command.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return command
}

package main

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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/NickMcConnell/FAangband-sub006/internal/bootstrap"
	"github.com/NickMcConnell/FAangband-sub006/internal/database"
	"github.com/NickMcConnell/FAangband-sub006/internal/database/postgres"
	"github.com/NickMcConnell/FAangband-sub006/internal/design"
	"github.com/NickMcConnell/FAangband-sub006/internal/naming"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
	"github.com/NickMcConnell/FAangband-sub006/internal/repository"
	"github.com/NickMcConnell/FAangband-sub006/internal/repository/jsonfile"
	"github.com/NickMcConnell/FAangband-sub006/internal/server"
)

var serveStore string

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP design service",
	RunE: func(cmd *cobra.Command, args []string) error {
		namer, err := naming.NewNamer(cfg.WordsPath)
		if err != nil {
			return fmt.Errorf("failed to load name words: %w", err)
		}
		svc := design.NewService(registry.Kinds(), namer)

		var repo repository.Run
		var pool *pgxpool.Pool
		switch serveStore {
		case "postgres":
			pool, err = database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns,
				cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			repo = postgres.NewRunRepository(pool, registry.Kinds())
		case "jsonfile":
			repo, err = jsonfile.NewStore(cfg.OutputDir, registry.Kinds())
			if err != nil {
				return fmt.Errorf("failed to open output store: %w", err)
			}
		default:
			return fmt.Errorf("unknown store %q (want jsonfile or postgres)", serveStore)
		}

		var dbPool database.Pool
		if pool != nil {
			dbPool = pool
		}
		srv := server.NewServer(cfg.Port, nil, dbPool, svc, registry.Kinds(), repo)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case sig := <-quit:
			slog.Info("Signal received", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
			Server: srv,
			DBPool: pool,
		})
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveStore, "store", "jsonfile", "run sink: jsonfile or postgres")
}

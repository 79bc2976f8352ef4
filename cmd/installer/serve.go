package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/InstallGate/pkg/config"
	"github.com/NeuralTrust/InstallGate/pkg/dependency_container"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/channel"
	"github.com/NeuralTrust/InstallGate/pkg/infra/cache/event"
	"github.com/NeuralTrust/InstallGate/pkg/infra/database"
	"github.com/NeuralTrust/InstallGate/pkg/server"
	"github.com/NeuralTrust/InstallGate/pkg/server/router"
	"github.com/NeuralTrust/InstallGate/pkg/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the install HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			logger.WithField("version", version.Version).Info("starting installgate")

			db, err := database.NewDB(logger, databaseConfig(cfg))
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.WithError(err).Error("failed to close database")
				}
			}()

			container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
				Cfg:            cfg,
				Logger:         logger,
				DB:             db,
				Fs:             afero.NewOsFs(),
				EventsRegistry: event.Registry,
				EventsChannel:  channel.InstallEventsChannel,
			})
			if err != nil {
				return fmt.Errorf("failed to initialize container: %w", err)
			}

			srv := server.NewInstallServer(server.InstallServerDI{
				Config: cfg,
				Logger: logger,
				Routers: []router.ServerRouter{
					router.NewInstallRouter(container.MiddlewareTransport, container.HandlerTransport, cfg.Server.SwaggerURL),
				},
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				container.RedisListener.Listen(ctx, channel.InstallEventsChannel)
				return nil
			})
			g.Go(srv.Run)
			g.Go(func() error {
				<-ctx.Done()
				logger.Info("shutting down install server")
				return srv.Shutdown()
			})

			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			logger.Info("installgate stopped")
			return nil
		},
	}
}

func databaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}
}

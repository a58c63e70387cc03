package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/relops-lab/glgate/pkg/cli/config"
	controller "github.com/relops-lab/glgate/pkg/controller/http"
	"github.com/relops-lab/glgate/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		gitlabCfg config.GitLab
	)

	flags := joinFlags(
		serverCfg.Flags(),
		gitlabCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Get logger from root command metadata
			logger := ctxlog.From(ctx)

			logger.Info("Starting glgate server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("gitlab", gitlabCfg),
			)

			// Create GitLab client using config
			client := gitlabCfg.Configure()

			// Create use cases
			membershipUC := usecase.NewMembership(client)
			itemsUC := usecase.NewItems(client, usecase.WithMaxPages(gitlabCfg.MaxPages))

			// Create HTTP server
			server := controller.NewServer(ctx, serverCfg.Addr, membershipUC, itemsUC)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

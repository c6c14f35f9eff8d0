package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/umlindi-lab/wardrisk/pkg/cli/config"
	httpctrl "github.com/umlindi-lab/wardrisk/pkg/controller/http"
	"github.com/umlindi-lab/wardrisk/pkg/service/notify"
	"github.com/umlindi-lab/wardrisk/pkg/service/worker"
	"github.com/umlindi-lab/wardrisk/pkg/usecase"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var catalogCfg config.Catalog
	var repoCfg config.Repository
	var storageCfg config.Storage
	var smtpCfg config.SMTP
	var slackCfg config.Slack
	var authCfg config.Auth
	var wardsCfg config.Wards

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("WARDRISK_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, smtpCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)
	flags = append(flags, wardsCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}
			logging.Default().Info("Catalog loaded",
				"variant", catalog.Variant,
				"hazards", len(catalog.Hazards))

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			store, err := storageCfg.Configure(catalog.Variant)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize artifact store")
			}

			ucOpts := []usecase.Option{
				usecase.WithAuth(authCfg.Configure(repo)),
			}

			if authCfg.IsConfigured() {
				logging.Default().Info("Login gate enabled")
			} else {
				logging.Default().Warn("Login gate disabled, survey endpoints are open")
			}

			if smtpCfg.IsConfigured() {
				notifier, err := smtpCfg.Configure()
				if err != nil {
					return goerr.Wrap(err, "failed to configure SMTP")
				}

				notifyOpts := []notify.Option{}
				if slackCfg.IsConfigured() {
					notifyOpts = append(notifyOpts, notify.WithSlack(slackCfg.OAuthToken(), slackCfg.Channel()))
					logging.Default().Info("Slack notifications enabled", "channel", slackCfg.Channel())
				}

				ucOpts = append(ucOpts, usecase.WithNotify(notify.New(notifier, smtpCfg.AdminEmails(), notifyOpts...)))
				logging.Default().Info("Mail notifications enabled", "admins", len(smtpCfg.AdminEmails()))
			} else {
				logging.Default().Info("SMTP not configured, submission notifications disabled")
			}

			if wardsCfg.IsConfigured() {
				resolver, err := wardsCfg.Configure()
				if err != nil {
					return goerr.Wrap(err, "failed to load ward boundaries")
				}
				ucOpts = append(ucOpts, usecase.WithWards(resolver))
				logging.Default().Info("Ward boundaries loaded", "wards", len(resolver.Wards()))
			} else {
				logging.Default().Info("Ward boundaries not configured, map resolution disabled")
			}

			uc := usecase.New(repo, catalog, store, ucOpts...)

			// Start the retention worker unless pruning is disabled
			var retention *worker.RetentionWorker
			if age := storageCfg.RetentionAge(); age > 0 {
				retention = worker.NewRetentionWorker(storageCfg.OutputDir(), age, time.Hour)
				if err := retention.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start retention worker")
				}
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if retention != nil {
					retention.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

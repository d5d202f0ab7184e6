package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/secmon-lab/controltower/pkg/cli/config"
	httpctrl "github.com/secmon-lab/controltower/pkg/controller/http"
	"github.com/secmon-lab/controltower/pkg/service/worker"
	"github.com/secmon-lab/controltower/pkg/usecase"
	"github.com/secmon-lab/controltower/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var srvCfg config.Server
	var slackCfg config.Slack
	b := newBackend()

	flags := srvCfg.Flags()
	flags = append(flags, b.flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			var ucOpts []usecase.Option

			registry := prometheus.NewRegistry()
			if srvCfg.MetricsEnabled() {
				registry.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				ucOpts = append(ucOpts, usecase.WithMetrics(usecase.NewMetrics(registry)))
			}

			notifier, err := slackCfg.Configure(srvCfg.BaseURL())
			if err != nil {
				return goerr.Wrap(err, "failed to configure slack notifications")
			}
			if notifier != nil {
				ucOpts = append(ucOpts, usecase.WithNotifier(notifier))
				logging.Default().Info("Slack notifications enabled", "slack", slackCfg)
			} else {
				logging.Default().Info("Slack Bot Token not configured, mitigation notifications disabled")
			}

			repo, uc, err := b.build(ctx, ucOpts...)
			if err != nil {
				return err
			}

			httpOpts := []httpctrl.Options{
				httpctrl.WithBaseURL(srvCfg.BaseURL()),
			}
			if srvCfg.MetricsEnabled() {
				httpOpts = append(httpOpts, httpctrl.WithMetrics(registry))
			}

			server := &http.Server{
				Addr:              srvCfg.Addr(),
				Handler:           httpctrl.New(uc, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if interval := b.repoCfg.RefreshInterval(); interval > 0 {
				refresher := worker.NewSeedRefreshWorker(repo, b.repoCfg.Loader(b.now), interval)
				if err := refresher.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start seed refresh worker")
				}
				defer refresher.Stop()
			}

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "server", srvCfg)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server", goerr.V("addr", srvCfg.Addr()))
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}

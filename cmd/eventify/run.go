package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/eventify-go/eventify/internal/collector"
	"github.com/eventify-go/eventify/internal/config"
	"github.com/eventify-go/eventify/internal/logging"
	"github.com/eventify-go/eventify/internal/manager"
	"github.com/eventify-go/eventify/internal/nodeclient"
	"github.com/eventify-go/eventify/internal/queue"
	"github.com/eventify-go/eventify/internal/server"
	"github.com/eventify-go/eventify/internal/storage"
)

// shutdownGrace is the forced-exit grace period granted by the process
// entry before shutdown, per §5.
const shutdownGrace = 6 * time.Second

const maxConnectRetries = 5

func runCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the ingestion and propagation pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the TOML configuration file")
	return cmd
}

func runPipeline(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.OnlyMigrations {
		return runMigrate(cmd, configPath)
	}

	lg, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	trace, err := logging.NewTrace()
	if err != nil {
		return err
	}
	defer trace.Sync()

	ctx, cancel := context.WithCancel(context.Background())

	storeSink, err := storage.New(ctx, cfg.DatabaseURL, lg)
	if err != nil {
		cancel()
		return err
	}
	defer storeSink.Close()

	queueSink, err := queue.New(cfg.QueueURL)
	if err != nil {
		cancel()
		return err
	}
	defer queueSink.Close()

	enabled, err := cfg.EnabledNetworks()
	if err != nil {
		cancel()
		return err
	}
	blocks, txs, logs := cfg.CollectSet()

	var wg sync.WaitGroup
	for _, tag := range enabled {
		nodeURL := cfg.Network[tag.String()].NodeURL

		node, err := nodeclient.Connect(ctx, nodeURL, maxConnectRetries, trace)
		if err != nil {
			lg.WithError(err).WithField("network", tag.String()).Error("failed to connect to node")
			continue
		}

		c := collector.New(tag, node, storeSink, queueSink, lg)
		m := manager.New(tag, c, lg)

		wg.Add(1)
		go func(tag string) {
			defer wg.Done()
			m.Run(ctx, manager.Resources{Blocks: blocks, Transactions: txs, Logs: logs})
		}(tag.String())
	}

	var pool *pgxpool.Pool
	var httpServer *server.Server
	if cfg.Server != nil {
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			lg.WithError(err).Error("failed to open read-server pool")
		} else {
			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			httpServer = server.New(addr, pool)
			go func() {
				if err := httpServer.Start(); err != nil {
					lg.WithError(err).Error("read server stopped")
				}
			}()
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	lg.WithField("signal", s.String()).Info("shutdown signal received")

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(shutdownGrace):
		lg.Warn("shutdown grace period elapsed, forcing exit")
	}

	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownGrace)
		_ = httpServer.Shutdown(shutdownCtx)
		shutdownCancel()
	}
	if pool != nil {
		pool.Close()
	}

	return nil
}

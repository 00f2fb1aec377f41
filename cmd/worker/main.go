// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/angelamos/accounts-api/internal/admin"
	"github.com/angelamos/accounts-api/internal/config"
	"github.com/angelamos/accounts-api/internal/core"
	"github.com/angelamos/accounts-api/internal/events"
	"github.com/angelamos/accounts-api/internal/jobs"
	"github.com/angelamos/accounts-api/internal/user"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("worker error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting worker",
		"name", cfg.App.Name,
		"environment", cfg.App.Environment,
	)

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redis.Close()

	emitter := events.NewRedisEmitter(redis.Client, logger)

	adminExporter := admin.NewExporter(
		admin.NewRepository(db.DB), emitter, cfg.Jobs.ExportDir, logger,
	)
	userExporter := user.NewExporter(
		user.NewRepository(db.DB), emitter, cfg.Jobs.ExportDir, logger,
	)

	redisOpt, err := asynq.ParseRedisURI(cfg.Redis.URL)
	if err != nil {
		return err
	}

	// Concurrency 1 keeps jobs within a queue strictly serial.
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
		Queues: map[string]int{
			jobs.QueueAdmin: 1,
			jobs.QueueUser:  1,
		},
	})

	mux := asynq.NewServeMux()
	mux.Handle(jobs.TypeAdminExport, adminExporter)
	mux.Handle(jobs.TypeUserExport, userExporter)

	if err := srv.Start(mux); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutdown signal received, draining queues")

	srv.Shutdown()

	logger.Info("worker stopped")
	return nil
}

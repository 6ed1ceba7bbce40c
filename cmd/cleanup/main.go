// Command cleanup runs the nightly cleanup sweep once and exits. It is meant
// for a host cron; the HTTP route POST /api/cron/cleanup does the same work.
package main

import (
	"context"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/BruksfildServices01/barber-booking/internal/archive"
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/cleanup"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.NewWithOptions(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	if !cfg.UsesDatabase() {
		logger.Error("DATABASE_URL is required for the cleanup command")
		os.Exit(2)
	}

	db := dbpkg.NewDB(cfg)
	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)

	var archiver cleanup.Archiver
	if cfg.ArchiveEnabled() {
		archiver = archive.NewStore(
			archive.NewS3Client(archive.ClientOptions{
				Region:          cfg.ArchiveRegion,
				Endpoint:        cfg.ArchiveEndpoint,
				AccessKeyID:     cfg.AWSAccessKeyID,
				SecretAccessKey: cfg.AWSSecretAccessKey,
			}),
			cfg.ArchiveBucket,
			logger,
		)
	}

	uc := cleanup.NewRunCleanup(
		infraRepo.NewCleanupGormRepository(db),
		archiver,
		auditDispatcher,
		nil,
		logger,
		timezone.Business(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := uc.Execute(ctx)
	auditDispatcher.Close()

	if err != nil {
		logger.Error("cleanup failed", "error", err, "deleted", res.Total())
		os.Exit(1)
	}
	logger.Info("cleanup done", "deleted", res.Total())
}

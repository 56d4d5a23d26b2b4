package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airline-data-generator/internal/config"
	"airline-data-generator/internal/domain"
	"airline-data-generator/internal/generator"
	"airline-data-generator/internal/progress"
	"airline-data-generator/internal/repository"
	"airline-data-generator/internal/sender"
	"airline-data-generator/internal/service"
	"airline-data-generator/internal/validator"

	log "github.com/sirupsen/logrus"
)

const (
	exitOK            = 0
	exitConfiguration = 1
	exitStorage       = 2
	exitGeneration    = 3
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("Could not load configuration")
		return exitCode(err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, keeping info")
	}
	if err := validator.ValidateConfig(cfg); err != nil {
		log.WithError(err).Error("Invalid configuration")
		return exitCode(err)
	}

	log.WithFields(log.Fields{
		"driver":     cfg.StorageDriver,
		"collection": cfg.Collection,
		"documents":  cfg.NumDocs,
		"batch_size": cfg.BatchSize,
		"seed":       cfg.Seed,
	}).Info("Generating airline data")

	log.Info("Get database connection")
	repo, err := repository.Open(ctx, cfg.Storage())
	if err != nil {
		log.WithError(err).Error("Could not connect to storage")
		return exitCode(err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			log.WithError(err).Warn("Could not close storage cleanly")
		}
	}()

	log.Info("Initialize database")
	if err := repo.DropCollection(ctx, cfg.Collection); err != nil {
		log.WithError(err).Error("Could not reset collection")
		return exitCode(err)
	}

	newBuilder := func(worker int) service.DocumentBuilder {
		return generator.NewBuilder(generator.NewFields(cfg.Seed+int64(worker), nil))
	}
	reporter := progress.NewLogReporter(log.StandardLogger())
	loader := service.NewLoader(newBuilder, repo, reporter, service.Options{
		Collection:        cfg.Collection,
		FlushPartialBatch: cfg.FlushPartialBatch,
		InsertTimeout:     cfg.InsertTimeout,
		Workers:           cfg.Workers,
	})

	if cfg.NumDocs == 0 {
		log.Info("Nothing to generate")
		return exitOK
	}

	reporter.Started(cfg.NumDocs)
	summary, err := loader.Run(ctx, cfg.NumDocs, cfg.BatchSize)
	if err != nil {
		log.WithError(err).Error("Load run failed")
		return exitCode(err)
	}
	reporter.Completed(summary)

	if cfg.ReportEnabled() {
		smtpSender := sender.NewSMTPEmailSender(sender.SMTPSettings{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.MailFrom,
		})
		sender.NewReportNotifier(smtpSender, cfg.ReportEmail).Notify(ctx, summary)
	}
	return exitOK
}

// exitCode maps an error kind to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrConfiguration):
		return exitConfiguration
	case errors.Is(err, domain.ErrGeneration):
		return exitGeneration
	default:
		return exitStorage
	}
}

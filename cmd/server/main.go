// Command server runs the FieldBase API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sue-zadeh/fieldbase/internal/application/service"
	"github.com/sue-zadeh/fieldbase/internal/config"
	domainservice "github.com/sue-zadeh/fieldbase/internal/domain/service"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/cache"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/mail"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/monitoring"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/redis"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/secrets"
	"github.com/sue-zadeh/fieldbase/internal/interfaces/http/handlers"
	"github.com/sue-zadeh/fieldbase/internal/interfaces/http/middleware"
	"github.com/sue-zadeh/fieldbase/internal/interfaces/http/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fieldbase:", err)
		os.Exit(1)
	}
}

func run() error {
	bootstrapLog, err := monitoring.NewZapLogger(config.LogConfig{Level: "info"})
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(bootstrapLog)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := monitoring.NewZapLogger(cfg.Log)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Secrets from Vault override the config file when configured.
	if cfg.Vault.Enabled() {
		source, err := secrets.NewVaultSource(cfg.Vault, log)
		if err != nil {
			return fmt.Errorf("vault: %w", err)
		}
		if err := source.ResolveInto(ctx, cfg); err != nil {
			return fmt.Errorf("vault secrets: %w", err)
		}
	}

	db, err := postgres.NewDBConnection(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	redisClient := redis.NewClient(cfg.Redis)
	defer redisClient.Close()

	metrics := monitoring.NewMetrics()
	tracing, err := monitoring.NewTracingManager(cfg.Tracing, log)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	auditor := audit.NewKafkaPublisher(cfg.Audit, log)
	defer auditor.Close()

	// Repositories.
	projectRepo := postgres.NewProjectRepository(db, log)
	activityRepo := postgres.NewActivityRepository(db, log)
	userRepo := postgres.NewUserRepository(db, log)
	volunteerRepo := postgres.NewVolunteerRepository(db, log)
	catalogRepo := postgres.NewCatalogRepository(db, log)
	predatorRepo := postgres.NewPredatorRepository(db, log)
	riskCatalogRepo := postgres.NewRiskCatalogRepository(db, log)
	riskRepo := postgres.NewRiskRepository(db, log)
	assignmentRepo := postgres.NewAssignmentRepository(db, log)

	// Domain and application services.
	tokens := domainservice.NewTokenService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.AccessTokenTTL)*time.Second)
	blacklist := redis.NewTokenBlacklist(redisClient)
	mailer := mail.NewSMTPMailer(cfg.SMTP, log)
	titleCache := cache.NewTitleCache(riskCatalogRepo, 5*time.Minute)

	riskSvc := service.NewRiskAppService(riskCatalogRepo, riskRepo, titleCache, metrics, auditor, log)
	assignmentSvc := service.NewAssignmentAppService(assignmentRepo, metrics, auditor, log)
	projectSvc := service.NewProjectAppService(projectRepo, activityRepo, auditor, log)
	peopleSvc := service.NewPeopleAppService(userRepo, volunteerRepo, auditor, log)
	catalogSvc := service.NewCatalogAppService(catalogRepo, predatorRepo, auditor, log)
	authSvc := service.NewAuthAppService(
		userRepo, tokens, blacklist,
		redis.NewResetStore(redisClient),
		time.Duration(cfg.Auth.ResetTokenTTL)*time.Second,
		mailer, metrics, auditor, log,
	)

	h := router.Handlers{
		Health:      handlers.NewHealthHandler(db, redisClient, log),
		Auth:        handlers.NewAuthHandler(authSvc),
		Risks:       handlers.NewRiskHandler(riskSvc),
		Assignments: handlers.NewAssignmentHandler(assignmentSvc),
		Projects:    handlers.NewProjectHandler(projectSvc),
		People:      handlers.NewPeopleHandler(peopleSvc),
		Catalogs:    handlers.NewCatalogHandler(catalogSvc),
	}

	rt := router.New(cfg, log, h,
		middleware.RequireAuth(tokens, blacklist, log),
		middleware.Observability(tracing, metrics, log),
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return rt.Start(groupCtx)
	})

	err = group.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if terr := tracing.Shutdown(shutdownCtx); terr != nil && err == nil {
		err = terr
	}
	return err
}

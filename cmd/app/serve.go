package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/football-registration/internal/auth"
	"github.com/bagdasarian/football-registration/internal/db"
	"github.com/bagdasarian/football-registration/internal/directory"
	"github.com/bagdasarian/football-registration/internal/handler"
	"github.com/bagdasarian/football-registration/internal/handler/server"
	"github.com/bagdasarian/football-registration/internal/repository/postgres"
	redisrepo "github.com/bagdasarian/football-registration/internal/repository/redis"
	"github.com/bagdasarian/football-registration/internal/scheduler"
	"github.com/bagdasarian/football-registration/internal/service"
	"github.com/bagdasarian/football-registration/migrations"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const resetJobTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reset scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on startup")

	return cmd
}

func serve(parent context.Context, skipMigrations bool) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	database := db.MustLoad(ctx, cfg)
	defer database.Close()
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("connected to database")

	if !skipMigrations {
		if err := db.Migrate(database, migrations.FS); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	redisClient, err := redisrepo.NewClient(redisrepo.Config{URL: cfg.Redis.URL})
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	clock := clockwork.NewRealClock()
	services := buildServices(database, clock)
	sessionRepo := redisrepo.NewTeamSessionRepository(redisClient, cfg.Redis.SessionTTL)
	rosterService := service.NewRosterService(postgres.NewRegistrantRepository(database), sessionRepo, clock)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clock)
	h := handler.NewHandler(
		services.registration,
		services.removal,
		services.feedback,
		services.adminLog,
		rosterService,
		cfg.Auth.ResetSecret,
	)
	srv := server.NewServer(server.NewRouter(server.RouterConfig{
		Handler:        h,
		Tokens:         tokens,
		AllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}), cfg.HTTP.Addr)

	sched, err := scheduler.New()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	if _, err := sched.RegisterReset(cfg.Scheduler.ResetCron, services.registration, resetJobTimeout); err != nil {
		return fmt.Errorf("register reset job: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sched.Start()
		<-ctx.Done()
		return sched.Stop()
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server terminated with error")
		return err
	}
	return nil
}

type appServices struct {
	registration service.RegistrationService
	removal      service.RemovalService
	feedback     service.FeedbackService
	adminLog     service.AdminLogService
}

func buildServices(database *sql.DB, clock clockwork.Clock) appServices {
	registrantRepo := postgres.NewRegistrantRepository(database)
	banRepo := postgres.NewBanRepository(database)
	adminLogRepo := postgres.NewAdminLogRepository(database)
	feedbackRepo := postgres.NewFeedbackRepository(database)
	transactor := postgres.NewTransactor(database)

	return appServices{
		registration: service.NewRegistrationService(
			registrantRepo, banRepo, transactor, directory.NewClient(cfg.Directory), clock,
		),
		removal:  service.NewRemovalService(registrantRepo, banRepo, transactor, clock),
		feedback: service.NewFeedbackService(feedbackRepo, adminLogRepo, clock),
		adminLog: service.NewAdminLogService(adminLogRepo),
	}
}

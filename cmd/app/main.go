// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"telegram-registration-bot/internal/application"
	"telegram-registration-bot/internal/config"
	pg "telegram-registration-bot/internal/infra/db/postgres"
	httpapi "telegram-registration-bot/internal/infra/http"
	"telegram-registration-bot/internal/infra/i18n"
	"telegram-registration-bot/internal/infra/logging"
	"telegram-registration-bot/internal/infra/metrics"
	red "telegram-registration-bot/internal/infra/redis"
	tele "telegram-registration-bot/internal/infra/telegram"
	"telegram-registration-bot/internal/infra/worker"
	"telegram-registration-bot/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, no redaction)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("dev mode enabled")
	}
	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 10)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connect")
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}
	if err := pg.CheckEncoding(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("database encoding check")
	}

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connect")
	}
	defer redisClient.Close()
	turnLocker := red.NewTurnLocker(redisClient)

	// ---- Repositories ----
	stepRepo := pg.NewStepStateRepo(pool)
	draftRepo := pg.NewDraftRepo(pool)
	profileRepo := pg.NewProfileRepo(pool)
	catalogRepo := pg.NewCatalogRepoCacheDecorator(pg.NewCatalogRepo(pool), redisClient, cfg.Redis.TTL)
	txManager := pg.NewTxManager(pool)

	// ---- Translations ----
	translator, err := i18n.NewTranslator(i18n.LocalesFS, "ru")
	if err != nil {
		logger.Fatal().Err(err).Msg("translations")
	}

	// ---- Engine ----
	regUC := usecase.NewRegistrationUseCase(
		stepRepo, draftRepo, profileRepo, catalogRepo, txManager,
		translator, cfg.Registration, cfg.Bot.AdminPhones, logger,
	)
	facade := application.NewBotFacade(regUC, turnLocker, logger)

	// ---- Workers + Telegram ----
	updatePool := worker.NewKeyedPool(cfg.Bot.Workers)
	updatePool.Start(ctx)

	botAdapter, err := tele.NewRealTelegramBotAdapter(&cfg.Bot, facade, updatePool, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram")
	}
	if strings.ToLower(cfg.Bot.Mode) != "polling" && cfg.Bot.Mode != "" {
		logger.Warn().Str("mode", cfg.Bot.Mode).Msg("bot mode not implemented, falling back to polling")
	}
	go func() {
		if err := botAdapter.StartPolling(ctx); err != nil {
			logger.Error().Err(err).Msg("telegram polling stopped")
		}
	}()

	// ---- Ops HTTP server ----
	srv := httpapi.NewServer(&cfg.Admin, logger, map[string]httpapi.Pinger{
		"postgres": pool,
		"redis":    redisClient,
	})
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("ops server stopped")
		}
	}()

	// ---- Pool stats loop ----
	go func() {
		t := time.NewTicker(15 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				st := pool.Stat()
				metrics.SetDBPoolStats(st.TotalConns(), st.IdleConns(), st.AcquiredConns())
			}
		}
	}()

	logger.Info().Msg("registration bot started")

	// ---- Graceful shutdown ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info().Msg("shutting down")

	botAdapter.StopPolling()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("ops server shutdown")
	}
	updatePool.Stop()
}

package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skill-share.com/skill-share/internal/auth"
	config "skill-share.com/skill-share/internal/configs"
	httpapi "skill-share.com/skill-share/internal/http"
	"skill-share.com/skill-share/internal/ratelimit"
	repository "skill-share.com/skill-share/internal/repositories"
	"skill-share.com/skill-share/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the schema and starts the skill sharing HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := config.Migrate(db); err != nil {
			return err
		}

		var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute)
		if cfg.RateLimitBackend == config.RateLimitRedis {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer redisClient.Close()
			limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RedisKeyPrefix, cfg.RateLimit, time.Minute)
		}

		accountRepo := repository.NewAccountRepository(db)
		skillRepo := repository.NewSkillRepository(db)
		taskRepo := repository.NewTaskRepository(db)
		tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)

		handler := httpapi.NewHandler(
			services.NewAccountService(accountRepo, tokens, log),
			services.NewSkillService(accountRepo, skillRepo, log),
			services.NewTaskService(accountRepo, taskRepo, log),
			services.NewOfferService(accountRepo, skillRepo, taskRepo, log),
		)

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, handler, tokens, limiter, log)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("server stopped", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
		}

		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cediwise/backend/internal/assistant"
	"github.com/cediwise/backend/internal/config"
	v1 "github.com/cediwise/backend/internal/controllers/v1"
	"github.com/cediwise/backend/internal/llm"
	"github.com/cediwise/backend/internal/market"
	"github.com/cediwise/backend/internal/models"
	"github.com/cediwise/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// marketTimeout limits requests to exchange rate sources and scheduled refreshes.
const marketTimeout = 15 * time.Second

func main() {
	if err := config.Load(".env"); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(filepath.Join(cfg.DataDir, "gorm.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.Advisor.APIKey == "" {
		log.Warn().Msg("ANTHROPIC_API_KEY is not set, requests to the advisor will fail")
	}

	service := assistant.NewService(llm.NewAnthropic(llm.Config{
		APIKey:      cfg.Advisor.APIKey,
		BaseURL:     cfg.Advisor.BaseURL,
		Model:       cfg.Advisor.Model,
		MaxTokens:   cfg.Advisor.MaxTokens,
		Temperature: cfg.Advisor.Temperature,
		Timeout:     cfg.Advisor.Timeout,
	}))

	client := assistant.NewClient(service)
	client.MaxAttempts = cfg.Advisor.MaxAttempts
	if cfg.Advisor.Fallback {
		client.Fallback = service.Fallback
	}

	var source market.RateSource
	switch cfg.Market.RateSource {
	case config.RateSourceECB:
		source = market.NewECB(cfg.Market.RateURL, marketTimeout)
	default:
		source = market.NewExchangeRateAPI(cfg.Market.RateURL, marketTimeout)
	}

	rates, err := market.NewCachedSource(source, cfg.Market.CacheTTL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer rates.Close()

	marketService := &market.Service{
		Prices:       market.NewPrices(rand.NewSource(time.Now().UnixNano()), time.Now),
		Rates:        rates,
		Country:      market.ResolveCountry(cfg.Market.Country),
		BaseCurrency: cfg.Market.BaseCurrency,
		Now:          time.Now,
	}

	var scheduler *market.Scheduler
	if cfg.Market.RefreshSchedule != "" {
		scheduler, err = market.NewScheduler(cfg.Market.RefreshSchedule, marketTimeout, marketService.Refresh)
		if err != nil {
			log.Fatal().Str("schedule", cfg.Market.RefreshSchedule).Msg(err.Error())
		}
		scheduler.Start()
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(v1.Controller{
		Advisor: service,
		Client:  client,
		Market:  marketService,
	}, r.Group("/"), cfg.EnablePprof)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("address", srv.Addr).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown")
	}
}

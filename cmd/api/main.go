package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/postprocess"
	"server/internal/providers/render"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable, usage events will not carry country")
	}

	// Mock mode is decided once here. Everything downstream receives the
	// renderer and never reads the environment.
	var renderer render.Renderer = render.NewStaticRenderer()
	mockMode := true
	if cfg.OpenAIAPIKey != "" {
		openai, err := render.NewOpenAIRenderer(render.OpenAIOptions{
			APIKey:       cfg.OpenAIAPIKey,
			Model:        cfg.OpenAIModel,
			BaseURL:      cfg.OpenAIBaseURL,
			Organization: cfg.OpenAIOrg,
			OnFallback: func(reason string, err error) {
				logger.Warn().Err(err).Str("reason", reason).Msg("openai render fell back to static")
			},
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure openai renderer")
		}
		renderer = openai
		mockMode = false
		logger.Info().Str("model", cfg.OpenAIModel).Msg("openai rendering enabled")
	} else {
		logger.Info().Msg("no OPENAI_API_KEY set, running in mock mode")
	}

	app := &handlers.App{
		SQL:        infra.NewSQLRunner(dbpool, logger),
		Blueprints: repo.NewBlueprintRepository(dbpool),
		Recipes:    repo.NewRecipeRepository(dbpool),
		Jobs:       repo.NewContentJobRepository(dbpool),
		Campaigns:  repo.NewCampaignRepository(dbpool),
		Renderer:   renderer,
		Processor:  postprocess.New(logger),
		GeoIP:      resolver,
		Logger:     logger,
		MockMode:   mockMode,
	}

	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

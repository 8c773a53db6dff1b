package main

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

const demoCampaignName = "Demo Campaign"

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	schema := []string{
		sqlinline.QCreateBlueprintsTable,
		sqlinline.QCreateRecipesTable,
		sqlinline.QCreateContentJobsTable,
		sqlinline.QCreateCampaignsTable,
		sqlinline.QCreateCampaignArtifactsTable,
		sqlinline.QCreateUsageEventsTable,
	}
	for _, stmt := range schema {
		if _, err := runner.Exec(ctx, stmt); err != nil {
			logger.Fatal().Err(err).Msg("schema bootstrap failed")
		}
	}

	blueprints := repo.NewBlueprintRepository(dbpool)
	inserted, err := blueprints.SeedDefaults(ctx, domain.DefaultBlueprints())
	if err != nil {
		logger.Fatal().Err(err).Msg("blueprint seeding failed")
	}
	logger.Info().Int("inserted", inserted).Msg("blueprint catalog seeded")

	var campaignID string
	err = runner.QueryRow(ctx, sqlinline.QInsertDemoCampaign, demoCampaignName).Scan(&campaignID)
	switch {
	case err == nil:
		logger.Info().Str("campaign_id", campaignID).Msg("demo campaign created")
	case errors.Is(err, pgx.ErrNoRows):
		logger.Info().Msg("demo campaign already present")
	default:
		logger.Fatal().Err(err).Msg("demo campaign seeding failed")
	}

	logger.Info().Msg("seed complete")
}

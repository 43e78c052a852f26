package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"gomarketsync_api/config"
	"gomarketsync_api/internal/app"
	"gomarketsync_api/internal/feed"
	"gomarketsync_api/internal/market"
	"gomarketsync_api/internal/ozon"
	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/logger"
)

const configFile = "config.yaml"

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error in config: %s", err)
	}

	_log := logger.NewLogger(os.Stdout, "[MarketSync]")

	ozonClient := ozon.NewClient(cfg.Ozon.BaseURL, cfg.Ozon.ClientID, cfg.Ozon.ApiKey,
		_log.WithPrefix("[ozon]"))
	marketClient := market.NewClient(cfg.Market.BaseURL, cfg.Market.Host, cfg.Market.Token,
		_log.WithPrefix("[market]"))

	channels := []app.Channel{app.NewOzonChannel(ozonClient)}
	for _, campaign := range cfg.Market.Campaigns {
		channels = append(channels,
			app.NewCampaignChannel(marketClient, campaign.Name, campaign.CampaignID, campaign.WarehouseID))
	}

	loader := feed.NewLoader(_log.WithPrefix("[feed]"))
	server := app.NewSyncServer(loader, cfg.FeedSource(), channels, _log)

	results, err := server.Run(context.Background())
	if err != nil {
		_log.Log("Run aborted: %s", err)
		pushMetrics(cfg, _log)
		os.Exit(1)
	}

	failed := false
	for _, result := range results {
		if result.Failed() {
			failed = true
		}
	}
	pushMetrics(cfg, _log)
	if failed {
		os.Exit(1)
	}
}

func pushMetrics(cfg *config.AppConfig, _log logger.Logger) {
	if cfg.Metrics.PushURL == "" {
		return
	}
	if err := metrics.Push(cfg.Metrics.PushURL, cfg.Metrics.Job); err != nil {
		_log.Log("Pushing metrics: %s", err)
	}
}

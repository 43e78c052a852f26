// Package config assembles the sync job configuration: yaml defaults for
// endpoints and the feed layout, environment for credentials and catalog
// identifiers.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gomarketsync_api/internal/feed"
	"gomarketsync_api/internal/market"
	"gomarketsync_api/internal/ozon"
)

var ErrMissingConfig = errors.New("missing required configuration")

// Default holds the values the job ships with; everything secret stays empty
// until ApplyEnv fills it in.
func Default() *AppConfig {
	return &AppConfig{
		Ozon: OzonConfig{
			BaseURL: ozon.DefaultBaseURL,
		},
		Market: MarketConfig{
			BaseURL: market.DefaultBaseURL,
			Host:    market.DefaultHost,
		},
		Feed: FeedConfig{
			URL:            "https://timeworld.ru/upload/files/ostatki.zip",
			File:           "ostatki.csv",
			HeaderOffset:   17,
			CodeColumn:     "Код",
			QuantityColumn: "Количество",
			PriceColumn:    "Цена",
		},
		Metrics: MetricsConfig{
			Job: "gomarketsync",
		},
	}
}

// ApplyEnv overlays credentials and identifiers from the environment. The
// variable names are the historical ones the job has always been deployed
// with.
func (c *AppConfig) ApplyEnv() {
	c.Ozon.ClientID = getEnv("CLIENT_ID", c.Ozon.ClientID)
	c.Ozon.ApiKey = getEnv("SELLER_TOKEN", c.Ozon.ApiKey)
	c.Market.Token = getEnv("MARKET_TOKEN", c.Market.Token)
	c.Metrics.PushURL = getEnv("METRICS_PUSH_URL", c.Metrics.PushURL)
	c.Feed.URL = getEnv("FEED_URL", c.Feed.URL)

	if len(c.Market.Campaigns) == 0 {
		c.Market.Campaigns = []CampaignConfig{
			{
				Name:        "market-fbs",
				CampaignID:  os.Getenv("FBS_ID"),
				WarehouseID: os.Getenv("WAREHOUSE_FBS_ID"),
			},
			{
				Name:        "market-dbs",
				CampaignID:  os.Getenv("DBS_ID"),
				WarehouseID: os.Getenv("WAREHOUSE_DBS_ID"),
			},
		}
	}
}

// Validate reports every missing required value at once.
func (c *AppConfig) Validate() error {
	var missing []string
	if c.Ozon.ClientID == "" {
		missing = append(missing, "CLIENT_ID")
	}
	if c.Ozon.ApiKey == "" {
		missing = append(missing, "SELLER_TOKEN")
	}
	if c.Market.Token == "" {
		missing = append(missing, "MARKET_TOKEN")
	}
	for _, campaign := range c.Market.Campaigns {
		if campaign.CampaignID == "" || campaign.WarehouseID == "" {
			missing = append(missing, "campaign "+campaign.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

// FeedSource translates the feed section into the loader's source description.
func (c *AppConfig) FeedSource() feed.Source {
	return feed.Source{
		URL:            c.Feed.URL,
		FileName:       c.Feed.File,
		HeaderOffset:   c.Feed.HeaderOffset,
		CodeColumn:     c.Feed.CodeColumn,
		QuantityColumn: c.Feed.QuantityColumn,
		PriceColumn:    c.Feed.PriceColumn,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

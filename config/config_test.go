package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSyncEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CLIENT_ID", "client-1")
	t.Setenv("SELLER_TOKEN", "seller-key")
	t.Setenv("MARKET_TOKEN", "market-token")
	t.Setenv("FBS_ID", "fbs-1")
	t.Setenv("DBS_ID", "dbs-1")
	t.Setenv("WAREHOUSE_FBS_ID", "wh-fbs")
	t.Setenv("WAREHOUSE_DBS_ID", "wh-dbs")
}

func TestApplyEnvOverlay(t *testing.T) {
	setSyncEnv(t)

	cfg := Default()
	cfg.ApplyEnv()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "client-1", cfg.Ozon.ClientID)
	assert.Equal(t, "seller-key", cfg.Ozon.ApiKey)
	assert.Equal(t, "market-token", cfg.Market.Token)

	require.Len(t, cfg.Market.Campaigns, 2)
	assert.Equal(t, "fbs-1", cfg.Market.Campaigns[0].CampaignID)
	assert.Equal(t, "wh-dbs", cfg.Market.Campaigns[1].WarehouseID)
}

func TestValidateReportsAllMissing(t *testing.T) {
	cfg := Default()

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrMissingConfig)
	assert.Contains(t, err.Error(), "CLIENT_ID")
	assert.Contains(t, err.Error(), "SELLER_TOKEN")
	assert.Contains(t, err.Error(), "MARKET_TOKEN")
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 17, cfg.Feed.HeaderOffset)
	assert.Equal(t, "Код", cfg.Feed.CodeColumn)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "feed:\n  url: http://example.test/ostatki.zip\n  header_offset: 3\n" +
		"yandex_market:\n  campaigns:\n    - name: fbs\n      campaign_id: c1\n      warehouse_id: w1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/ostatki.zip", cfg.Feed.URL)
	assert.Equal(t, 3, cfg.Feed.HeaderOffset)
	require.Len(t, cfg.Market.Campaigns, 1)
	assert.Equal(t, "c1", cfg.Market.Campaigns[0].CampaignID)
}

func TestFeedSource(t *testing.T) {
	cfg := Default()
	src := cfg.FeedSource()

	assert.Equal(t, cfg.Feed.URL, src.URL)
	assert.Equal(t, "ostatki.csv", src.FileName)
	assert.Equal(t, "Количество", src.QuantityColumn)
}

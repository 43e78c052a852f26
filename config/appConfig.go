package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type OzonConfig struct {
	BaseURL  string `yaml:"base_url"`
	ClientID string `yaml:"client_id"`
	ApiKey   string `yaml:"api_key"`
}

type CampaignConfig struct {
	Name        string `yaml:"name"`
	CampaignID  string `yaml:"campaign_id"`
	WarehouseID string `yaml:"warehouse_id"`
}

type MarketConfig struct {
	BaseURL   string           `yaml:"base_url"`
	Host      string           `yaml:"host"`
	Token     string           `yaml:"token"`
	Campaigns []CampaignConfig `yaml:"campaigns"`
}

type FeedConfig struct {
	URL            string `yaml:"url"`
	File           string `yaml:"file"`
	HeaderOffset   int    `yaml:"header_offset"`
	CodeColumn     string `yaml:"code_column"`
	QuantityColumn string `yaml:"quantity_column"`
	PriceColumn    string `yaml:"price_column"`
}

type MetricsConfig struct {
	PushURL string `yaml:"push_url"`
	Job     string `yaml:"job"`
}

type AppConfig struct {
	Ozon    OzonConfig    `yaml:"ozon"`
	Market  MarketConfig  `yaml:"yandex_market"`
	Feed    FeedConfig    `yaml:"feed"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoadConfig reads the optional yaml file on top of the built-in defaults.
func LoadConfig(filename string) (*AppConfig, error) {
	config := Default()
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

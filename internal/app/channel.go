package app

import (
	"context"

	"gomarketsync_api/internal/market"
	"gomarketsync_api/internal/ozon"
	"gomarketsync_api/internal/reconcile"
)

// Channel is one marketplace catalog the job synchronizes: it knows its
// registered offer ids, its warehouse and the request-size ceilings of its
// push endpoints.
type Channel interface {
	Name() string
	WarehouseID() string
	StockBatchSize() int
	PriceBatchSize() int
	OfferIDs(ctx context.Context) ([]string, error)
	PushStockBatch(ctx context.Context, batch []reconcile.StockRecord) error
	PushPriceBatch(ctx context.Context, batch []reconcile.PriceRecord) error
}

type OzonChannel struct {
	client *ozon.Client
}

func NewOzonChannel(client *ozon.Client) *OzonChannel {
	return &OzonChannel{client: client}
}

func (c *OzonChannel) Name() string        { return "ozon" }
func (c *OzonChannel) WarehouseID() string { return "" } // склад выбирается самим Ozon
func (c *OzonChannel) StockBatchSize() int { return ozon.StockBatchSize }
func (c *OzonChannel) PriceBatchSize() int { return ozon.PriceBatchSize }

func (c *OzonChannel) OfferIDs(ctx context.Context) ([]string, error) {
	return c.client.OfferIDs(ctx)
}

func (c *OzonChannel) PushStockBatch(ctx context.Context, batch []reconcile.StockRecord) error {
	return c.client.PushStocks(ctx, batch)
}

func (c *OzonChannel) PushPriceBatch(ctx context.Context, batch []reconcile.PriceRecord) error {
	return c.client.PushPrices(ctx, batch)
}

// CampaignChannel is one Yandex Market campaign (FBS or DBS) with its own
// warehouse.
type CampaignChannel struct {
	client      *market.Client
	name        string
	campaignID  string
	warehouseID string
}

func NewCampaignChannel(client *market.Client, name, campaignID, warehouseID string) *CampaignChannel {
	return &CampaignChannel{
		client:      client,
		name:        name,
		campaignID:  campaignID,
		warehouseID: warehouseID,
	}
}

func (c *CampaignChannel) Name() string        { return c.name }
func (c *CampaignChannel) WarehouseID() string { return c.warehouseID }
func (c *CampaignChannel) StockBatchSize() int { return market.StockBatchSize }
func (c *CampaignChannel) PriceBatchSize() int { return market.PriceBatchSize }

func (c *CampaignChannel) OfferIDs(ctx context.Context) ([]string, error) {
	return c.client.OfferIDs(ctx, c.campaignID)
}

func (c *CampaignChannel) PushStockBatch(ctx context.Context, batch []reconcile.StockRecord) error {
	return c.client.PushStocks(ctx, c.campaignID, batch)
}

func (c *CampaignChannel) PushPriceBatch(ctx context.Context, batch []reconcile.PriceRecord) error {
	return c.client.PushPrices(ctx, c.campaignID, batch)
}

// Package market is the партнёрский API client for campaign-style catalogs:
// offer mapping listing plus stock and price updates per campaign.
package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"gomarketsync_api/internal/marketplace"
	"gomarketsync_api/internal/reconcile"
	"gomarketsync_api/pkg/logger"
)

const (
	DefaultBaseURL = "https://api.partner.market.yandex.ru"
	DefaultHost    = "api.partner.market.yandex.ru"
)

const (
	// Request ceilings imposed by the campaigns API.
	listPageSize   = 200
	StockBatchSize = 2000
	PriceBatchSize = 500

	requestRateLimit = 5 // запросов в секунду

	// Every pushed stock item is a count of sellable units.
	stockItemType = "FIT"
)

type Client struct {
	base string
	api  *marketplace.Client
	log  logger.Logger
}

func NewClient(baseURL, host, token string, log logger.Logger) *Client {
	auth := marketplace.NewBearerAuth(token, host)
	limiter := rate.NewLimiter(rate.Every(time.Second/requestRateLimit), requestRateLimit)
	return &Client{
		base: baseURL,
		api:  marketplace.NewClient(auth, limiter, log),
		log:  log,
	}
}

// OfferIDs walks the campaign's offer mappings and collects every shop SKU.
// The opaque page token from the previous answer drives the walk; an empty
// nextPageToken ends it.
func (c *Client) OfferIDs(ctx context.Context, campaignID string) ([]string, error) {
	var offerIDs []string
	pageToken := ""
	for {
		endpoint := fmt.Sprintf("%s/campaigns/%s/offer-mapping-entries?limit=%d&page_token=%s",
			c.base, campaignID, listPageSize, url.QueryEscape(pageToken))
		var response offerMappingsResponse
		if err := c.api.DoJSON(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
			return nil, err
		}
		for _, entry := range response.Result.OfferMappingEntries {
			offerIDs = append(offerIDs, entry.Offer.ShopSKU)
		}
		pageToken = response.Result.Paging.NextPageToken
		if pageToken == "" {
			break
		}
	}
	c.log.Log("Fetched %d offer ids for campaign %s", len(offerIDs), campaignID)
	return offerIDs, nil
}

// PushStocks updates one batch of warehouse stock counts for the campaign.
func (c *Client) PushStocks(ctx context.Context, campaignID string, stocks []reconcile.StockRecord) error {
	request := stocksRequest{SKUs: make([]stockSKU, 0, len(stocks))}
	for _, stock := range stocks {
		request.SKUs = append(request.SKUs, stockSKU{
			SKU:         stock.OfferID,
			WarehouseID: stock.WarehouseID,
			Items: []stockItem{
				{
					Count:     stock.Stock,
					Type:      stockItemType,
					UpdatedAt: stock.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
				},
			},
		})
	}
	endpoint := fmt.Sprintf("%s/campaigns/%s/offers/stocks", c.base, campaignID)
	return c.api.DoJSON(ctx, http.MethodPut, endpoint, request, nil)
}

// PushPrices updates one batch of offer prices for the campaign.
func (c *Client) PushPrices(ctx context.Context, campaignID string, prices []reconcile.PriceRecord) error {
	request := pricesRequest{Offers: make([]priceOffer, 0, len(prices))}
	for _, price := range prices {
		request.Offers = append(request.Offers, priceOffer{
			ID: price.OfferID,
			// Партнёрский API ждёт код валюты "RUR", не ISO "RUB".
			Price: offerPrice{Value: price.Amount, CurrencyID: "RUR"},
		})
	}
	endpoint := fmt.Sprintf("%s/campaigns/%s/offer-prices/updates", c.base, campaignID)
	return c.api.DoJSON(ctx, http.MethodPost, endpoint, request, nil)
}

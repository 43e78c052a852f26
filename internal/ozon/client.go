// Package ozon is the seller API client: paginated product listing plus
// stock and price imports.
package ozon

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"gomarketsync_api/internal/marketplace"
	"gomarketsync_api/internal/reconcile"
	"gomarketsync_api/pkg/logger"
)

const DefaultBaseURL = "https://api-seller.ozon.ru"

const (
	// Request ceilings imposed by the seller API.
	listPageSize   = 1000
	StockBatchSize = 100
	PriceBatchSize = 900

	requestRateLimit = 5 // запросов в секунду
)

type Client struct {
	base string
	api  *marketplace.Client
	log  logger.Logger
}

func NewClient(baseURL, clientID, apiKey string, log logger.Logger) *Client {
	auth := marketplace.NewKeyPairAuth(clientID, apiKey)
	limiter := rate.NewLimiter(rate.Every(time.Second/requestRateLimit), requestRateLimit)
	return &Client{
		base: baseURL,
		api:  marketplace.NewClient(auth, limiter, log),
		log:  log,
	}
}

// OfferIDs walks the paginated product list and collects every registered
// offer id. The cursor is the last_id echoed by the previous page; the walk
// stops once the reported total is reached or a page comes back empty.
func (c *Client) OfferIDs(ctx context.Context) ([]string, error) {
	var offerIDs []string
	lastID := ""
	for {
		request := productListRequest{
			Filter: productFilter{Visibility: "ALL"},
			LastID: lastID,
			Limit:  listPageSize,
		}
		var response productListResponse
		err := c.api.DoJSON(ctx, http.MethodPost, c.base+"/v2/product/list", request, &response)
		if err != nil {
			return nil, err
		}
		for _, item := range response.Result.Items {
			offerIDs = append(offerIDs, item.OfferID)
		}
		lastID = response.Result.LastID
		if len(response.Result.Items) == 0 || len(offerIDs) >= response.Result.Total {
			break
		}
	}
	c.log.Log("Fetched %d offer ids", len(offerIDs))
	return offerIDs, nil
}

// PushStocks imports one batch of stock counts. The caller is responsible
// for keeping the batch within StockBatchSize.
func (c *Client) PushStocks(ctx context.Context, stocks []reconcile.StockRecord) error {
	request := stocksRequest{Stocks: make([]stockItem, 0, len(stocks))}
	for _, stock := range stocks {
		request.Stocks = append(request.Stocks, stockItem{
			OfferID: stock.OfferID,
			Stock:   stock.Stock,
		})
	}
	return c.api.DoJSON(ctx, http.MethodPost, c.base+"/v1/product/import/stocks", request, nil)
}

// PushPrices imports one batch of prices.
func (c *Client) PushPrices(ctx context.Context, prices []reconcile.PriceRecord) error {
	request := pricesRequest{Prices: make([]priceItem, 0, len(prices))}
	for _, price := range prices {
		request.Prices = append(request.Prices, priceItem{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      price.Currency,
			OfferID:           price.OfferID,
			OldPrice:          "0",
			Price:             strconv.Itoa(price.Amount),
		})
	}
	return c.api.DoJSON(ctx, http.MethodPost, c.base+"/v1/product/import/prices", request, nil)
}

package market

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarketsync_api/internal/marketplace"
	"gomarketsync_api/internal/reconcile"
	"gomarketsync_api/pkg/logger"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "partner.test", "token-1", logger.NewLogger(io.Discard, "[test]"))
}

func TestOfferIDsPageTokenPagination(t *testing.T) {
	var tokens []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/campaigns/camp-1/offer-mapping-entries", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "partner.test", r.Host)

		token := r.URL.Query().Get("page_token")
		tokens = append(tokens, token)

		next := "page-2"
		entries := []map[string]interface{}{
			{"offer": map[string]string{"shopSku": "A"}},
			{"offer": map[string]string{"shopSku": "B"}},
		}
		if token == "page-2" {
			next = ""
			entries = []map[string]interface{}{{"offer": map[string]string{"shopSku": "C"}}}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": map[string]interface{}{
				"offerMappingEntries": entries,
				"paging":              map[string]string{"nextPageToken": next},
			},
		})
	}))
	defer server.Close()

	offerIDs, err := newTestClient(server.URL).OfferIDs(context.Background(), "camp-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, offerIDs)
	assert.Equal(t, []string{"", "page-2"}, tokens)
}

func TestPushStocksPayload(t *testing.T) {
	var got stocksRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/campaigns/camp-1/offers/stocks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	updatedAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	stocks := []reconcile.StockRecord{
		{OfferID: "A", Stock: 100, WarehouseID: "wh-7", UpdatedAt: updatedAt},
	}
	require.NoError(t, newTestClient(server.URL).PushStocks(context.Background(), "camp-1", stocks))

	require.Len(t, got.SKUs, 1)
	assert.Equal(t, stockSKU{
		SKU:         "A",
		WarehouseID: "wh-7",
		Items: []stockItem{
			{Count: 100, Type: "FIT", UpdatedAt: "2024-03-01T12:30:00Z"},
		},
	}, got.SKUs[0])
}

func TestPushPricesPayload(t *testing.T) {
	var got pricesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/campaigns/camp-1/offer-prices/updates", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	prices := []reconcile.PriceRecord{{OfferID: "A", Amount: 5990, Currency: "RUB"}}
	require.NoError(t, newTestClient(server.URL).PushPrices(context.Background(), "camp-1", prices))

	require.Len(t, got.Offers, 1)
	assert.Equal(t, priceOffer{
		ID:    "A",
		Price: offerPrice{Value: 5990, CurrencyID: "RUR"},
	}, got.Offers[0])
}

func TestOfferIDsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).OfferIDs(context.Background(), "camp-1")

	var httpErr *marketplace.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

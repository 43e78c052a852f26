// Package reconcile joins the vendor stock feed against a marketplace's
// registered catalog and produces the full stock and price update lists.
package reconcile

import (
	"time"

	"gomarketsync_api/internal/feed"
)

type StockRecord struct {
	OfferID     string
	Stock       int
	WarehouseID string
	UpdatedAt   time.Time
}

type PriceRecord struct {
	OfferID  string
	Amount   int
	Currency string
}

const Currency = "RUB"

// Stocks builds one StockRecord per known offer id. Feed rows matched against
// the catalog come first, in feed order, with their normalized quantity; every
// remaining known id follows with a zero count, in offerIDs order. A known id
// is consumed by the first feed row that names it: a duplicate row for the
// same code is dropped, it does not overwrite the first and does not fall
// through to the zero list.
//
// offerIDs is never mutated; matching is tracked in a separate set.
func Stocks(remnants []feed.Remnant, offerIDs []string, warehouseID string, now time.Time) ([]StockRecord, error) {
	known := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		known[id] = struct{}{}
	}

	consumed := make(map[string]struct{}, len(offerIDs))
	stocks := make([]StockRecord, 0, len(offerIDs))
	for _, watch := range remnants {
		if _, ok := known[watch.Code]; !ok {
			continue // нет в каталоге маркетплейса
		}
		if _, ok := consumed[watch.Code]; ok {
			continue
		}
		count, err := NormalizeQuantity(watch.Quantity)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, StockRecord{
			OfferID:     watch.Code,
			Stock:       count,
			WarehouseID: warehouseID,
			UpdatedAt:   now,
		})
		consumed[watch.Code] = struct{}{}
	}

	// Добавим недостающее из загруженного: everything the marketplace knows
	// but the feed no longer carries is zeroed out.
	for _, id := range offerIDs {
		if _, ok := consumed[id]; ok {
			continue
		}
		stocks = append(stocks, StockRecord{
			OfferID:     id,
			Stock:       0,
			WarehouseID: warehouseID,
			UpdatedAt:   now,
		})
		consumed[id] = struct{}{}
	}
	return stocks, nil
}

// Prices builds one PriceRecord per feed row whose code the marketplace
// knows. Codes absent from the catalog are dropped; known ids absent from the
// feed get no record.
func Prices(remnants []feed.Remnant, offerIDs []string) ([]PriceRecord, error) {
	known := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		known[id] = struct{}{}
	}

	var prices []PriceRecord
	for _, watch := range remnants {
		if _, ok := known[watch.Code]; !ok {
			continue
		}
		value, err := PriceValue(watch.Price)
		if err != nil {
			return nil, err
		}
		prices = append(prices, PriceRecord{
			OfferID:  watch.Code,
			Amount:   value,
			Currency: Currency,
		})
	}
	return prices, nil
}

package market

type offerMappingsResponse struct {
	Result struct {
		OfferMappingEntries []struct {
			Offer struct {
				ShopSKU string `json:"shopSku"`
			} `json:"offer"`
		} `json:"offerMappingEntries"`
		Paging struct {
			NextPageToken string `json:"nextPageToken"`
		} `json:"paging"`
	} `json:"result"`
}

type stockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

type stockSKU struct {
	SKU         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []stockItem `json:"items"`
}

type stocksRequest struct {
	SKUs []stockSKU `json:"skus"`
}

type offerPrice struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

type priceOffer struct {
	ID    string     `json:"id"`
	Price offerPrice `json:"price"`
}

type pricesRequest struct {
	Offers []priceOffer `json:"offers"`
}

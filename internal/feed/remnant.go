package feed

// Remnant is one row of the vendor stock spreadsheet: the vendor's catalog
// code plus the raw quantity and price strings exactly as published.
type Remnant struct {
	Code     string
	Quantity string
	Price    string
}

// Source describes where the vendor feed lives and how its spreadsheet is
// laid out. Column names and the header offset are feed-specific and come
// from configuration.
type Source struct {
	URL          string
	FileName     string
	HeaderOffset int

	CodeColumn     string
	QuantityColumn string
	PriceColumn    string
}

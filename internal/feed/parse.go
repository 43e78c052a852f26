package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var ErrBadLayout = errors.New("unexpected feed layout")

// Parse reads the vendor spreadsheet export from r. The file is
// Windows-1251, semicolon-separated, with src.HeaderOffset junk rows before
// the header row. Rows with an empty code column are skipped.
func Parse(r io.Reader, src Source) ([]Remnant, error) {
	decoded := transform.NewReader(r, charmap.Windows1251.NewDecoder())

	reader := csv.NewReader(decoded)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // в фиде встречаются строки разной длины

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading feed rows: %w", err)
	}
	if len(rows) <= src.HeaderOffset {
		return nil, fmt.Errorf("feed has %d rows, header expected at row %d: %w",
			len(rows), src.HeaderOffset, ErrBadLayout)
	}

	header := rows[src.HeaderOffset]
	columns := map[string]int{}
	for i, name := range header {
		columns[name] = i
	}
	codeIdx, ok := columns[src.CodeColumn]
	if !ok {
		return nil, fmt.Errorf("feed header misses column %q: %w", src.CodeColumn, ErrBadLayout)
	}
	quantityIdx, ok := columns[src.QuantityColumn]
	if !ok {
		return nil, fmt.Errorf("feed header misses column %q: %w", src.QuantityColumn, ErrBadLayout)
	}
	priceIdx, ok := columns[src.PriceColumn]
	if !ok {
		return nil, fmt.Errorf("feed header misses column %q: %w", src.PriceColumn, ErrBadLayout)
	}

	var remnants []Remnant
	for _, row := range rows[src.HeaderOffset+1:] {
		code := cell(row, codeIdx)
		if code == "" {
			continue
		}
		remnants = append(remnants, Remnant{
			Code:     code,
			Quantity: cell(row, quantityIdx),
			Price:    cell(row, priceIdx),
		})
	}
	return remnants, nil
}

// ParseFile открывает выгруженный файл остатков и разбирает его.
func ParseFile(path string, src Source) ([]Remnant, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file, src)
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

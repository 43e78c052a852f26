package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var testSource = Source{
	FileName:       "ostatki.csv",
	HeaderOffset:   2,
	CodeColumn:     "Код",
	QuantityColumn: "Количество",
	PriceColumn:    "Цена",
}

const sampleFeed = "Остатки часов\n" +
	"выгружено 01.03.2024\n" +
	"Код;Наименование;Количество;Цена\n" +
	"CAS-149;Casio G-Shock;>10;5'990.00 руб.\n" +
	"CAS-150;Casio Edifice;1;12'490.00 руб.\n" +
	";пустая строка;;\n" +
	"CAS-151;Casio Vintage;3;4'190.00 руб.\n"

func encode1251(t *testing.T, s string) string {
	t.Helper()
	encoded, _, err := transform.String(charmap.Windows1251.NewEncoder(), s)
	require.NoError(t, err)
	return encoded
}

func TestParse(t *testing.T) {
	remnants, err := Parse(strings.NewReader(encode1251(t, sampleFeed)), testSource)
	require.NoError(t, err)

	assert.Equal(t, []Remnant{
		{Code: "CAS-149", Quantity: ">10", Price: "5'990.00 руб."},
		{Code: "CAS-150", Quantity: "1", Price: "12'490.00 руб."},
		{Code: "CAS-151", Quantity: "3", Price: "4'190.00 руб."},
	}, remnants)
}

func TestParseTooFewRows(t *testing.T) {
	_, err := Parse(strings.NewReader(encode1251(t, "только одна строка\n")), testSource)
	assert.ErrorIs(t, err, ErrBadLayout)
}

func TestParseMissingColumn(t *testing.T) {
	raw := "x\ny\nКод;Наименование;Цена\nCAS-149;часы;100.00\n"
	_, err := Parse(strings.NewReader(encode1251(t, raw)), testSource)
	assert.ErrorIs(t, err, ErrBadLayout)
}

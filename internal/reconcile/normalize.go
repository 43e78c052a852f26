package reconcile

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeQuantity переводит «сырое» количество из фида поставщика в остаток.
//
// The rule table is fixed by the feed contract: ">10" means a full shelf and
// is published as 100, and the literal "1" is a vendor sentinel for a
// discontinued position, published as zero. Anything else must be a plain
// base-10 integer. The "1" rule is matched by exact string equality only --
// do not generalize it.
func NormalizeQuantity(raw string) (int, error) {
	switch raw {
	case ">10":
		return 100, nil
	case "1":
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("quantity %q: %w", raw, ErrParse)
	}
	return n, nil
}

// NormalizePrice strips a locale-formatted feed price ("5'990.00 руб.") down
// to the digit-only ruble amount before the decimal separator: "5990".
func NormalizePrice(raw string) (string, error) {
	dot := strings.IndexByte(raw, '.')
	if dot < 0 {
		return "", fmt.Errorf("price %q has no decimal separator: %w", raw, ErrFormat)
	}
	var b strings.Builder
	for _, r := range raw[:dot] {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("price %q has no digits: %w", raw, ErrFormat)
	}
	return b.String(), nil
}

// PriceValue returns the normalized price as an integer ruble amount.
func PriceValue(raw string) (int, error) {
	digits, err := NormalizePrice(raw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("price %q: %w", raw, ErrFormat)
	}
	return n, nil
}

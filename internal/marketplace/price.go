package marketplace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// maxPrice is the largest value a DECIMAL(10,2) column holds.
const maxPrice = 99999999.99

// decimalText matches "12", "12.", "12.5" and ".5". No signs, exponents or hex.
var decimalText = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// ParsePrice turns price text into a price in cents precision.
// Blank text means "price on request" and yields nil. Anything that is not a
// plain finite non-negative decimal is rejected with ErrInvalidPrice rather
// than silently stored as an empty price.
func ParsePrice(text PriceText) (*float64, error) {
	s := strings.TrimSpace(string(text))
	if s == "" {
		return nil, nil
	}

	if !decimalText.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v > maxPrice {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	v = math.Round(v*100) / 100
	return &v, nil
}

// FormatPrice renders a stored price for display. A missing or zero price
// reads as "Price on request".
func FormatPrice(price *float64) string {
	if price == nil || *price == 0 {
		return PriceOnRequest
	}
	return "$" + strconv.FormatFloat(*price, 'f', -1, 64)
}

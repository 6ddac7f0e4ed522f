package menu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Dish is a single menu entry.
type Dish struct {
	ID          int
	Name        string
	Description string
	Course      Course
	Price       decimal.Decimal
	Pairing     string
}

// PriceLabel renders the price the way the menu shows it, e.g. "R45" or "R12.5".
func (d Dish) PriceLabel() string {
	return FormatPrice(d.Price)
}

// FormatPrice renders a price with the rand prefix and no trailing zeros.
func FormatPrice(p decimal.Decimal) string {
	return currencyPrefix + p.String()
}

const currencyPrefix = "R"

// Validation messages shown to the chef.
const (
	MsgMissingFields = "Please fill in name and price"
	MsgPriceNotNum   = "Price must be a number"
	MsgPriceNegative = "Price must not be negative"
)

// ValidationError reports why a draft could not become a dish.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ParsePrice converts raw price text into a decimal. A leading "R" is
// tolerated since the form shows it as a placeholder.
func ParsePrice(raw string) (decimal.Decimal, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimSpace(strings.TrimPrefix(text, currencyPrefix))
	if text == "" {
		return decimal.Zero, &ValidationError{Field: "price", Message: MsgMissingFields}
	}
	price, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "price", Message: MsgPriceNotNum}
	}
	if price.IsNegative() {
		return decimal.Zero, &ValidationError{Field: "price", Message: MsgPriceNegative}
	}
	return price, nil
}

// CloneDishes returns a copy of dishes that shares no backing array.
func CloneDishes(dishes []Dish) []Dish {
	if len(dishes) == 0 {
		return nil
	}
	dup := make([]Dish, len(dishes))
	copy(dup, dishes)
	return dup
}

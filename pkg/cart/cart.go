// Package cart holds the pricing and customization rules shared between the
// API and its clients. Everything here is a pure function: the client order
// flow is browsing -> customizing (optional) -> cart-has-items -> submitted ->
// receipt-shown, only the submitted transition reaches the API, and the cart
// is cleared unconditionally on a successful response.
package cart

import (
	"fmt"

	"order-up/internal/domain/models"
)

// Category labels as the client uses them. The store accepts any string; this
// set matters only for customization rules and menu grouping.
const (
	CategoryMains    = "Mains"
	CategoryStarters = "Starters"
	CategoryDesserts = "Desserts"
	CategoryDrinks   = "Drinks"
	CategorySteaks   = "Steaks"
)

// DonenessLevels is the ordered choice set for steak items.
var DonenessLevels = []string{"Rare", "Medium Rare", "Medium", "Medium Well", "Well Done"}

// TemperatureLevels is the ordered choice set for drink items.
var TemperatureLevels = []string{"Hot", "Cold"}

const (
	DefaultDoneness    = "Well Done"
	DefaultTemperature = "Cold"
)

// Total sums entry prices in insertion order. Formatting to two decimals is
// the renderer's job; the sum itself is not rounded.
func Total(entries []models.OrderItem) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Price
	}
	return total
}

// Choices returns the selectable customization values for a category, or nil
// when the category has none.
func Choices(category string) []string {
	switch category {
	case CategorySteaks:
		return DonenessLevels
	case CategoryDrinks:
		return TemperatureLevels
	}
	return nil
}

// Resolve validates a chosen customization against the category's choice set,
// falling back to the category default when the choice is empty or unknown.
// Categories without choices resolve to "".
func Resolve(category, choice string) string {
	options := Choices(category)
	if options == nil {
		return ""
	}
	for _, o := range options {
		if o == choice {
			return choice
		}
	}
	if category == CategorySteaks {
		return DefaultDoneness
	}
	return DefaultTemperature
}

// DisplayName appends a resolved choice to the item name the way receipts
// show it: "Ribeye (Medium Rare)".
func DisplayName(name, choice string) string {
	if choice == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, choice)
}

// Customize turns a menu item plus a customer's choice into the cart entry
// that will eventually be persisted on the order. The resolved choice lands
// both in the display name and in the structured field.
func Customize(item models.MenuItem, choice string) models.OrderItem {
	resolved := Resolve(item.Category, choice)
	return models.OrderItem{
		ID:            item.ID,
		Name:          DisplayName(item.Name, resolved),
		Description:   item.Description,
		Price:         item.Price,
		Category:      item.Category,
		Customization: resolved,
	}
}

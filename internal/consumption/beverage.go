package consumption

import (
	"fmt"
	"strings"
)

// Beverage is a drink category with a default ABV.
type Beverage string

// Beverage categories.
const (
	BeverageBeer     Beverage = "beer"
	BeverageWine     Beverage = "wine"
	BeverageSpirits  Beverage = "spirits"
	BeverageCocktail Beverage = "cocktail"
	BeverageCustom   Beverage = "custom"
)

// beverageDefaults maps each category to its default ABV fraction.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var beverageDefaults = map[Beverage]float64{
	BeverageBeer:     0.05,
	BeverageWine:     0.12,
	BeverageSpirits:  0.40,
	BeverageCocktail: 0.15,
	BeverageCustom:   0.05,
}

// Beverages lists the categories in display order.
func Beverages() []Beverage {
	return []Beverage{BeverageBeer, BeverageWine, BeverageSpirits, BeverageCocktail, BeverageCustom}
}

// DefaultABV returns the default ABV fraction for the category.
// Unknown categories fall back to the Custom default.
func (b Beverage) DefaultABV() float64 {
	if abv, ok := beverageDefaults[b]; ok {
		return abv
	}
	return beverageDefaults[BeverageCustom]
}

// Title returns the display name ("Beer", "Wine", ...).
func (b Beverage) Title() string {
	if b == "" {
		return ""
	}
	return strings.ToUpper(string(b[:1])) + string(b[1:])
}

// ParseBeverage resolves a category name case-insensitively.
func ParseBeverage(s string) (Beverage, error) {
	b := Beverage(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := beverageDefaults[b]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBeverage, s)
	}
	return b, nil
}

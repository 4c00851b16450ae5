// Package restaurant defines the core domain types shared across the gusto
// pipeline: the restaurant record, its rating, and the closed set of price
// tiers a restaurant can belong to.
package restaurant

import (
	"fmt"
	"strings"
)

// PriceTier represents the relative cost level of a restaurant.
// The four tiers form a closed set; cost increases with symbol length.
type PriceTier string

const (
	// PriceCheap is the lowest price tier.
	PriceCheap PriceTier = "$"
	// PriceModerate is the second price tier.
	PriceModerate PriceTier = "$$"
	// PriceExpensive is the third price tier.
	PriceExpensive PriceTier = "$$$"
	// PricePremium is the highest price tier.
	PricePremium PriceTier = "$$$$"
)

// String returns the string representation of the price tier.
func (p PriceTier) String() string {
	return string(p)
}

// IsValid returns true if the price tier is one of the four supported values.
func (p PriceTier) IsValid() bool {
	switch p {
	case PriceCheap, PriceModerate, PriceExpensive, PricePremium:
		return true
	default:
		return false
	}
}

// SupportedPriceTiers returns all supported price tier values in increasing
// cost order.
func SupportedPriceTiers() []PriceTier {
	return []PriceTier{PriceCheap, PriceModerate, PriceExpensive, PricePremium}
}

// ParsePriceTier parses a price tier from its string form.
// Returns an error naming the supported values if the input is not one of them.
func ParsePriceTier(s string) (PriceTier, error) {
	p := PriceTier(strings.TrimSpace(s))
	if !p.IsValid() {
		supported := make([]string, 0, len(SupportedPriceTiers()))
		for _, t := range SupportedPriceTiers() {
			supported = append(supported, t.String())
		}
		return "", fmt.Errorf("invalid price tier: %q, supported: %s", s, strings.Join(supported, ", "))
	}
	return p, nil
}

// Restaurant is a single dataset record. It exists only while a record is
// being parsed; queries operate on the index tables instead.
type Restaurant struct {
	// Name is the restaurant name and unique dataset key.
	Name string `json:"name" yaml:"name"`

	// Rating is the integer percentage score (0-100).
	Rating int `json:"rating" yaml:"rating"`

	// Price is the price tier the restaurant belongs to.
	Price PriceTier `json:"price" yaml:"price"`

	// Cuisines are the cuisine labels the restaurant is tagged with.
	Cuisines []string `json:"cuisines,omitempty" yaml:"cuisines,omitempty"`
}

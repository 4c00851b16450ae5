package recommender

import (
	"fmt"
	"strings"
	"time"

	"github.com/mchmarny/gusto/pkg/restaurant"
)

// Query represents a recommendation request: a price tier and the set of
// desired cuisines.
type Query struct {
	// Price is the requested price tier.
	Price restaurant.PriceTier `json:"price" yaml:"price"`

	// Cuisines are the requested cuisine labels. A restaurant matches when
	// it is tagged with at least one of them.
	Cuisines []string `json:"cuisines" yaml:"cuisines"`
}

// String returns a human-readable representation of the query.
func (q *Query) String() string {
	return fmt.Sprintf("Price: %s, Cuisines: %s", q.Price, strings.Join(q.Cuisines, ", "))
}

// Validate checks that the query is well-formed. The price tier must be one
// of the four supported symbols; cuisines absent from the dataset are not an
// error and simply contribute zero matches.
func (q *Query) Validate() error {
	if !q.Price.IsValid() {
		return fmt.Errorf("invalid price tier: %q, supported: %v",
			q.Price, restaurant.SupportedPriceTiers())
	}
	return nil
}

// Entry is a single scored result: a restaurant name and its rating.
type Entry struct {
	Rating int    `json:"rating" yaml:"rating"`
	Name   string `json:"name" yaml:"name"`
}

// Recommendation is the response envelope for a recommendation query.
// Entries are ordered by rating descending; ties keep price-tier file order.
type Recommendation struct {
	// ID uniquely identifies this generated recommendation.
	ID string `json:"id" yaml:"id"`

	// Request echoes the query this recommendation was generated for.
	Request *Query `json:"request" yaml:"request"`

	// GeneratedAt is the UTC time the recommendation was generated.
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`

	// Entries are the matching restaurants sorted by rating descending.
	Entries []*Entry `json:"entries" yaml:"entries"`
}

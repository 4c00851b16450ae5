// Package dataset parses the flat-file restaurant dataset into the lookup
// tables the recommender queries.
//
// # Dataset Format
//
// The dataset is plain UTF-8 text made up of four-line records separated by
// blank lines:
//
//	Queen St. Cafe
//	82%
//	$
//	Malaysian,Thai
//
// The four lines are, in fixed order: restaurant name, rating percentage
// (trailing percent sign stripped), price symbol ($, $$, $$$, or $$$$), and a
// comma-separated cuisine list. The last record may omit the trailing blank
// line; consecutive blank lines are tolerated.
//
// # Index Tables
//
// Parsing produces three tables:
//   - RatingByName: restaurant name to rating percentage
//   - NamesByPrice: price tier to restaurant names (file order, every tier
//     key always present)
//   - NamesByCuisine: cuisine label to restaurant names (file order, no
//     duplicates, keys created on demand)
//
// # Usage
//
//	p := dataset.NewParser()
//	idx, err := p.ParseFile("restaurants.txt")
//	if err != nil {
//	    log.Fatalf("parse failed: %v", err)
//	}
//	names := idx.NamesByPrice[restaurant.PriceCheap]
//
// # Error Handling
//
// Parse returns an error (and no partial index) when a record has an unknown
// price symbol, a non-integer rating, or fewer than four fields, when the
// input exceeds the configured maximum size, or when the source cannot be
// read. A missing cuisine field is degenerate but accepted: it yields a
// single empty-string cuisine key.
package dataset

// Package recommender answers restaurant recommendation queries over the
// flat-file dataset.
//
// # Overview
//
// A query names a price tier and a set of desired cuisines. The recommender
// runs a three-step pipeline: parse the dataset into lookup tables, filter
// the price-tier candidate list by the requested cuisines, and rank the
// survivors by rating descending. Each call re-reads the data source; no
// state is held between calls.
//
// # Pipeline
//
// Filtering is two-pass: the union of restaurants tagged with any requested
// cuisine is built first, then candidates are emitted in their original
// price-tier order against that union. This keeps the output order aligned
// with file order rather than cuisine-list order and prevents duplicates
// when a restaurant matches several requested cuisines.
//
// Ranking uses a stable sort on rating descending, so equal ratings keep
// their relative price-tier order. Names missing from the rating table are
// silently dropped.
//
// # Usage
//
//	r := recommender.New(
//	    recommender.WithDatasetPath("restaurants.txt"),
//	)
//
//	rec, err := r.Recommend(ctx, &recommender.Query{
//	    Price:    restaurant.PriceCheap,
//	    Cuisines: []string{"Chinese", "Thai"},
//	})
//	if err != nil {
//	    log.Fatalf("recommendation failed: %v", err)
//	}
//
//	for _, e := range rec.Entries {
//	    fmt.Printf("%d%% %s\n", e.Rating, e.Name)
//	}
//
// # Error Handling
//
// Recommend returns errors when:
//   - The query is nil or its price tier is not one of the four symbols
//   - The dataset cannot be read or parsed
//   - The context is canceled
//
// Cuisines absent from the dataset are not an error; they contribute zero
// matches and an empty tier yields an empty (non-nil) result.
//
// # Observability
//
// The recommender exports Prometheus metrics:
//   - gusto_recommend_build_duration_seconds: time to generate recommendations
//   - gusto_recommend_total: request count by outcome
package recommender

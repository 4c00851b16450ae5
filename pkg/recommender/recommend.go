package recommender

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mchmarny/gusto/pkg/dataset"
	"github.com/mchmarny/gusto/pkg/errors"
)

// Recommender answers restaurant recommendation queries over a flat-file
// dataset. The dataset is re-read on every call; the Recommender holds no
// state across calls.
type Recommender struct {
	path   string
	parser *dataset.Parser
}

// Option is a functional option for configuring the Recommender.
type Option func(*Recommender)

// WithDatasetPath sets the dataset file path. When empty, the embedded
// sample dataset is used.
func WithDatasetPath(path string) Option {
	return func(r *Recommender) {
		r.path = path
	}
}

// WithParser sets the dataset parser. Defaults to a parser with default
// settings.
func WithParser(p *dataset.Parser) Option {
	return func(r *Recommender) {
		r.parser = p
	}
}

// New creates a new Recommender with the provided options.
func New(opts ...Option) *Recommender {
	r := &Recommender{}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	if r.parser == nil {
		r.parser = dataset.NewParser()
	}
	return r
}

// Recommend generates a recommendation for the provided query: parse the
// dataset, select the price-tier candidates, filter them by cuisine, and
// rank the survivors by rating descending.
func (r *Recommender) Recommend(ctx context.Context, q *Query) (*Recommendation, error) {
	if q == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "query cannot be nil")
	}

	if err := q.Validate(); err != nil {
		recommendTotal.WithLabelValues("invalid").Inc()
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid query", err)
	}

	// Check for context cancellation
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Track overall recommendation build duration
	start := time.Now()
	defer func() {
		recommendBuildDuration.Observe(time.Since(start).Seconds())
	}()

	idx, err := r.index()
	if err != nil {
		recommendTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	candidates := idx.NamesByPrice[q.Price]

	slog.Debug("filtering price tier candidates",
		"price", q.Price.String(),
		"cuisines", q.Cuisines,
		"candidates", len(candidates),
	)

	matched := filterByCuisine(candidates, idx.NamesByCuisine, q.Cuisines)
	entries := buildRatingList(idx.RatingByName, matched)

	recommendTotal.WithLabelValues("success").Inc()

	return &Recommendation{
		ID:          uuid.NewString(),
		Request:     q,
		GeneratedAt: time.Now().UTC(),
		Entries:     entries,
	}, nil
}

// index parses the configured source into fresh lookup tables.
func (r *Recommender) index() (*dataset.Index, error) {
	if r.path != "" {
		return r.parser.ParseFile(r.path)
	}

	idx, err := r.parser.Parse(dataset.Sample())
	if err != nil {
		return nil, fmt.Errorf("failed to parse sample dataset: %w", err)
	}
	return idx, nil
}

// filterByCuisine returns the candidates tagged with at least one of the
// requested cuisines. The union of cuisine matches is built first so the
// output preserves candidate (price tier) order and carries no duplicates
// even when a restaurant matches multiple requested cuisines. Cuisines
// absent from the index contribute zero matches.
func filterByCuisine(candidates []string, namesByCuisine map[string][]string, cuisines []string) []string {
	union := make(map[string]struct{})
	for _, cuisine := range cuisines {
		for _, name := range namesByCuisine[cuisine] {
			union[name] = struct{}{}
		}
	}

	matched := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if _, ok := union[name]; ok {
			matched = append(matched, name)
		}
	}
	return matched
}

// buildRatingList maps the filtered names to rating entries sorted by rating
// descending. Names missing from the rating table are silently dropped.
// The sort is stable so equal ratings keep their input order.
func buildRatingList(ratingByName map[string]int, names []string) []*Entry {
	entries := make([]*Entry, 0, len(names))
	for _, name := range names {
		rating, ok := ratingByName[name]
		if !ok {
			slog.Debug("skipping name missing from rating table", "name", name)
			continue
		}
		entries = append(entries, &Entry{Rating: rating, Name: name})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rating > entries[j].Rating
	})
	return entries
}

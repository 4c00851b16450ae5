package recommender

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/gusto/pkg/restaurant"
)

func TestFilterByCuisine(t *testing.T) {
	namesByCuisine := map[string][]string{
		"Canadian":  {"Georgie Porgie"},
		"Pub Food":  {"Georgie Porgie", "Deep Fried Everything"},
		"Malaysian": {"Queen St. Cafe"},
		"Thai":      {"Queen St. Cafe"},
		"Chinese":   {"Dumplings R Us"},
		"Mexican":   {"Mexican Grill"},
	}
	candidates := []string{"Queen St. Cafe", "Dumplings R Us", "Deep Fried Everything"}

	tests := []struct {
		name     string
		cuisines []string
		want     []string
	}{
		{
			name:     "two cuisines",
			cuisines: []string{"Chinese", "Thai"},
			want:     []string{"Queen St. Cafe", "Dumplings R Us"},
		},
		{
			name:     "candidate order preserved over cuisine order",
			cuisines: []string{"Pub Food", "Thai"},
			want:     []string{"Queen St. Cafe", "Deep Fried Everything"},
		},
		{
			name:     "duplicate matches collapse",
			cuisines: []string{"Malaysian", "Thai"},
			want:     []string{"Queen St. Cafe"},
		},
		{
			name:     "unknown cuisine contributes nothing",
			cuisines: []string{"Ethiopian", "Chinese"},
			want:     []string{"Dumplings R Us"},
		},
		{
			name:     "no cuisines",
			cuisines: nil,
			want:     []string{},
		},
		{
			name:     "match outside candidate list excluded",
			cuisines: []string{"Mexican"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterByCuisine(candidates, namesByCuisine, tt.cuisines)
			assert.Equal(t, tt.want, got)

			// output is always a subset of candidates, no duplicates
			seen := make(map[string]bool)
			for _, name := range got {
				assert.False(t, seen[name], "duplicate name %q", name)
				assert.Contains(t, candidates, name)
				seen[name] = true
			}
		})
	}
}

func TestBuildRatingList(t *testing.T) {
	ratings := map[string]int{
		"Georgie Porgie":        87,
		"Queen St. Cafe":        82,
		"Dumplings R Us":        71,
		"Mexican Grill":         85,
		"Deep Fried Everything": 52,
	}

	t.Run("sorted by rating descending", func(t *testing.T) {
		entries := buildRatingList(ratings, []string{"Deep Fried Everything", "Queen St. Cafe", "Georgie Porgie"})
		require.Len(t, entries, 3)
		assert.Equal(t, &Entry{Rating: 87, Name: "Georgie Porgie"}, entries[0])
		assert.Equal(t, &Entry{Rating: 82, Name: "Queen St. Cafe"}, entries[1])
		assert.Equal(t, &Entry{Rating: 52, Name: "Deep Fried Everything"}, entries[2])

		for i := 1; i < len(entries); i++ {
			assert.GreaterOrEqual(t, entries[i-1].Rating, entries[i].Rating)
		}
	})

	t.Run("missing names silently dropped", func(t *testing.T) {
		entries := buildRatingList(ratings, []string{"Queen St. Cafe", "Closed Forever", "Dumplings R Us"})
		require.Len(t, entries, 2)
		assert.Equal(t, "Queen St. Cafe", entries[0].Name)
		assert.Equal(t, "Dumplings R Us", entries[1].Name)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		tied := map[string]int{"First": 80, "Second": 80, "Third": 80}
		entries := buildRatingList(tied, []string{"First", "Second", "Third"})
		require.Len(t, entries, 3)
		assert.Equal(t, "First", entries[0].Name)
		assert.Equal(t, "Second", entries[1].Name)
		assert.Equal(t, "Third", entries[2].Name)
	})

	t.Run("empty input", func(t *testing.T) {
		entries := buildRatingList(ratings, nil)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}

func TestRecommend(t *testing.T) {
	r := New()

	t.Run("cheap chinese or thai", func(t *testing.T) {
		rec, err := r.Recommend(t.Context(), &Query{
			Price:    restaurant.PriceCheap,
			Cuisines: []string{"Chinese", "Thai"},
		})
		require.NoError(t, err)
		require.NotNil(t, rec)

		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.GeneratedAt.IsZero())
		require.Len(t, rec.Entries, 2)
		assert.Equal(t, &Entry{Rating: 82, Name: "Queen St. Cafe"}, rec.Entries[0])
		assert.Equal(t, &Entry{Rating: 71, Name: "Dumplings R Us"}, rec.Entries[1])
	})

	t.Run("unknown cuisine yields empty result", func(t *testing.T) {
		rec, err := r.Recommend(t.Context(), &Query{
			Price:    restaurant.PriceCheap,
			Cuisines: []string{"Ethiopian"},
		})
		require.NoError(t, err)
		assert.Empty(t, rec.Entries)
	})

	t.Run("empty tier yields empty result", func(t *testing.T) {
		rec, err := r.Recommend(t.Context(), &Query{
			Price:    restaurant.PricePremium,
			Cuisines: []string{"Chinese", "Thai", "Pub Food"},
		})
		require.NoError(t, err)
		assert.Empty(t, rec.Entries)
	})

	t.Run("invalid price tier", func(t *testing.T) {
		_, err := r.Recommend(t.Context(), &Query{
			Price:    restaurant.PriceTier("$$$$$"),
			Cuisines: []string{"Thai"},
		})
		require.Error(t, err)
	})

	t.Run("nil query", func(t *testing.T) {
		_, err := r.Recommend(t.Context(), nil)
		require.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := r.Recommend(ctx, &Query{
			Price:    restaurant.PriceCheap,
			Cuisines: []string{"Thai"},
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRecommendFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.txt")
	data := "Noodle Bar\n90%\n$\nThai\n\nCurry Corner\n90%\n$\nThai,Indian\n\nTandoor House\n95%\n$$\nIndian\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	r := New(WithDatasetPath(path))

	rec, err := r.Recommend(t.Context(), &Query{
		Price:    restaurant.PriceCheap,
		Cuisines: []string{"Thai", "Indian"},
	})
	require.NoError(t, err)

	// equal ratings keep file order
	require.Len(t, rec.Entries, 2)
	assert.Equal(t, "Noodle Bar", rec.Entries[0].Name)
	assert.Equal(t, "Curry Corner", rec.Entries[1].Name)
}

func TestRecommendMissingDataset(t *testing.T) {
	r := New(WithDatasetPath(filepath.Join(t.TempDir(), "nope.txt")))

	_, err := r.Recommend(t.Context(), &Query{
		Price:    restaurant.PriceCheap,
		Cuisines: []string{"Thai"},
	})
	require.Error(t, err)
}

func TestQueryString(t *testing.T) {
	q := &Query{Price: restaurant.PriceCheap, Cuisines: []string{"Chinese", "Thai"}}
	assert.Equal(t, "Price: $, Cuisines: Chinese, Thai", q.String())
}

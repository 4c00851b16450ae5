package dataset

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mchmarny/gusto/pkg/errors"
	"github.com/mchmarny/gusto/pkg/restaurant"
)

// recordFields is the number of lines that make up a complete record:
// name, rating, price tier, cuisine list.
const recordFields = 4

// Index holds the lookup tables built from a restaurant dataset.
// All three tables are rebuilt on every parse; the Index carries no state
// beyond the parsed content.
type Index struct {
	// RatingByName maps each restaurant name to its rating percentage.
	// Names are unique dataset keys, at most one rating per restaurant.
	RatingByName map[string]int

	// NamesByPrice maps each price tier to restaurant names in file order.
	// Every supported tier key is present even when its list is empty.
	NamesByPrice map[restaurant.PriceTier][]string

	// NamesByCuisine maps each cuisine label to restaurant names in file
	// order. Keys are created on demand and duplicates are suppressed.
	NamesByCuisine map[string][]string
}

// Cuisines returns the cuisine labels present in the index.
func (i *Index) Cuisines() []string {
	labels := make([]string, 0, len(i.NamesByCuisine))
	for label := range i.NamesByCuisine {
		labels = append(labels, label)
	}
	return labels
}

// Option is a functional option for configuring the Parser.
type Option func(*Parser)

// WithMaxSize sets the maximum size (in bytes) of the dataset to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// Parser parses the flat-file restaurant dataset format: records of four
// lines (name, rating with a trailing percent sign, price symbol, and a
// comma-separated cuisine list) separated by blank lines. The final record
// is not required to be followed by a blank line.
type Parser struct {
	maxSize int
}

// NewParser creates a new dataset parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize: 1 << 20, // 1MB default
	}

	// Apply options
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads the dataset at the given path and builds the index tables.
// The file is opened and closed within this call; the path is an explicit
// parameter so callers control the data source.
func (p *Parser) ParseFile(path string) (*Index, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "dataset path cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "failed to open dataset", err,
			map[string]any{"path": path})
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close dataset file", "path", path, "error", cerr)
		}
	}()

	idx, err := p.Parse(f)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidData, "failed to parse dataset", err,
			map[string]any{"path": path})
	}
	return idx, nil
}

// Parse reads the full dataset from r and builds the index tables.
// No partial index is returned on error.
func (p *Parser) Parse(r io.Reader) (*Index, error) {
	start := time.Now()
	defer func() {
		parseDuration.Observe(time.Since(start).Seconds())
	}()

	b, err := io.ReadAll(io.LimitReader(r, int64(p.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	if len(b) > p.maxSize {
		return nil, fmt.Errorf("dataset exceeds maximum size of %d bytes", p.maxSize)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("dataset content is not valid UTF-8")
	}

	idx := &Index{
		RatingByName:   make(map[string]int),
		NamesByPrice:   make(map[restaurant.PriceTier][]string),
		NamesByCuisine: make(map[string][]string),
	}

	// Every tier key is present even when no restaurant falls in it.
	for _, tier := range restaurant.SupportedPriceTiers() {
		idx.NamesByPrice[tier] = []string{}
	}

	var record []string
	records := 0
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			// Blank line completes a record. An empty accumulator means
			// consecutive blank lines, which are tolerated and skipped.
			if len(record) == 0 {
				continue
			}
			if err := flushRecord(idx, record); err != nil {
				return nil, err
			}
			records++
			record = record[:0]
			continue
		}
		record = append(record, line)
	}

	// The terminal record is not necessarily followed by a blank line.
	if len(record) > 0 {
		if err := flushRecord(idx, record); err != nil {
			return nil, err
		}
		records++
	}

	slog.Debug("dataset parsed",
		"records", records,
		"cuisines", len(idx.NamesByCuisine),
		"bytes", len(b),
	)

	return idx, nil
}

// flushRecord inserts one accumulated record into the index tables.
// Lines beyond the four expected fields are ignored.
func flushRecord(idx *Index, record []string) error {
	if len(record) < recordFields {
		return fmt.Errorf("truncated record %q: expected %d fields, got %d",
			record[0], recordFields, len(record))
	}

	name := record[0]
	rating, err := strconv.Atoi(strings.TrimSuffix(record[1], "%"))
	if err != nil {
		return fmt.Errorf("invalid rating for %q: %w", name, err)
	}

	tier, err := restaurant.ParsePriceTier(record[2])
	if err != nil {
		return fmt.Errorf("invalid price tier for %q: %w", name, err)
	}

	idx.RatingByName[name] = rating
	idx.NamesByPrice[tier] = append(idx.NamesByPrice[tier], name)

	for _, cuisine := range strings.Split(record[3], ",") {
		if !containsName(idx.NamesByCuisine[cuisine], name) {
			idx.NamesByCuisine[cuisine] = append(idx.NamesByCuisine[cuisine], name)
		}
	}

	return nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

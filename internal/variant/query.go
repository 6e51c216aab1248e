package variant

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrNotFound is returned when no variant matches a query.
var ErrNotFound = errors.New("no matching variant")

// All returns every variant in article order.
func All() []Variant {
	return append([]Variant(nil), variants...)
}

// Query returns the variants whose name or title fuzzily matches query, best
// match first. An empty query matches everything in article order.
func Query(query string) []Variant {
	if query == "" {
		return All()
	}

	targets := make([]string, 0, len(variants))
	for _, v := range variants {
		targets = append(targets, v.Name+" "+v.Title)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Stable(ranks)
	matches := make([]Variant, len(ranks))
	for i, rank := range ranks {
		matches[i] = variants[rank.OriginalIndex]
	}
	return matches
}

// Lookup returns the variant called name, falling back to the best fuzzy
// match.
func Lookup(name string) (Variant, error) {
	if name == "" {
		name = Default
	}

	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}

	matches := Query(name)
	if len(matches) == 0 {
		return Variant{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return matches[0], nil
}

// Package ranking holds the pure list stages of the pipeline: URL based
// deduplication, stable score ordering and top-N selection.
package ranking

import (
	"slices"

	"trend_scout/internal/domain"
)

// Dedupe drops posts whose non-empty URL was already seen. Posts without a
// URL cannot be identified and are always kept. Input order is preserved.
func Dedupe(posts []domain.CanonicalPost) []domain.CanonicalPost {
	seen := make(map[string]struct{}, len(posts))
	unique := make([]domain.CanonicalPost, 0, len(posts))

	for _, p := range posts {
		if p.URL != "" {
			if _, dup := seen[p.URL]; dup {
				continue
			}
			seen[p.URL] = struct{}{}
		}
		unique = append(unique, p)
	}
	return unique
}

// Rank returns a copy of posts sorted by virality score, highest first.
// Ties keep their input order.
func Rank(posts []domain.ScoredPost) []domain.ScoredPost {
	ranked := slices.Clone(posts)
	slices.SortStableFunc(ranked, func(a, b domain.ScoredPost) int {
		return compareDesc(a.ViralityScore, b.ViralityScore)
	})
	return ranked
}

// TopN returns the first n posts, or all of them when n exceeds the length.
func TopN(posts []domain.ScoredPost, n int) []domain.ScoredPost {
	if n <= 0 {
		return []domain.ScoredPost{}
	}
	if n >= len(posts) {
		return posts
	}
	return posts[:n]
}

func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

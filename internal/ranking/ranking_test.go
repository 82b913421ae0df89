package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend_scout/internal/domain"
)

func post(id, url string) domain.CanonicalPost {
	return domain.CanonicalPost{ID: id, URL: url}
}

func scored(id string, score float64) domain.ScoredPost {
	return domain.ScoredPost{CanonicalPost: domain.CanonicalPost{ID: id}, ViralityScore: score}
}

func ids(posts []domain.ScoredPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []domain.CanonicalPost
		expected []string
	}{
		{"same url keeps first", []domain.CanonicalPost{post("a", "http://a"), post("b", "http://a")}, []string{"a"}},
		{"empty urls are all kept", []domain.CanonicalPost{post("a", ""), post("b", "")}, []string{"a", "b"}},
		{
			"mixed preserves order",
			[]domain.CanonicalPost{post("1", "http://x"), post("2", ""), post("3", "http://y"), post("4", "http://x"), post("5", "")},
			[]string{"1", "2", "3", "5"},
		},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.input)
			gotIDs := make([]string, len(got))
			for i, p := range got {
				gotIDs[i] = p.ID
			}
			assert.Equal(t, tt.expected, gotIDs)
		})
	}
}

func TestRank_SortsDescendingAndStable(t *testing.T) {
	input := []domain.ScoredPost{
		scored("low", 10),
		scored("tie-1", 50),
		scored("high", 90),
		scored("tie-2", 50),
		scored("tie-3", 50),
	}

	ranked := Rank(input)

	assert.Equal(t, []string{"high", "tie-1", "tie-2", "tie-3", "low"}, ids(ranked))
	assert.Equal(t, "low", input[0].ID, "input must not be reordered")
}

func TestTopN(t *testing.T) {
	list := make([]domain.ScoredPost, 20)
	for i := range list {
		list[i] = scored(fmt.Sprintf("p%d", i), float64(100-i))
	}

	t.Run("n equals length", func(t *testing.T) {
		assert.Equal(t, list, TopN(list, 20))
	})

	t.Run("n exceeds length", func(t *testing.T) {
		assert.Equal(t, list, TopN(list, 50))
	})

	t.Run("n smaller than length", func(t *testing.T) {
		got := TopN(list, 3)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"p0", "p1", "p2"}, ids(got))
	})

	t.Run("n zero", func(t *testing.T) {
		assert.Empty(t, TopN(list, 0))
	})
}

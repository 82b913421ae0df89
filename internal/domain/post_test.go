package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagements(t *testing.T) {
	tests := []struct {
		name string
		post CanonicalPost
		want int64
	}{
		{"sum", CanonicalPost{Likes: 10, Shares: 5, Comments: 2}, 17},
		{"negatives count as zero", CanonicalPost{Likes: -10, Shares: 5}, 5},
		{"no overflow", CanonicalPost{Likes: math.MaxInt64, Shares: 1, Comments: math.MaxInt64}, 2*MaxCount + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.post.Engagements())
		})
	}
}

// Package scoring computes virality scores: a bounded rule based base score
// for every post and an optional editorial adjustment for the strongest ones.
package scoring

import (
	"math"
	"time"

	"trend_scout/internal/domain"
)

const (
	velocityMax       = 25.0
	volumeMax         = 20.0
	engagementRateMax = 20.0

	// engagements per hour that earn the full velocity score
	velocityCeiling = 1000.0
	// total engagements that earn the full volume score
	volumeCeiling = 100000.0
	// engagement rate (percent of followers) that earns the full rate score
	rateCeiling = 10.0

	minHoursSincePost = 0.1

	// Cross-platform corroboration and historical novelty are not evaluated
	// yet; both contribute a flat score.
	diversityScore = 10.0
	noveltyScore   = 7.0
)

// MaxBaseScore is the highest base score the rules can produce.
const MaxBaseScore = velocityMax + volumeMax + engagementRateMax + diversityScore + noveltyScore + 10.0

// Breakdown holds the individual rule scores of a post.
type Breakdown struct {
	Velocity       float64
	Volume         float64
	EngagementRate float64
	Diversity      float64
	Novelty        float64
	Authority      float64
}

// Total is the base score.
func (b Breakdown) Total() float64 {
	return round2(b.Velocity + b.Volume + b.EngagementRate + b.Diversity + b.Novelty + b.Authority)
}

// Rules evaluates every rule for p as of now.
func Rules(p domain.CanonicalPost, now time.Time) Breakdown {
	return Breakdown{
		Velocity:       velocity(p, now),
		Volume:         volume(p),
		EngagementRate: engagementRate(p),
		Diversity:      diversityScore,
		Novelty:        noveltyScore,
		Authority:      authority(p),
	}
}

// BaseScore is Rules(p, now).Total().
func BaseScore(p domain.CanonicalPost, now time.Time) float64 {
	return Rules(p, now).Total()
}

func velocity(p domain.CanonicalPost, now time.Time) float64 {
	hours := math.Max(minHoursSincePost, now.Sub(p.Timestamp).Hours())
	perHour := float64(p.Engagements()) / hours
	return round2(clamp(perHour/velocityCeiling*velocityMax, 0, velocityMax))
}

func volume(p domain.CanonicalPost) float64 {
	return round2(clamp(float64(p.Engagements())/volumeCeiling*volumeMax, 0, volumeMax))
}

func engagementRate(p domain.CanonicalPost) float64 {
	if p.AuthorFollowers <= 0 {
		return 0
	}
	rate := float64(p.Engagements()) / float64(p.AuthorFollowers) * 100
	return round2(clamp(rate/rateCeiling*engagementRateMax, 0, engagementRateMax))
}

func authority(p domain.CanonicalPost) float64 {
	switch {
	case p.AuthorFollowers > 1_000_000:
		return 10
	case p.AuthorFollowers > 100_000:
		return 7
	case p.AuthorFollowers > 10_000:
		return 5
	default:
		return 3
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

package domain

import (
	"math"
	"time"
)

// MaxCount caps any single engagement or follower count so sums of counts cannot overflow.
const MaxCount int64 = math.MaxInt64 / 4

// CanonicalPost is the provider independent shape every raw item is mapped to.
// All fields are always populated; see the normalize package for defaults.
type CanonicalPost struct {
	ID              string    `json:"id"`
	Platform        Platform  `json:"platform"`
	URL             string    `json:"url"`
	Text            string    `json:"text"`
	Author          string    `json:"author"`
	AuthorFollowers int64     `json:"author_followers"`
	Likes           int64     `json:"likes"`
	Shares          int64     `json:"shares"`
	Comments        int64     `json:"comments"`
	Views           int64     `json:"views"`
	Timestamp       time.Time `json:"timestamp"`
	Hashtags        []string  `json:"hashtags"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Category        string    `json:"category"`
}

// Engagements is likes + shares + comments, each limited to [0, MaxCount].
func (p CanonicalPost) Engagements() int64 {
	return boundCount(p.Likes) + boundCount(p.Shares) + boundCount(p.Comments)
}

func boundCount(v int64) int64 {
	return min(max(v, 0), MaxCount)
}

// ScoredPost is a CanonicalPost after the scoring stage.
type ScoredPost struct {
	CanonicalPost
	BaseScore          float64  `json:"base_score"`
	ViralityScore      float64  `json:"virality_score"`
	EditorialBrief     string   `json:"editorial_brief"`
	ViralityAnalysis   string   `json:"virality_analysis"`
	EditorialAlignment string   `json:"editorial_alignment"`
	WriterTips         []string `json:"writer_tips"`
	ScoreReasoning     string   `json:"score_reasoning"`
}

// WorkflowParams describes one retrieval and ranking run.
type WorkflowParams struct {
	Categories     []string   `json:"categories"`
	Platforms      []Platform `json:"platforms"`
	DaysBack       int        `json:"days_back"`
	LimitPerSource int        `json:"limit_per_source"`
	TopN           int        `json:"top_n"`
}

package domain

// AnalysisRequest is what the editorial analysis service sees of a post.
type AnalysisRequest struct {
	Platform        Platform `json:"platform"`
	Text            string   `json:"text"`
	Likes           int64    `json:"likes"`
	Shares          int64    `json:"shares"`
	Comments        int64    `json:"comments"`
	Author          string   `json:"author"`
	AuthorFollowers int64    `json:"author_followers"`
	BaseScore       float64  `json:"base_score"`
}

// Analysis is the structured editorial assessment of one post.
type Analysis struct {
	ViralityBrief       string   `json:"viralityBrief"`
	AudienceFit         string   `json:"audienceFit"`
	WriterGuidance      []string `json:"writerGuidance"`
	ScoreAdjustment     float64  `json:"scoreAdjustment"`
	AdjustmentReasoning string   `json:"adjustmentReasoning"`
}

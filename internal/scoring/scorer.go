package scoring

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"trend_scout/internal/domain"
)

const (
	FallbackBrief           = "AI enhancement unavailable. Scored using rule-based metrics only."
	ReasoningAnalysisError  = "LLM error"
	ReasoningBelowThreshold = "Below LLM threshold"
	ReasoningDisabled       = "Enrichment disabled"

	maxAdjustment = 10.0
	maxVirality   = 100.0
)

var errEmptyAnalysis = errors.New("empty analysis response")

// Analyzer produces an editorial assessment for one post.
type Analyzer interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.Analysis, error)
}

type Config struct {
	// Candidates is how many of the highest base scores are sent for analysis.
	Candidates int
	// TextLimit caps the post text sent for analysis, in runes.
	TextLimit int
	// Concurrency bounds in-flight analysis calls.
	Concurrency int
}

func DefaultConfig() Config {
	return Config{
		Candidates:  30,
		TextLimit:   500,
		Concurrency: 4,
	}
}

// Scorer turns canonical posts into scored posts.
type Scorer struct {
	analyzer Analyzer
	cfg      Config
	logger   *slog.Logger
	now      func() time.Time
}

// NewScorer creates a Scorer. A nil analyzer disables enrichment.
func NewScorer(analyzer Analyzer, cfg Config, logger *slog.Logger) *Scorer {
	def := DefaultConfig()
	if cfg.Candidates <= 0 {
		cfg.Candidates = def.Candidates
	}
	if cfg.TextLimit <= 0 {
		cfg.TextLimit = def.TextLimit
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	return &Scorer{
		analyzer: analyzer,
		cfg:      cfg,
		logger:   logger.With("component", "scorer"),
		now:      time.Now,
	}
}

// Score computes base scores for all posts, enriches the top candidates and
// returns the posts ordered by base score. Analysis failures are absorbed
// per post.
func (s *Scorer) Score(ctx context.Context, posts []domain.CanonicalPost) []domain.ScoredPost {
	now := s.now()

	scored := make([]domain.ScoredPost, len(posts))
	for i, p := range posts {
		scored[i] = domain.ScoredPost{CanonicalPost: p, BaseScore: BaseScore(p, now)}
	}
	slices.SortStableFunc(scored, func(a, b domain.ScoredPost) int {
		return cmp.Compare(b.BaseScore, a.BaseScore)
	})

	cut := min(s.cfg.Candidates, len(scored))
	if s.analyzer == nil {
		cut = 0
	}

	for i := cut; i < len(scored); i++ {
		s.applyBelowThreshold(&scored[i])
	}

	if cut > 0 {
		s.logger.Info("enriching top posts", "candidates", cut, "total", len(scored))

		var g errgroup.Group
		g.SetLimit(s.cfg.Concurrency)
		for i := 0; i < cut; i++ {
			g.Go(func() error {
				s.enrich(ctx, &scored[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	s.logger.Info("scored posts", "count", len(scored))
	return scored
}

func (s *Scorer) applyBelowThreshold(p *domain.ScoredPost) {
	p.ViralityScore = p.BaseScore
	p.EditorialBrief = fmt.Sprintf("Rule-based scoring only (not in top %d).", s.cfg.Candidates)
	p.ViralityAnalysis = ""
	p.EditorialAlignment = ""
	p.WriterTips = []string{}
	p.ScoreReasoning = ReasoningBelowThreshold
	if s.analyzer == nil {
		p.ScoreReasoning = ReasoningDisabled
	}
}

func (s *Scorer) applyFallback(p *domain.ScoredPost) {
	p.ViralityScore = p.BaseScore
	p.EditorialBrief = FallbackBrief
	p.ViralityAnalysis = ""
	p.EditorialAlignment = ""
	p.WriterTips = []string{}
	p.ScoreReasoning = ReasoningAnalysisError
}

func (s *Scorer) enrich(ctx context.Context, p *domain.ScoredPost) {
	analysis, err := s.analyze(ctx, p)
	if err != nil {
		s.logger.Warn("analysis failed, using base score",
			"post_id", p.ID,
			"platform", p.Platform,
			"error", err,
		)
		s.applyFallback(p)
		return
	}

	adjustment := clamp(analysis.ScoreAdjustment, -maxAdjustment, maxAdjustment)
	tips := analysis.WriterGuidance
	if tips == nil {
		tips = []string{}
	}

	p.ViralityScore = round2(clamp(p.BaseScore+adjustment, 0, maxVirality))
	p.ViralityAnalysis = analysis.ViralityBrief
	p.EditorialAlignment = analysis.AudienceFit
	p.WriterTips = tips
	p.ScoreReasoning = analysis.AdjustmentReasoning
	p.EditorialBrief = ComposeBrief(analysis.ViralityBrief, analysis.AudienceFit, tips)
}

// analyze shields the scorer from analyzer panics.
func (s *Scorer) analyze(ctx context.Context, p *domain.ScoredPost) (analysis *domain.Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analyzer panic: %v", r)
		}
	}()

	analysis, err = s.analyzer.Analyze(ctx, domain.AnalysisRequest{
		Platform:        p.Platform,
		Text:            truncate(p.Text, s.cfg.TextLimit),
		Likes:           p.Likes,
		Shares:          p.Shares,
		Comments:        p.Comments,
		Author:          p.Author,
		AuthorFollowers: p.AuthorFollowers,
		BaseScore:       p.BaseScore,
	})
	if err == nil && analysis == nil {
		err = errEmptyAnalysis
	}
	return analysis, err
}

// ComposeBrief renders the editorial brief shown to writers.
func ComposeBrief(viralityBrief, audienceFit string, tips []string) string {
	var b strings.Builder
	b.WriteString("**Why It's Viral:** ")
	b.WriteString(viralityBrief)
	b.WriteString("\n\n**Audience Fit:** ")
	b.WriteString(audienceFit)
	b.WriteString("\n\n**Writer's Roadmap:**\n")
	for _, tip := range tips {
		b.WriteString("• ")
		b.WriteString(tip)
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

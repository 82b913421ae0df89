package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"trend_scout/internal/catalog"
)

type Config struct {
	Server   ServerConfig       `yaml:"server"`
	Jobs     JobsConfig         `yaml:"jobs"`
	Workflow WorkflowConfig     `yaml:"workflow"`
	Apify    ApifyConfig        `yaml:"apify"`
	RSS      RSSConfig          `yaml:"rss"`
	Analysis AnalysisConfig     `yaml:"analysis"`
	RabbitMQ RabbitMQConfig     `yaml:"rabbitmq"`
	Schedule ScheduleConfig     `yaml:"schedule"`
	Catalog  []catalog.Category `yaml:"catalog"`
	LogLevel string             `yaml:"log_level"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type JobsConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type WorkflowConfig struct {
	DaysBack       int `yaml:"days_back"`
	LimitPerSource int `yaml:"limit_per_source"`
	TopN           int `yaml:"top_n"`
}

type ApifyConfig struct {
	Token   string                 `yaml:"token"`
	BaseURL string                 `yaml:"base_url"`
	Timeout time.Duration          `yaml:"timeout"`
	Retry   RetryConfig            `yaml:"retry"`
	Actors  map[string]ActorConfig `yaml:"actors"`
}

type ActorConfig struct {
	ActorID       string         `yaml:"actor_id"`
	TermsField    string         `yaml:"terms_field"`
	TermTemplate  string         `yaml:"term_template"`
	TermsAsURLs   bool           `yaml:"terms_as_urls"`
	MaxTerms      int            `yaml:"max_terms"`
	LimitField    string         `yaml:"limit_field"`
	SinceOperator bool           `yaml:"since_operator"`
	DaysBackField string         `yaml:"days_back_field"`
	Input         map[string]any `yaml:"input"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type RSSConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	MaxFeeds  int           `yaml:"max_feeds"`
	UserAgent string        `yaml:"user_agent"`
}

type AnalysisConfig struct {
	APIKey        string        `yaml:"api_key"`
	Model         string        `yaml:"model"`
	MaxTokens     int           `yaml:"max_tokens"`
	Temperature   float64       `yaml:"temperature"`
	Timeout       time.Duration `yaml:"timeout"`
	Candidates    int           `yaml:"candidates"`
	TextLimit     int           `yaml:"text_limit"`
	Concurrency   int           `yaml:"concurrency"`
	RatePerMinute float64       `yaml:"rate_per_minute"`
	Burst         int           `yaml:"burst"`
	Breaker       BreakerConfig `yaml:"breaker"`
}

// Enabled reports whether an API key is configured.
func (a AnalysisConfig) Enabled() bool {
	return a.APIKey != ""
}

type BreakerConfig struct {
	FailureThreshold uint          `yaml:"failure_threshold"`
	Window           uint          `yaml:"window"`
	Delay            time.Duration `yaml:"delay"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether results should be published.
func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type ScheduleConfig struct {
	Interval   time.Duration `yaml:"interval"`
	Categories []string      `yaml:"categories"`
	Platforms  []string      `yaml:"platforms"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment variables in data and decodes it.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30 * time.Second
	}
	if c.Jobs.TTL == 0 {
		c.Jobs.TTL = 60 * time.Minute
	}
	if c.Workflow.DaysBack == 0 {
		c.Workflow.DaysBack = 7
	}
	if c.Workflow.LimitPerSource == 0 {
		c.Workflow.LimitPerSource = 20
	}
	if c.Workflow.TopN == 0 {
		c.Workflow.TopN = 20
	}
	if c.Apify.BaseURL == "" {
		c.Apify.BaseURL = "https://api.apify.com/v2"
	}
	if c.Apify.Timeout == 0 {
		c.Apify.Timeout = 120 * time.Second
	}
	if c.Apify.Retry.MaxAttempts == 0 {
		c.Apify.Retry.MaxAttempts = 3
	}
	if c.Apify.Retry.InitialBackoff == 0 {
		c.Apify.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Apify.Retry.MaxBackoff == 0 {
		c.Apify.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Apify.Actors == nil {
		c.Apify.Actors = make(map[string]ActorConfig)
	}
	for platform, actor := range defaultActors() {
		if _, ok := c.Apify.Actors[platform]; !ok {
			c.Apify.Actors[platform] = actor
		}
	}
	if c.RSS.Timeout == 0 {
		c.RSS.Timeout = 15 * time.Second
	}
	if c.RSS.MaxFeeds == 0 {
		c.RSS.MaxFeeds = 3
	}
	if c.RSS.UserAgent == "" {
		c.RSS.UserAgent = "TrendScout/1.0"
	}
	if c.Analysis.Model == "" {
		c.Analysis.Model = "claude-3-5-haiku-latest"
	}
	if c.Analysis.MaxTokens == 0 {
		c.Analysis.MaxTokens = 500
	}
	if c.Analysis.Temperature == 0 {
		c.Analysis.Temperature = 0.7
	}
	if c.Analysis.Timeout == 0 {
		c.Analysis.Timeout = 30 * time.Second
	}
	if c.Analysis.Candidates == 0 {
		c.Analysis.Candidates = 30
	}
	if c.Analysis.TextLimit == 0 {
		c.Analysis.TextLimit = 500
	}
	if c.Analysis.Concurrency == 0 {
		c.Analysis.Concurrency = 4
	}
	if c.Analysis.RatePerMinute == 0 {
		c.Analysis.RatePerMinute = 60
	}
	if c.Analysis.Burst == 0 {
		c.Analysis.Burst = 5
	}
	if c.Analysis.Breaker.FailureThreshold == 0 {
		c.Analysis.Breaker.FailureThreshold = 5
	}
	if c.Analysis.Breaker.Window == 0 {
		c.Analysis.Breaker.Window = 10
	}
	if c.Analysis.Breaker.Delay == 0 {
		c.Analysis.Breaker.Delay = 30 * time.Second
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "trend_scout"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "stories"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "cms_stories"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if c.Workflow.DaysBack < 1 || c.Workflow.DaysBack > 30 {
		return fmt.Errorf("workflow.days_back must be between 1 and 30, got %d", c.Workflow.DaysBack)
	}
	if c.Workflow.LimitPerSource < 0 {
		return fmt.Errorf("workflow.limit_per_source must not be negative")
	}
	if c.Analysis.Breaker.Window < c.Analysis.Breaker.FailureThreshold {
		return fmt.Errorf("analysis.breaker.window must be at least failure_threshold")
	}
	if c.Schedule.Interval < 0 {
		return fmt.Errorf("schedule.interval must not be negative")
	}
	for name, actor := range c.Apify.Actors {
		if actor.ActorID == "" {
			return fmt.Errorf("apify.actors.%s: actor_id is required", name)
		}
	}
	return nil
}

func defaultActors() map[string]ActorConfig {
	return map[string]ActorConfig{
		"TikTok": {
			ActorID:    "clockworks/tiktok-scraper",
			TermsField: "hashtags",
			MaxTerms:   5,
			LimitField: "resultsPerPage",
			Input: map[string]any{
				"profileSorting":       "latest",
				"shouldDownloadVideos": false,
				"shouldDownloadCovers": true,
				"commentsPerPost":      0,
				"lang":                 "en",
			},
		},
		"Instagram": {
			ActorID:    "apify/instagram-hashtag-scraper",
			TermsField: "hashtags",
			MaxTerms:   5,
			LimitField: "resultsLimit",
			Input: map[string]any{
				"resultsType": "posts",
				"language":    "en",
			},
		},
		"Facebook": {
			ActorID:       "apify/facebook-posts-scraper",
			TermsField:    "startUrls",
			TermTemplate:  "https://www.facebook.com/search/posts/?q=%s",
			TermsAsURLs:   true,
			MaxTerms:      3,
			LimitField:    "resultsLimit",
			DaysBackField: "onlyPostsNewerThan",
			Input: map[string]any{
				"language": "en",
			},
		},
		"Twitter": {
			ActorID:       "apidojo/tweet-scraper",
			TermsField:    "searchTerms",
			MaxTerms:      5,
			LimitField:    "maxItems",
			SinceOperator: true,
			Input: map[string]any{
				"sort":          "Latest",
				"tweetLanguage": "en",
			},
		},
	}
}

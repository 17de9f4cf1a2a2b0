// Package config holds the service configuration: listen address, provider
// model choices, the token price schedule, and the third-party API settings
// the tool handlers need. Values come from defaults, an optional YAML file,
// then environment variables, in that order.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that decodes from YAML strings like "2s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// OpenAIConfig selects the chat-completions models. The first call (tool
// selection) and the summarization call may use different models.
type OpenAIConfig struct {
	APIKey       string `yaml:"-"`
	Model        string `yaml:"model" validate:"required"`
	SummaryModel string `yaml:"summary_model" validate:"required"`
}

// GeminiConfig selects the Gemini model used for both turns of the
// function-calling loop.
type GeminiConfig struct {
	APIKey string `yaml:"-"`
	Model  string `yaml:"model" validate:"required"`
}

// PricingConfig is the fixed price schedule applied to usage counters. It
// is configuration, not an algorithm: the estimate is only as good as these
// numbers.
type PricingConfig struct {
	InputCostPerMillion  float64 `yaml:"input_cost_per_million" validate:"gte=0"`
	OutputCostPerMillion float64 `yaml:"output_cost_per_million" validate:"gte=0"`
}

// NewsConfig points the news tool at NewsAPI.
type NewsConfig struct {
	APIKey  string `yaml:"-"`
	BaseURL string `yaml:"base_url" validate:"required,url"`
}

// ApifyConfig points the place-search tool at Apify and bounds its poll
// loop.
type ApifyConfig struct {
	Token        string   `yaml:"-"`
	BaseURL      string   `yaml:"base_url" validate:"required,url"`
	Actor        string   `yaml:"actor" validate:"required"`
	PollInterval Duration `yaml:"poll_interval" validate:"gt=0"`
	MaxWait      Duration `yaml:"max_wait" validate:"gt=0"`
}

// Config is the full service configuration.
type Config struct {
	Addr    string        `yaml:"addr" validate:"required"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Pricing PricingConfig `yaml:"pricing"`
	News    NewsConfig    `yaml:"news"`
	Apify   ApifyConfig   `yaml:"apify"`
}

// Default returns the built-in configuration. API keys are intentionally
// absent: they only ever come from the environment, and a missing key is
// surfaced at call time, not at startup.
func Default() Config {
	return Config{
		Addr: ":8000",
		OpenAI: OpenAIConfig{
			Model:        "gpt-4o",
			SummaryModel: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Pricing: PricingConfig{
			InputCostPerMillion:  5.0,
			OutputCostPerMillion: 15.0,
		},
		News: NewsConfig{
			BaseURL: "https://newsapi.org",
		},
		Apify: ApifyConfig{
			BaseURL:      "https://api.apify.com",
			Actor:        "compass~crawler-google-places",
			PollInterval: Duration(2 * time.Second),
			MaxWait:      Duration(2 * time.Minute),
		},
	}
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

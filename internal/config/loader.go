package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Search names tried in the working directory when no explicit path is
// given.
var configNames = []string{"toolbridge.yaml", "toolbridge.yml"}

// Load assembles the configuration: defaults, then the YAML file (explicit
// path must exist; otherwise the first toolbridge.yaml/.yml found in the
// working directory, if any), then environment overrides, then validation.
func Load(explicitPath string) (*Config, error) {
	cfg := Default()

	path, err := resolvePath(explicitPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolvePath(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("specified config file does not exist: %s", explicitPath)
			}
			return "", fmt.Errorf("cannot access config file %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}

// applyEnv layers environment variables over the loaded values. PORT keeps
// its conventional meaning and rewrites the listen address.
func (c *Config) applyEnv() {
	c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	c.News.APIKey = os.Getenv("NEWS_API_KEY")
	c.Apify.Token = os.Getenv("APIFY_TOKEN")
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
}

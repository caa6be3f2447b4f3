package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RoutingConfig carries the vocabularies the keyword classifier scores
// against. Both lists are matched by substring membership, case-folded.
type RoutingConfig struct {
	KBKeywords  []string `yaml:"kb_keywords"`
	WebKeywords []string `yaml:"web_keywords"`
}

// Terms that suggest the knowledge base already covers the question.
var defaultKBKeywords = []string{
	"derivative", "integral", "quadratic", "pythagorean",
	"theorem", "basic", "fundamental", "simple", "formula",
	"solve", "what is", "how to", "definition", "equation",
}

// Terms that suggest the question needs current external information.
var defaultWebKeywords = []string{
	"latest", "recent", "new", "current", "modern",
	"advanced", "cutting-edge", "development", "research",
	"breakthrough", "discovery", "innovation", "trend",
}

func DefaultRouting() RoutingConfig {
	return RoutingConfig{
		KBKeywords:  defaultKBKeywords,
		WebKeywords: defaultWebKeywords,
	}
}

// LoadRoutingConfig reads the routing vocabularies from ROUTING_CONFIG_PATH
// (default configs/routing.yaml). A missing file is not an error: the
// built-in vocabularies are used instead.
func LoadRoutingConfig() (RoutingConfig, error) {
	path := os.Getenv("ROUTING_CONFIG_PATH")
	if path == "" {
		path = "configs/routing.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRouting(), nil
		}
		return RoutingConfig{}, err
	}

	var cfg RoutingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RoutingConfig{}, fmt.Errorf("failed to parse routing config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	return cfg, nil
}

func applyDefaults(cfg *RoutingConfig) {
	if len(cfg.KBKeywords) == 0 {
		cfg.KBKeywords = defaultKBKeywords
	}
	if len(cfg.WebKeywords) == 0 {
		cfg.WebKeywords = defaultWebKeywords
	}
}

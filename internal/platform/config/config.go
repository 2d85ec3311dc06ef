package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultNarratorTimeout = 30 * time.Second

// Config locates the durable store and the narrative generator. DataDir holds
// the sqlite database, per-user active-session files, exported report notes,
// and the optional config.yaml / catalog.yaml overrides.
type Config struct {
	DataDir string
	DBPath  string

	NarratorAPIKey  string
	NarratorBaseURL string
	NarratorPlugin  string
	NarratorTimeout time.Duration
}

type fileConfig struct {
	NarratorAPIKey  string `yaml:"narrator_api_key"`
	NarratorBaseURL string `yaml:"narrator_base_url"`
	NarratorPlugin  string `yaml:"narrator_plugin"`
	NarratorTimeout string `yaml:"narrator_timeout"`
}

// New builds a Config rooted at dataDir, merging config.yaml if present and
// letting LIFEOS_NARRATOR_KEY override the stored API key.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:         dataDir,
		DBPath:          filepath.Join(dataDir, "lifeos.db"),
		NarratorBaseURL: "https://api.deepseek.com",
		NarratorTimeout: defaultNarratorTimeout,
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
		if fc.NarratorAPIKey != "" {
			cfg.NarratorAPIKey = fc.NarratorAPIKey
		}
		if fc.NarratorBaseURL != "" {
			cfg.NarratorBaseURL = fc.NarratorBaseURL
		}
		if fc.NarratorPlugin != "" {
			cfg.NarratorPlugin = fc.NarratorPlugin
		}
		if fc.NarratorTimeout != "" {
			d, err := time.ParseDuration(fc.NarratorTimeout)
			if err != nil {
				return Config{}, fmt.Errorf("parse narrator_timeout: %w", err)
			}
			cfg.NarratorTimeout = d
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}

	if key := os.Getenv("LIFEOS_NARRATOR_KEY"); key != "" {
		cfg.NarratorAPIKey = key
	}
	return cfg, nil
}

// Package config holds all configuration for the exam helper.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the tool.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Retrieve RetrieveConfig `yaml:"retrieve"`
	LLM      LLMConfig      `yaml:"llm"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CorpusConfig describes where the extracted text corpus and the built
// index live.
type CorpusConfig struct {
	TextDir  string   `yaml:"text_dir"`
	IndexDir string   `yaml:"index_dir"`
	Includes []string `yaml:"includes"`
	MSOnly   bool     `yaml:"ms_only"`
	// MSPath is the raw mark-scheme text used by the no-index
	// fallback scorer.
	MSPath string `yaml:"ms_path"`
}

// RetrieveConfig holds retrieval configuration.
type RetrieveConfig struct {
	MaxChunks int `yaml:"max_chunks"`
}

// LLMConfig selects the generation back-end. With Enabled false every
// answer comes from the deterministic formatter.
type LLMConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider"` // "openai", "groq"
	Model    string `yaml:"model"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			TextDir:  "data/text",
			IndexDir: "data/index",
			Includes: []string{"*.txt"},
			MSOnly:   true,
			MSPath:   "data/text/paper1_ms.txt",
		},
		Retrieve: RetrieveConfig{
			MaxChunks: 3,
		},
		LLM: LLMConfig{
			Enabled:  true,
			Provider: "groq",
			Model:    "llama-3.3-70b-versatile",
		},
		Logging: LoggingConfig{
			Debug: false,
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// examhelper.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "examhelper.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

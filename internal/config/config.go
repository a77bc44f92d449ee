// Package config loads and validates MindEase configuration.
// Configuration lives at <home>/config.yaml with environment variable
// overrides for secrets. Missing config falls back to defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	API     APIConfig     `yaml:"api"`
	History HistoryConfig `yaml:"history"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
	Storage StorageConfig `yaml:"storage"`
}

// APIConfig configures the completion endpoint
type APIConfig struct {
	// APIKey for the Gemini endpoint. Prefer MINDEASE_API_KEY or
	// GEMINI_API_KEY over storing the key in the file.
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`

	Chat        GenerationConfig `yaml:"chat"`
	Mood        GenerationConfig `yaml:"mood"`
	Journal     GenerationConfig `yaml:"journal"`
	Affirmation GenerationConfig `yaml:"affirmation"`
}

// GenerationConfig holds per-feature sampling parameters
type GenerationConfig struct {
	Temperature     float64 `yaml:"temperature"`
	TopK            int     `yaml:"top_k"`
	TopP            float64 `yaml:"top_p"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
}

// HistoryConfig bounds the in-memory histories and context windows
type HistoryConfig struct {
	ChatWindow     int `yaml:"chat_window"`     // recent messages included in chat prompts
	MoodWindow     int `yaml:"mood_window"`     // recent messages included in mood prompts
	JournalWindow  int `yaml:"journal_window"`  // previous entries included in journal prompts
	MoodEntryCap   int `yaml:"mood_entry_cap"`  // max retained mood entries
	JournalCap     int `yaml:"journal_cap"`     // max retained journal entries
	StreakWindowD  int `yaml:"streak_window_days"`
}

// AudioConfig configures the procedural audio engine
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	AmbientVolume float64 `yaml:"ambient_volume"` // 0.0 to 1.0
	SampleRate    int     `yaml:"sample_rate"`
	DefaultTrack  string  `yaml:"default_track"` // waves, rain, wind, mountain
}

// LoggingConfig mirrors internal/logging's view of the config file
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`
	Categories map[string]bool `yaml:"categories"`
}

// StorageConfig configures on-disk persistence
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// DefaultConfig returns the configuration used when no file exists.
// Generation parameters match the tuning each feature was built around.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Model:   "gemini-2.0-flash",
			BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			Chat: GenerationConfig{
				Temperature:     0.8,
				TopK:            40,
				TopP:            0.95,
				MaxOutputTokens: 150,
			},
			Mood: GenerationConfig{
				Temperature:     0.9,
				TopK:            40,
				TopP:            0.95,
				MaxOutputTokens: 120,
			},
			Journal: GenerationConfig{
				Temperature:     0.8,
				TopK:            40,
				TopP:            0.95,
				MaxOutputTokens: 150,
			},
			Affirmation: GenerationConfig{
				Temperature:     0.8,
				TopK:            40,
				TopP:            0.95,
				MaxOutputTokens: 80,
			},
		},
		History: HistoryConfig{
			ChatWindow:    4,
			MoodWindow:    3,
			JournalWindow: 2,
			MoodEntryCap:  20,
			JournalCap:    10,
			StreakWindowD: 7,
		},
		Audio: AudioConfig{
			Enabled:       true,
			AmbientVolume: 0.5,
			SampleRate:    44100,
			DefaultTrack:  "waves",
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
		Storage: StorageConfig{
			DatabasePath: "", // resolved relative to home when empty
		},
	}
}

// AppHome returns the MindEase home directory, creating it if needed.
// Respects MINDEASE_HOME, otherwise ~/.mindease.
func AppHome() (string, error) {
	if h := os.Getenv("MINDEASE_HOME"); h != "" {
		if err := os.MkdirAll(h, 0755); err != nil {
			return "", fmt.Errorf("failed to create app home: %w", err)
		}
		return h, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	home := filepath.Join(userHome, ".mindease")
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("failed to create app home: %w", err)
	}
	return home, nil
}

// Load reads the config from <home>/config.yaml, applies env overrides
// and validates. A missing file is not an error: defaults are returned.
func Load(home string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(home, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			cfg.resolvePaths(home)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.resolvePaths(home)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets environment variables win over file values
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("MINDEASE_API_KEY"); key != "" {
		c.API.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" && c.API.APIKey == "" {
		c.API.APIKey = key
	}
	if model := os.Getenv("MINDEASE_MODEL"); model != "" {
		c.API.Model = model
	}
	if base := os.Getenv("MINDEASE_API_BASE"); base != "" {
		c.API.BaseURL = base
	}
}

// resolvePaths fills in paths that default relative to the app home
func (c *Config) resolvePaths(home string) {
	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = filepath.Join(home, "mindease.db")
	}
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.API.Model == "" {
		return fmt.Errorf("api.model must not be empty")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	for name, g := range map[string]GenerationConfig{
		"chat": c.API.Chat, "mood": c.API.Mood,
		"journal": c.API.Journal, "affirmation": c.API.Affirmation,
	} {
		if g.Temperature < 0 || g.Temperature > 2 {
			return fmt.Errorf("api.%s.temperature must be in [0, 2], got %v", name, g.Temperature)
		}
		if g.MaxOutputTokens <= 0 {
			return fmt.Errorf("api.%s.max_output_tokens must be positive, got %d", name, g.MaxOutputTokens)
		}
		if g.TopP < 0 || g.TopP > 1 {
			return fmt.Errorf("api.%s.top_p must be in [0, 1], got %v", name, g.TopP)
		}
	}
	if c.History.ChatWindow < 0 || c.History.MoodWindow < 0 || c.History.JournalWindow < 0 {
		return fmt.Errorf("history windows must not be negative")
	}
	if c.History.MoodEntryCap <= 0 {
		return fmt.Errorf("history.mood_entry_cap must be positive, got %d", c.History.MoodEntryCap)
	}
	if c.History.JournalCap <= 0 {
		return fmt.Errorf("history.journal_cap must be positive, got %d", c.History.JournalCap)
	}
	if c.History.StreakWindowD <= 0 {
		return fmt.Errorf("history.streak_window_days must be positive, got %d", c.History.StreakWindowD)
	}
	if c.Audio.AmbientVolume < 0 || c.Audio.AmbientVolume > 1 {
		return fmt.Errorf("audio.ambient_volume must be in [0, 1], got %v", c.Audio.AmbientVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	switch c.Audio.DefaultTrack {
	case "waves", "rain", "wind", "mountain", "":
	default:
		return fmt.Errorf("audio.default_track must be one of waves, rain, wind, mountain; got %q", c.Audio.DefaultTrack)
	}
	return nil
}

// Save writes the config back to <home>/config.yaml
func (c *Config) Save(home string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(home, "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// HasAPIKey reports whether a completion key is configured.
// Without a key every feature runs in fallback mode.
func (c *Config) HasAPIKey() bool {
	return c.API.APIKey != ""
}

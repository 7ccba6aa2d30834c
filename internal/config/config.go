// Package config loads the Handspell configuration from a YAML file
// with sensible defaults for every knob.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "HANDSPELL_CONFIG"

// Config is the top-level configuration.
type Config struct {
	CameraID   int              `yaml:"camera_id"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Speech     SpeechConfig     `yaml:"speech"`
	HTTP       HTTPConfig       `yaml:"http"`
}

// ClassifierConfig configures the remote classification endpoint.
type ClassifierConfig struct {
	Endpoint    string `yaml:"endpoint"`
	JPEGQuality int    `yaml:"jpeg_quality"`
	TimeoutMS   int    `yaml:"timeout_ms"`
}

// PipelineConfig tunes the recognition pipeline.
type PipelineConfig struct {
	PollIntervalMS     int     `yaml:"poll_interval_ms"`
	StabilityThreshold int     `yaml:"stability_threshold"`
	CooldownMS         int     `yaml:"cooldown_ms"`
	LerpAlpha          float64 `yaml:"lerp_alpha"`
	RenderFPS          int     `yaml:"render_fps"`
}

// SpeechConfig configures spoken feedback.
type SpeechConfig struct {
	Enabled bool   `yaml:"enabled"`
	Command string `yaml:"command"`
}

// HTTPConfig configures the control server.
type HTTPConfig struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		CameraID: 0,
		Classifier: ClassifierConfig{
			Endpoint:    "http://localhost:5000/classify_gesture",
			JPEGQuality: 40,
			TimeoutMS:   5000,
		},
		Pipeline: PipelineConfig{
			PollIntervalMS:     50,
			StabilityThreshold: 6,
			CooldownMS:         500,
			LerpAlpha:          0.2,
			RenderFPS:          30,
		},
		Speech: SpeechConfig{
			Enabled: true,
			Command: "espeak",
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
	}
}

// Load reads the configuration from path. An empty path falls back to
// the HANDSPELL_CONFIG environment variable; if neither is set, or the
// file does not exist, defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Classifier.Endpoint == "" {
		return errors.New("classifier endpoint must not be empty")
	}
	if c.Classifier.JPEGQuality < 1 || c.Classifier.JPEGQuality > 100 {
		return fmt.Errorf("classifier jpeg_quality %d out of range [1, 100]", c.Classifier.JPEGQuality)
	}
	if c.Pipeline.PollIntervalMS <= 0 {
		return fmt.Errorf("pipeline poll_interval_ms %d must be positive", c.Pipeline.PollIntervalMS)
	}
	if c.Pipeline.StabilityThreshold < 1 {
		return fmt.Errorf("pipeline stability_threshold %d must be at least 1", c.Pipeline.StabilityThreshold)
	}
	if c.Pipeline.CooldownMS < 0 {
		return fmt.Errorf("pipeline cooldown_ms %d must not be negative", c.Pipeline.CooldownMS)
	}
	if c.Pipeline.LerpAlpha <= 0 || c.Pipeline.LerpAlpha > 1 {
		return fmt.Errorf("pipeline lerp_alpha %v out of range (0, 1]", c.Pipeline.LerpAlpha)
	}
	if c.Pipeline.RenderFPS < 1 {
		return fmt.Errorf("pipeline render_fps %d must be at least 1", c.Pipeline.RenderFPS)
	}
	if c.Speech.Enabled && c.Speech.Command == "" {
		return errors.New("speech command must not be empty when speech is enabled")
	}
	return nil
}

// PollInterval returns the poll interval as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Pipeline.PollIntervalMS) * time.Millisecond
}

// Cooldown returns the accumulator cooldown as a duration.
func (c Config) Cooldown() time.Duration {
	return time.Duration(c.Pipeline.CooldownMS) * time.Millisecond
}

// ClassifierTimeout returns the request timeout as a duration.
func (c Config) ClassifierTimeout() time.Duration {
	return time.Duration(c.Classifier.TimeoutMS) * time.Millisecond
}

// Package config loads fitter and logging settings from YAML files,
// .env files and GDEVAL_* environment variables.
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/gdeval/linear"
	"github.com/YuminosukeSato/gdeval/pkg/errors"
	"github.com/YuminosukeSato/gdeval/pkg/log"
)

// EnvPrefix is the prefix of environment overrides, e.g. GDEVAL_FIT_LEARNING_RATE.
const EnvPrefix = "GDEVAL"

// Config holds all gdeval settings.
type Config struct {
	Fit FitConfig `mapstructure:"fit"`
	Log LogConfig `mapstructure:"log"`
}

// FitConfig configures the gradient-descent fitter.
type FitConfig struct {
	LearningRate float64 `mapstructure:"learning_rate"`
	// MaxIterations caps the loop; 0 leaves it uncapped.
	MaxIterations int `mapstructure:"max_iterations"`
	// Tolerance > 0 selects the Tolerance policy instead of ExactPlateau.
	Tolerance    float64 `mapstructure:"tolerance"`
	ObserveEvery int     `mapstructure:"observe_every"`
	// RandomSeed < 0 seeds from the global source.
	RandomSeed int64 `mapstructure:"random_seed"`
}

// LogConfig configures the zerolog provider.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Fit: FitConfig{
			LearningRate:  linear.DefaultLearningRate,
			MaxIterations: 0,
			Tolerance:     0,
			ObserveEvery:  linear.DefaultObserveEvery,
			RandomSeed:    -1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from path. With an empty path it looks for
// gdeval.yaml in the working directory and in .gdeval/; a missing file is
// not an error in that case. Environment variables override file values.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("fit.learning_rate", cfg.Fit.LearningRate)
	v.SetDefault("fit.max_iterations", cfg.Fit.MaxIterations)
	v.SetDefault("fit.tolerance", cfg.Fit.Tolerance)
	v.SetDefault("fit.observe_every", cfg.Fit.ObserveEvery)
	v.SetDefault("fit.random_seed", cfg.Fit.RandomSeed)
	v.SetDefault("log.level", cfg.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gdeval")
		v.AddConfigPath(".")
		v.AddConfigPath(".gdeval")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "config: read")
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads .env files; variables already set take precedence.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		homeEnvFile := filepath.Join(homeDir, ".gdeval", ".env")
		if _, err := os.Stat(homeEnvFile); err == nil {
			_ = godotenv.Load(homeEnvFile)
		}
	}
}

// Validate checks every setting and returns the first ValidationError.
func (c *Config) Validate() error {
	f := c.Fit
	if f.LearningRate <= 0 || math.IsNaN(f.LearningRate) || math.IsInf(f.LearningRate, 0) {
		return errors.NewValidationError("fit.learning_rate", "must be positive and finite", f.LearningRate)
	}
	if f.MaxIterations < 0 {
		return errors.NewValidationError("fit.max_iterations", "must not be negative", f.MaxIterations)
	}
	if f.Tolerance < 0 || math.IsNaN(f.Tolerance) {
		return errors.NewValidationError("fit.tolerance", "must not be negative", f.Tolerance)
	}
	if f.ObserveEvery <= 0 {
		return errors.NewValidationError("fit.observe_every", "must be positive", f.ObserveEvery)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Options converts the settings into fitter options.
func (f FitConfig) Options() []linear.Option {
	opts := []linear.Option{
		linear.WithLearningRate(f.LearningRate),
		linear.WithObserveEvery(f.ObserveEvery),
	}
	if f.Tolerance > 0 {
		opts = append(opts, linear.WithTermination(linear.Tolerance{Epsilon: f.Tolerance}))
	} else {
		opts = append(opts, linear.WithTermination(linear.ExactPlateau{}))
	}
	if f.MaxIterations > 0 {
		opts = append(opts, linear.WithMaxIterations(f.MaxIterations))
	}
	if f.RandomSeed >= 0 {
		opts = append(opts, linear.WithRandomState(f.RandomSeed))
	}
	return opts
}

// Apply installs a stdout zerolog provider at the configured level.
func (l LogConfig) Apply() error {
	return log.SetupLogger(l.Level)
}
